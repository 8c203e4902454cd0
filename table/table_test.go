/*
  table_test.go
  Description: integration tests exercising the full render pipeline
  -----------------------------------------------------------------------------

  Grounded on tbl/tbl_test.go's style: plain testing.T, one scenario per
  function, asserting against a literal expected string.
*/

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScenarioNoBordersAutoSize(t *testing.T) {
	model := NewArrayModel([][]any{{"a", "b"}, {"c", "d"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)

	out, err := tbl.Render(20)
	require.NoError(t, err)

	// sumMax(2) <= available(20): the solver leaves every column at its
	// natural maximum width rather than stretching it to fill the request.
	// Every emitted content row ends in '\n' unconditionally.
	assert.Equal(t, "ab\ncd\n", out)
}

func TestRenderScenarioThinOutline(t *testing.T) {
	model := NewArrayModel([][]any{{"a", "b"}, {"c", "d"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)
	require.NoError(t, tbl.WithBorder(0, 0, 2, 2, Outline, StyleThin))

	out, err := tbl.Render(20)
	require.NoError(t, err)

	// Outline only touches the outer edges, so the row boundary between the
	// two content rows has neither a corner nor a filler column: it
	// contributes no band at all, and the columns stay at their natural
	// width of 1 rather than stretching to fill the requested 20. The last
	// emitted band (the bottom border) is non-empty, so output ends in '\n'.
	assert.Equal(t, "┌──┐\n│ab│\n│cd│\n└──┘\n", out)
}

func TestRenderScenarioDelimiterWrap(t *testing.T) {
	model := NewArrayModel([][]any{{"abc def ghi"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)
	require.NoError(t, tbl.Size(MatchAll, AbsoluteWidth(7)))

	out, err := tbl.Render(7)
	require.NoError(t, err)
	assert.Equal(t, "abc def\nghi    \n", out)
}

func TestRenderScenarioAbsoluteWidthHardBreak(t *testing.T) {
	model := NewArrayModel([][]any{{12345}})
	tbl, err := NewTable(model)
	require.NoError(t, err)
	require.NoError(t, tbl.Size(MatchAll, AbsoluteWidth(3)))

	out, err := tbl.Render(3)
	require.NoError(t, err)
	assert.Equal(t, "123\n45 \n", out)
}

func TestRenderScenarioOverlappingBordersLaterStyleWins(t *testing.T) {
	model := NewArrayModel([][]any{{"a"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)
	require.NoError(t, tbl.WithBorder(0, 0, 1, 1, Outline, StyleThin))
	require.NoError(t, tbl.WithBorder(0, 0, 1, 1, Outline, StyleDouble))

	out, err := tbl.Render(10)
	require.NoError(t, err)
	assert.Contains(t, out, "═")
	assert.Contains(t, out, "║")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╗")
	assert.Contains(t, out, "╚")
	assert.Contains(t, out, "╝")
	assert.NotContains(t, out, "┌")
}

func TestRenderScenarioEmptyModel(t *testing.T) {
	model := NewArrayModel(nil)
	tbl, err := NewTable(model)
	require.NoError(t, err)

	out, err := tbl.Render(10)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderEmbeddedNewlinesPreserveSegmentation(t *testing.T) {
	model := NewArrayModel([][]any{{"line1\nline2"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)
	require.NoError(t, tbl.Size(MatchAll, AbsoluteWidth(5)))

	out, err := tbl.Render(5)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", out)
}

func TestRenderEmbeddedNewlinesPreserveSegmentationWhenSegmentsWouldOtherwiseFitTogether(t *testing.T) {
	// Each segment is well under the column width, so a wrapper that joins
	// every pre-wrap line into one token stream before packing would merge
	// them onto a single line. The pre-newline boundary must survive anyway.
	model := NewArrayModel([][]any{{"ab\ncd"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)
	require.NoError(t, tbl.Size(MatchAll, AbsoluteWidth(10)))

	out, err := tbl.Render(10)
	require.NoError(t, err)
	assert.Equal(t, "ab        \ncd        \n", out)
}

func TestRenderIsPureFunctionOfWidth(t *testing.T) {
	model := NewArrayModel([][]any{{"a", "bb"}, {"ccc", "d"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)

	first, err := tbl.Render(30)
	require.NoError(t, err)
	second, err := tbl.Render(30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderLastMatchWins(t *testing.T) {
	model := NewArrayModel([][]any{{"x"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)
	require.NoError(t, tbl.Align(MatchAll, Left))
	require.NoError(t, tbl.Align(MatchCell(0, 0), Right))
	require.NoError(t, tbl.Size(MatchAll, AbsoluteWidth(4)))

	out, err := tbl.Render(4)
	require.NoError(t, err)
	assert.Equal(t, "   x\n", out)
}

func TestRenderRejectsNilModel(t *testing.T) {
	_, err := NewTable(nil)
	assert.ErrorAs(t, err, &NullArgumentError{})
}

func TestWithBorderRejectsMalformedRectangle(t *testing.T) {
	model := NewArrayModel([][]any{{"a"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)

	err = tbl.WithBorder(0, 0, 5, 5, Outline, StyleThin)
	assert.ErrorAs(t, err, &DimensionError{})
}

func TestContractViolationSurfacesAsError(t *testing.T) {
	model := NewArrayModel([][]any{{"a"}})
	tbl, err := NewTable(model)
	require.NoError(t, err)
	require.NoError(t, tbl.Wrap(MatchAll, TextWrapperFunc(func(lines []string, width int) []string {
		return []string{"too long for the requested width"}
	})))

	_, err = tbl.Render(10)
	var violation ContractViolation
	assert.ErrorAs(t, err, &violation)
}
