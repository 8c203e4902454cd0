/*
  table.go
  Description: the Table builder: registers rules and borders, then renders
  -----------------------------------------------------------------------------

  Grounded on tbl.Tbl (tbl/tbl.go): a table holds a model plus per-column/
  per-row state built up by a sequence of builder calls (AddRow, HSingleRule,
  CSingleLine, ...) and finally flattened to text by Tbl.String(). Here the
  builder calls register pipeline rules and border specifications instead of
  literal rows and rules, and String() becomes Render(width), generalized to
  solve column widths rather than assume every column is already sized.
*/

package table

import (
	"strings"

	"github.com/clinaresl/termgrid/table/termwidth"
	"github.com/sirupsen/logrus"
)

// Table renders a TableModel through the format/size/wrap/align pipeline,
// decorated with zero or more registered borders.
type Table struct {
	model TableModel

	formatRules *ruleList[Formatter]
	sizeRules   *ruleList[SizeConstraints]
	wrapRules   *ruleList[TextWrapper]
	alignRules  *ruleList[AlignmentStrategy]

	borders   *borderGrid
	charWidth termwidth.CharWidth
	logger    *logrus.Logger
}

// NewTable builds a Table over model with the engine's default rules: format
// with DefaultFormatter, size with AutoSize, wrap with DelimiterTextWrapper,
// align with Left/Top, measuring character width as ASCII (one column per
// rune) unless overridden by WithCharWidth.
func NewTable(model TableModel) (*Table, error) {
	if model == nil {
		return nil, NullArgumentError{Argument: "model"}
	}

	t := &Table{
		model:     model,
		charWidth: termwidth.ASCII,
	}
	t.borders = newBorderGrid(model.RowCount(), model.ColumnCount())

	t.formatRules = newRuleList[Formatter](DefaultFormatter)
	t.sizeRules = newRuleList[SizeConstraints](SizeConstraintsFunc(
		func(lines []string, availableContentWidth, columns int) Extent {
			return AutoSize(t.charWidth).Width(lines, availableContentWidth, columns)
		}))
	t.wrapRules = newRuleList[TextWrapper](TextWrapperFunc(
		func(lines []string, width int) []string {
			return DelimiterTextWrapper(t.charWidth).Wrap(lines, width)
		}))
	t.alignRules = newRuleList[AlignmentStrategy](Compose(Left, Top))

	return t, nil
}

// WithCharWidth overrides how the engine measures rune width, affecting the
// default size/wrap strategies and the asserting decorators every later
// Render applies, whenever the rules were registered. The default is
// termwidth.ASCII.
func (t *Table) WithCharWidth(w termwidth.CharWidth) *Table {
	t.charWidth = w
	return t
}

// WithLogger attaches a logger that receives a warning whenever Render falls
// back to a column's minimum width because the requested width was too
// small (see RenderWidthTooSmall). Diagnostic only: Render succeeds either
// way.
func (t *Table) WithLogger(logger *logrus.Logger) *Table {
	t.logger = logger
	return t
}

// Format registers a Formatter for every cell matcher matches; later
// registrations outrank earlier ones on overlapping cells.
func (t *Table) Format(matcher CellMatcher, formatter Formatter) error {
	if matcher == nil {
		return NullArgumentError{Argument: "matcher"}
	}
	if formatter == nil {
		return NullArgumentError{Argument: "formatter"}
	}
	t.formatRules.register(matcher, formatter)
	return nil
}

// Size registers a SizeConstraints for every cell matcher matches.
func (t *Table) Size(matcher CellMatcher, constraints SizeConstraints) error {
	if matcher == nil {
		return NullArgumentError{Argument: "matcher"}
	}
	if constraints == nil {
		return NullArgumentError{Argument: "constraints"}
	}
	t.sizeRules.register(matcher, constraints)
	return nil
}

// Wrap registers a TextWrapper for every cell matcher matches.
func (t *Table) Wrap(matcher CellMatcher, wrapper TextWrapper) error {
	if matcher == nil {
		return NullArgumentError{Argument: "matcher"}
	}
	if wrapper == nil {
		return NullArgumentError{Argument: "wrapper"}
	}
	t.wrapRules.register(matcher, wrapper)
	return nil
}

// Align registers an AlignmentStrategy for every cell matcher matches.
func (t *Table) Align(matcher CellMatcher, aligner AlignmentStrategy) error {
	if matcher == nil {
		return NullArgumentError{Argument: "matcher"}
	}
	if aligner == nil {
		return NullArgumentError{Argument: "aligner"}
	}
	t.alignRules.register(matcher, aligner)
	return nil
}

// WithBorder registers a BorderSpecification over the rectangle
// (top,left)-(bottom,right), restricted to the edges named by match. Later
// registrations win on shared edges; registering the same specification
// twice is idempotent.
func (t *Table) WithBorder(top, left, bottom, right int, match Mask, style BorderStyle) error {
	rows, columns := t.model.RowCount(), t.model.ColumnCount()
	if top < 0 || left < 0 || top >= bottom || left >= right || bottom > rows || right > columns {
		return DimensionError{Top: top, Left: left, Bottom: bottom, Right: right, Reason: "expected 0 <= top < bottom <= rows and 0 <= left < right <= columns"}
	}
	if _, ok := styleDefs[style]; !ok {
		return DimensionError{Top: top, Left: left, Bottom: bottom, Right: right, Reason: "unknown border style"}
	}
	t.borders.register(BorderSpecification{Top: top, Left: left, Bottom: bottom, Right: right, Match: match, Style: style})
	return nil
}

// verticalFillers reports, for each of the columns+1 column boundaries
// (vFillers[c] of spec.md section 4.8), whether any row registered a
// vertical edge there. A true entry both consumes one column of the
// requested render width and, absent a glyph for a particular row, still
// emits a single blank column there to keep the table rectangular.
func (t *Table) verticalFillers() []bool {
	columns := t.model.ColumnCount()
	fillers := make([]bool, columns+1)
	for c := 0; c <= columns; c++ {
		for r := 0; r < t.model.RowCount(); r++ {
			if _, ok := t.borders.verticalAt(r, c); ok {
				fillers[c] = true
				break
			}
		}
	}
	return fillers
}

// horizontalFillers reports, for each of the rows+1 row boundaries
// (hFillers[r] of spec.md section 4.8), whether any column registered a
// horizontal edge there.
func (t *Table) horizontalFillers() []bool {
	rows := t.model.RowCount()
	fillers := make([]bool, rows+1)
	for r := 0; r <= rows; r++ {
		for c := 0; c < t.model.ColumnCount(); c++ {
			if _, ok := t.borders.horizontalAt(r, c); ok {
				fillers[r] = true
				break
			}
		}
	}
	return fillers
}

// Render produces the final text. It is a pure function of the table's
// configuration and width: calling it twice with the same width yields
// identical output.
func (t *Table) Render(width int) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if violation, ok := r.(ContractViolation); ok {
				err = violation
				return
			}
			panic(r)
		}
	}()

	rows, columns := t.model.RowCount(), t.model.ColumnCount()
	if rows == 0 || columns == 0 {
		return "", nil
	}

	vFillers := t.verticalFillers()
	hFillers := t.horizontalFillers()
	separatorOverhead := 0
	for _, filled := range vFillers {
		if filled {
			separatorOverhead++
		}
	}
	availableContentWidth := width - separatorOverhead
	if availableContentWidth < 0 {
		availableContentWidth = 0
	}

	// Pass 1: format + measure, aggregating per-column extents as the
	// column-wise maximum of every cell's extent.
	preWrap := make([][][]string, rows)
	columnExtents := make([]Extent, columns)
	for c := range columnExtents {
		columnExtents[c] = Extent{Min: 0, Max: 0}
	}

	for r := 0; r < rows; r++ {
		preWrap[r] = make([][]string, columns)
		for c := 0; c < columns; c++ {
			coord := CellCoord{Row: r, Column: c}
			formatter := assertFormatter{inner: t.formatRules.lookup(coord, t.model), coord: coord}
			lines := formatter.Format(t.model.Value(r, c))
			preWrap[r][c] = lines

			constraints := assertSizeConstraints{inner: t.sizeRules.lookup(coord, t.model), coord: coord}
			extent := constraints.Width(lines, availableContentWidth, columns)
			columnExtents[c] = columnExtents[c].columnWiseMax(extent)
		}
	}

	columnWidths := computeActualColumnWidths(columnExtents, availableContentWidth)

	sumMin := 0
	for _, e := range columnExtents {
		sumMin += e.Min
	}
	if sumMin > availableContentWidth {
		diag := RenderWidthTooSmall{Requested: width, Needed: sumMin + separatorOverhead}
		if t.logger != nil {
			t.logger.WithFields(logrus.Fields{"requested": diag.Requested, "needed": diag.Needed}).Warn(diag.Error())
		}
	}

	// Pass 2: wrap each cell to its column's solved width, tracking the
	// tallest cell per row.
	wrapped := make([][][]string, rows)
	rowHeights := make([]int, rows)
	for r := 0; r < rows; r++ {
		wrapped[r] = make([][]string, columns)
		for c := 0; c < columns; c++ {
			coord := CellCoord{Row: r, Column: c}
			wrapper := assertTextWrapper{inner: t.wrapRules.lookup(coord, t.model), charWidth: t.charWidth, coord: coord}
			lines := wrapper.Wrap(preWrap[r][c], columnWidths[c])
			wrapped[r][c] = lines
			if len(lines) > rowHeights[r] {
				rowHeights[r] = len(lines)
			}
		}
	}

	// Pass 3: align each cell to its final (width x height).
	aligned := make([][][]string, rows)
	for r := 0; r < rows; r++ {
		aligned[r] = make([][]string, columns)
		for c := 0; c < columns; c++ {
			coord := CellCoord{Row: r, Column: c}
			aligner := assertAlignment{inner: t.alignRules.lookup(coord, t.model), charWidth: t.charWidth, coord: coord}
			aligned[r][c] = aligner.Align(wrapped[r][c], columnWidths[c], rowHeights[r])
		}
	}

	return t.compose(aligned, columnWidths, rowHeights, vFillers, hFillers), nil
}

// compose weaves border glyphs and cell content into the final text,
// following the three rendering rules of spec.md section 4.8: a defined
// glyph always wins; absent a glyph, a filler space preserves the table's
// rectangular shape across rows/columns that do and don't carry a border at
// a given lane; absent both, nothing is emitted.
func (t *Table) compose(aligned [][][]string, columnWidths, rowHeights []int, vFillers, hFillers []bool) string {
	rows, columns := t.model.RowCount(), t.model.ColumnCount()
	var out strings.Builder

	writeBorderRow := func(r int) bool {
		var line strings.Builder
		wrote := false
		for c := 0; c <= columns; c++ {
			if glyph, ok := t.borders.cornerAt(r, c); ok {
				line.WriteString(glyph)
				wrote = true
			} else if vFillers[c] && hFillers[r] {
				line.WriteString(" ")
				wrote = true
			}
			if c < columns {
				if glyph, ok := t.borders.horizontalAt(r, c); ok {
					line.WriteString(strings.Repeat(glyph, columnWidths[c]))
					wrote = true
				} else if hFillers[r] {
					line.WriteString(strings.Repeat(" ", columnWidths[c]))
				}
			}
		}
		if wrote {
			out.WriteString(line.String())
			out.WriteByte('\n')
		}
		return wrote
	}

	for r := 0; r <= rows; r++ {
		writeBorderRow(r)
		if r == rows {
			break
		}
		for h := 0; h < rowHeights[r]; h++ {
			for c := 0; c <= columns; c++ {
				if glyph, ok := t.borders.verticalAt(r, c); ok {
					out.WriteString(glyph)
				} else if vFillers[c] {
					out.WriteString(" ")
				}
				if c < columns {
					out.WriteString(aligned[r][c][h])
				}
			}
			out.WriteByte('\n')
		}
	}

	return out.String()
}
