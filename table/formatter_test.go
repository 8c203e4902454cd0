/*
  formatter_test.go
  Description: unit tests for the built-in Formatters
  -----------------------------------------------------------------------------
*/

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFormatterSplitsOnNewline(t *testing.T) {
	out := DefaultFormatter.Format("line1\nline2")
	assert.Equal(t, []string{"line1", "line2"}, out)
}

func TestDefaultFormatterStringifiesNonStrings(t *testing.T) {
	out := DefaultFormatter.Format(42)
	assert.Equal(t, []string{"42"}, out)
}

func TestDefaultFormatterNilValueYieldsNoLines(t *testing.T) {
	assert.Nil(t, DefaultFormatter.Format(nil))
}

func TestDefaultFormatterEmptyStringYieldsNoLines(t *testing.T) {
	assert.Nil(t, DefaultFormatter.Format(""))
}

func TestKeyValueFormatterSortsByKey(t *testing.T) {
	out := KeyValueFormatter.Format(map[string]any{"b": 2, "a": 1})
	assert.Equal(t, []string{"a=1", "b=2"}, out)
}

func TestKeyValueFormatterFallsBackForNonMapValues(t *testing.T) {
	out := KeyValueFormatter.Format("plain")
	assert.Equal(t, []string{"plain"}, out)
}

func TestAssertFormatterPanicsOnEmbeddedNewline(t *testing.T) {
	bad := FormatterFunc(func(value any) []string {
		return []string{"a\nb"}
	})
	wrapped := assertFormatter{inner: bad, coord: CellCoord{0, 0}}

	assert.Panics(t, func() {
		wrapped.Format("anything")
	})
}
