/*
  formatter.go
  Description: turns a cell value into an ordered sequence of pre-wrap lines
  -----------------------------------------------------------------------------
*/

package table

import (
	"fmt"
	"sort"
	"strings"
)

// Formatter converts a cell value into an ordered sequence of pre-wrap
// lines. No returned line may contain '\n'; interior spaces are preserved.
// Implementations registered by callers are wrapped in an asserting
// decorator (see assertFormatter) that enforces this contract at render
// time.
type Formatter interface {
	Format(value any) []string
}

// FormatterFunc adapts a plain function into a Formatter.
type FormatterFunc func(value any) []string

func (f FormatterFunc) Format(value any) []string { return f(value) }

// DefaultFormatter takes the textual representation of a value (via
// fmt.Sprintf("%v", ...), mirroring how tbl.cellType.String() renders its
// own contents) and splits it on '\n'. A nil value or an empty string yields
// an empty sequence of lines, per spec.md section 4.3.
var DefaultFormatter Formatter = FormatterFunc(func(value any) []string {
	if value == nil {
		return nil
	}
	text := fmt.Sprintf("%v", value)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
})

// KeyValueFormatter renders a map[string]any cell value as one "key=value"
// line per entry, sorted by key for deterministic output, feeding
// KeyValueTextWrapper downstream. Non-map values fall back to
// DefaultFormatter.
var KeyValueFormatter Formatter = FormatterFunc(func(value any) []string {
	m, ok := value.(map[string]any)
	if !ok {
		return DefaultFormatter.Format(value)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%v=%v", k, m[k]))
	}
	return lines
})

// assertFormatter wraps an arbitrary Formatter so every invocation is
// checked against its contract: no returned line may contain '\n'. A
// violation raises ContractViolation naming the offending coordinate.
type assertFormatter struct {
	inner Formatter
	coord CellCoord
}

func (a assertFormatter) Format(value any) []string {
	lines := a.inner.Format(value)
	for _, line := range lines {
		if strings.ContainsRune(line, '\n') {
			panic(ContractViolation{Coord: a.coord, Stage: "format", Reason: "line contains embedded newline"})
		}
	}
	return lines
}
