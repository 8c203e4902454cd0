/*
  sizeconstraints.go
  Description: derives a desired column-width extent from a cell's pre-wrap lines
  -----------------------------------------------------------------------------
*/

package table

import (
	"strings"

	"github.com/clinaresl/termgrid/table/termwidth"
)

// SizeConstraints derives a desired (min, max) column-width extent from a
// cell's pre-wrap lines. availableContentWidth is the total content width
// available to the whole table (-1 if unconstrained); columns is the
// model's column count.
type SizeConstraints interface {
	Width(lines []string, availableContentWidth, columns int) Extent
}

// SizeConstraintsFunc adapts a plain function into a SizeConstraints.
type SizeConstraintsFunc func(lines []string, availableContentWidth, columns int) Extent

func (f SizeConstraintsFunc) Width(lines []string, availableContentWidth, columns int) Extent {
	return f(lines, availableContentWidth, columns)
}

// The CharWidth is set per table via Table.WithCharWidth; the built-in
// strategies below accept it as a parameter instead of a package global so
// multiple tables with different measurement functions can coexist.
func longestToken(lines []string, w termwidth.CharWidth) int {
	longest := 0
	for _, line := range lines {
		for _, tok := range strings.Fields(line) {
			if width := termwidth.StringWidth(tok, w); width > longest {
				longest = width
			}
		}
	}
	return longest
}

func longestLine(lines []string, w termwidth.CharWidth) int {
	longest := 0
	for _, line := range lines {
		if width := termwidth.StringWidth(line, w); width > longest {
			longest = width
		}
	}
	return longest
}

// AbsoluteWidth is a SizeConstraints that always reports (w, w), regardless
// of the cell's content.
func AbsoluteWidth(w int) SizeConstraints {
	return SizeConstraintsFunc(func(lines []string, availableContentWidth, columns int) Extent {
		return Extent{Min: w, Max: w}
	})
}

// autoSizeConstraints implements AutoSize for a given CharWidth function.
type autoSizeConstraints struct {
	charWidth termwidth.CharWidth
}

func (a autoSizeConstraints) Width(lines []string, availableContentWidth, columns int) Extent {
	min := longestToken(lines, a.charWidth)
	max := longestLine(lines, a.charWidth)

	if availableContentWidth >= 0 {
		if min > availableContentWidth {
			min = availableContentWidth
		}
		if max > availableContentWidth {
			max = availableContentWidth
		}
	}
	return Extent{Min: min, Max: max}
}

// AutoSize derives min from the longest unbreakable whitespace-delimited
// token across all lines and max from the longest whole line, capped at
// availableContentWidth when it is finite (a single column may legitimately
// consume the whole line).
func AutoSize(charWidth termwidth.CharWidth) SizeConstraints {
	return autoSizeConstraints{charWidth: charWidth}
}

// noWrapConstraints implements NoWrap for a given CharWidth function.
type noWrapConstraints struct {
	charWidth termwidth.CharWidth
}

func (n noWrapConstraints) Width(lines []string, availableContentWidth, columns int) Extent {
	max := longestLine(lines, n.charWidth)
	return Extent{Min: max, Max: max}
}

// NoWrap sets min = max = the width of the longest whole line, suppressing
// wrapping even if the content overflows the solved column width.
func NoWrap(charWidth termwidth.CharWidth) SizeConstraints {
	return noWrapConstraints{charWidth: charWidth}
}

// assertSizeConstraints wraps a user-supplied SizeConstraints to enforce its
// post-condition (0 <= min <= max) on every invocation.
type assertSizeConstraints struct {
	inner SizeConstraints
	coord CellCoord
}

func (a assertSizeConstraints) Width(lines []string, availableContentWidth, columns int) Extent {
	e := a.inner.Width(lines, availableContentWidth, columns)
	if e.Min < 0 || e.Max < e.Min {
		panic(ContractViolation{Coord: a.coord, Stage: "size", Reason: "extent violates 0 <= min <= max"})
	}
	return e
}
