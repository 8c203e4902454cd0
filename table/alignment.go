/*
  alignment.go
  Description: horizontally and vertically pads a cell's wrapped lines to its
  final (width x height)
  -----------------------------------------------------------------------------
*/

package table

import (
	"strings"

	"github.com/clinaresl/termgrid/table/termwidth"
)

// AlignmentStrategy pads a cell's already-wrapped lines (each exactly
// cellWidth wide) to exactly cellHeight rows, each still exactly cellWidth
// wide.
type AlignmentStrategy interface {
	Align(lines []string, cellWidth, cellHeight int) []string
}

// AlignmentFunc adapts a plain function into an AlignmentStrategy.
type AlignmentFunc func(lines []string, cellWidth, cellHeight int) []string

func (f AlignmentFunc) Align(lines []string, cellWidth, cellHeight int) []string {
	return f(lines, cellWidth, cellHeight)
}

// horizontal aligners: each wrapped line is already cellWidth wide due to
// wrapper padding; they redistribute the existing padding by trimming
// trailing spaces and reinserting it on the chosen side, preserving total
// width.

func realign(line string, cellWidth int, leftFraction func(pad int) int) string {
	trimmed := strings.TrimRight(line, " ")
	pad := len(line) - len(trimmed)
	if pad <= 0 {
		return trimmed
	}
	left := leftFraction(pad)
	right := pad - left
	return strings.Repeat(" ", left) + trimmed + strings.Repeat(" ", right)
}

// Left horizontally aligns each line to the left of its cell (the default:
// wrapper output is already left-aligned, so this simply preserves it).
var Left AlignmentStrategy = AlignmentFunc(func(lines []string, cellWidth, cellHeight int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = realign(line, cellWidth, func(pad int) int { return 0 })
	}
	return out
})

// Right horizontally aligns each line to the right of its cell.
var Right AlignmentStrategy = AlignmentFunc(func(lines []string, cellWidth, cellHeight int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = realign(line, cellWidth, func(pad int) int { return pad })
	}
	return out
})

// Center horizontally centers each line within its cell; an odd remainder of
// padding goes to the right, mirroring tbl.cellType.String()'s CENTER case.
var Center AlignmentStrategy = AlignmentFunc(func(lines []string, cellWidth, cellHeight int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = realign(line, cellWidth, func(pad int) int { return pad / 2 })
	}
	return out
})

func blankLine(width int) string {
	return strings.Repeat(" ", width)
}

// Top vertically aligns content to the top of the cell, padding with blank
// lines below.
var Top AlignmentStrategy = AlignmentFunc(func(lines []string, cellWidth, cellHeight int) []string {
	out := append([]string(nil), lines...)
	for len(out) < cellHeight {
		out = append(out, blankLine(cellWidth))
	}
	return out
})

// Bottom vertically aligns content to the bottom of the cell, padding with
// blank lines above.
var Bottom AlignmentStrategy = AlignmentFunc(func(lines []string, cellWidth, cellHeight int) []string {
	pad := cellHeight - len(lines)
	if pad <= 0 {
		return lines
	}
	out := make([]string, 0, cellHeight)
	for i := 0; i < pad; i++ {
		out = append(out, blankLine(cellWidth))
	}
	return append(out, lines...)
})

// Middle vertically centers content within the cell; an odd remainder of
// blank lines goes to the bottom.
var Middle AlignmentStrategy = AlignmentFunc(func(lines []string, cellWidth, cellHeight int) []string {
	pad := cellHeight - len(lines)
	if pad <= 0 {
		return lines
	}
	above := pad / 2
	below := pad - above
	out := make([]string, 0, cellHeight)
	for i := 0; i < above; i++ {
		out = append(out, blankLine(cellWidth))
	}
	out = append(out, lines...)
	for i := 0; i < below; i++ {
		out = append(out, blankLine(cellWidth))
	}
	return out
})

// composedAlignment combines a horizontal and a vertical aligner into a
// single AlignmentStrategy: horizontal first (per line), then vertical
// (pads the line list).
type composedAlignment struct {
	horizontal, vertical AlignmentStrategy
}

// Compose combines a horizontal aligner (Left/Right/Center) and a vertical
// aligner (Top/Middle/Bottom) into a single AlignmentStrategy.
func Compose(horizontal, vertical AlignmentStrategy) AlignmentStrategy {
	return composedAlignment{horizontal: horizontal, vertical: vertical}
}

func (c composedAlignment) Align(lines []string, cellWidth, cellHeight int) []string {
	aligned := c.horizontal.Align(lines, cellWidth, cellHeight)
	return c.vertical.Align(aligned, cellWidth, cellHeight)
}

// assertAlignment wraps a user-supplied AlignmentStrategy to enforce its
// post-conditions on every invocation: output has exactly cellHeight rows,
// each exactly cellWidth characters wide.
type assertAlignment struct {
	inner     AlignmentStrategy
	charWidth termwidth.CharWidth
	coord     CellCoord
}

func (a assertAlignment) Align(lines []string, cellWidth, cellHeight int) []string {
	out := a.inner.Align(lines, cellWidth, cellHeight)
	if len(out) != cellHeight {
		panic(ContractViolation{Coord: a.coord, Stage: "align", Reason: "row count does not equal cell height"})
	}
	for _, line := range out {
		if strings.ContainsRune(line, '\n') {
			panic(ContractViolation{Coord: a.coord, Stage: "align", Reason: "line contains embedded newline"})
		}
		if termwidth.StringWidth(line, a.charWidth) != cellWidth {
			panic(ContractViolation{Coord: a.coord, Stage: "align", Reason: "line width does not equal cell width"})
		}
	}
	return out
}
