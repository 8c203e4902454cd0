/*
  wrapper.go
  Description: splits a cell's pre-wrap lines into lines of exact column width
  -----------------------------------------------------------------------------
*/

package table

import (
	"strings"

	"github.com/clinaresl/termgrid/table/termwidth"
)

// TextWrapper splits a cell's pre-wrap lines into an ordered sequence of
// lines, each of exact length width (measured by the wrapper's CharWidth).
type TextWrapper interface {
	Wrap(lines []string, width int) []string
}

// TextWrapperFunc adapts a plain function into a TextWrapper.
type TextWrapperFunc func(lines []string, width int) []string

func (f TextWrapperFunc) Wrap(lines []string, width int) []string { return f(lines, width) }

// padTo right-pads s with spaces until it occupies exactly width terminal
// cells, per the CharWidth function w. It never truncates.
func padTo(s string, width int, w termwidth.CharWidth) string {
	current := termwidth.StringWidth(s, w)
	if current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}

// hardBreak splits a single token wider than width into width-wide chunks
// (the last chunk right-padded), rune by rune according to w.
func hardBreak(token string, width int, w termwidth.CharWidth) []string {
	var lines []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		lines = append(lines, padTo(current.String(), width, w))
		current.Reset()
		currentWidth = 0
	}

	for _, r := range token {
		rw := w(r)
		if currentWidth+rw > width && currentWidth > 0 {
			flush()
		}
		current.WriteRune(r)
		currentWidth += rw
	}
	if current.Len() > 0 {
		flush()
	}
	return lines
}

// delimiterTextWrapper implements DelimiterTextWrapper for a given
// CharWidth function.
type delimiterTextWrapper struct {
	charWidth termwidth.CharWidth
}

// DelimiterTextWrapper treats each of the cell's pre-wrap lines as its own
// paragraph, breaking on ASCII space within it. Tokens are greedily packed
// into output lines without exceeding width; a token wider than width is
// hard-broken. Tokens never cross a pre-wrap line boundary, so an embedded
// newline in the original cell value still produces a distinct output line.
// Every emitted line is right-padded to exactly width.
func DelimiterTextWrapper(charWidth termwidth.CharWidth) TextWrapper {
	return delimiterTextWrapper{charWidth: charWidth}
}

// Wrap treats every pre-wrap line as its own paragraph: tokens never cross a
// pre-newline boundary, so embedded newlines in the original cell value stay
// visible as separate output lines instead of being rejoined by the greedy
// packer.
func (d delimiterTextWrapper) Wrap(lines []string, width int) []string {
	if len(lines) == 0 {
		return nil
	}

	var out []string
	for _, line := range lines {
		out = append(out, d.wrapParagraph(strings.Fields(line), width)...)
	}
	return out
}

// wrapParagraph greedily packs tokens drawn from a single pre-wrap line into
// output lines of exact width.
func (d delimiterTextWrapper) wrapParagraph(tokens []string, width int) []string {
	if len(tokens) == 0 {
		return []string{padTo("", width, d.charWidth)}
	}

	var out []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		out = append(out, padTo(current.String(), width, d.charWidth))
		current.Reset()
		currentWidth = 0
	}

	for _, tok := range tokens {
		tokWidth := termwidth.StringWidth(tok, d.charWidth)

		if tokWidth > width {
			if currentWidth > 0 {
				flush()
			}
			broken := hardBreak(tok, width, d.charWidth)
			out = append(out, broken[:len(broken)-1]...)
			current.WriteString(strings.TrimRight(broken[len(broken)-1], " "))
			currentWidth = termwidth.StringWidth(current.String(), d.charWidth)
			continue
		}

		candidateWidth := tokWidth
		if currentWidth > 0 {
			candidateWidth = currentWidth + 1 + tokWidth
		}

		if candidateWidth > width {
			flush()
			current.WriteString(tok)
			currentWidth = tokWidth
			continue
		}

		if currentWidth > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(tok)
		currentWidth = candidateWidth
	}
	if currentWidth > 0 || len(out) == 0 {
		flush()
	}

	return out
}

// KeyValueTextWrapper treats each pre-wrap line as already being a
// "key=value" entry (as produced by KeyValueFormatter). It is sugar over
// DelimiterTextWrapper, which already never merges tokens across pre-wrap
// lines, so a long value wraps without merging into the next entry.
func KeyValueTextWrapper(charWidth termwidth.CharWidth) TextWrapper {
	return DelimiterTextWrapper(charWidth)
}

// assertTextWrapper wraps a user-supplied TextWrapper to enforce its
// post-condition on every invocation: every emitted line has length exactly
// width.
type assertTextWrapper struct {
	inner     TextWrapper
	charWidth termwidth.CharWidth
	coord     CellCoord
}

func (a assertTextWrapper) Wrap(lines []string, width int) []string {
	out := a.inner.Wrap(lines, width)
	for _, line := range out {
		if strings.ContainsRune(line, '\n') {
			panic(ContractViolation{Coord: a.coord, Stage: "wrap", Reason: "line contains embedded newline"})
		}
		if termwidth.StringWidth(line, a.charWidth) != width {
			panic(ContractViolation{Coord: a.coord, Stage: "wrap", Reason: "line width does not equal requested width"})
		}
	}
	return out
}
