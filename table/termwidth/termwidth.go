// Package termwidth supplies the pluggable character-width function used
// throughout the table engine to measure cell content. The engine itself
// never assumes a rune occupies exactly one terminal column; it always asks
// a CharWidth.
package termwidth

import "github.com/mattn/go-runewidth"

// CharWidth reports how many terminal cells a single rune occupies. A
// conforming implementation returns 0, 1 or 2.
type CharWidth func(r rune) int

// ASCII is the default CharWidth: every rune, regardless of its actual
// glyph, counts as exactly one terminal cell. This is the code-point
// counting baseline the engine standardises on; it is intentionally naive
// about combining marks and East-Asian wide characters.
func ASCII(r rune) int {
	return 1
}

// EastAsian is an opt-in CharWidth backed by go-runewidth's East-Asian width
// tables. It is never used by default; callers wire it in explicitly via
// WithCharWidth when their content includes wide glyphs.
func EastAsian(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth measures a string under the given CharWidth by summing the
// width of each rune; it never inspects grapheme clusters.
func StringWidth(s string, w CharWidth) int {
	total := 0
	for _, r := range s {
		total += w(r)
	}
	return total
}
