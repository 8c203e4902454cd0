/*
  borderstyle.go
  Description: the closed set of border styles, their stroke glyphs, and the
  per-stroke-kind intersection tables used to resolve corners
  -----------------------------------------------------------------------------

  Grounded on tbl/tblseparators.go: its box-drawing constant names and
  \uXXXX literals are reused directly for the light/double stroke
  combinations, and its redoSingleRule/redoDoubleRule/redoThickRule corner
  selection (pick a glyph from which neighbouring strokes are present, and
  whether this is the first row) is generalized here into a single
  data-driven table keyed by stroke kind and shape, instead of one method per
  style with duplicated branching.
*/

package table

// BorderStyle names one of the closed set of border drawing styles spec.md
// section 3 and section 6 require.
type BorderStyle string

const (
	// StyleNone draws nothing: a spec with this style contributes no glyph
	// at any edge it would otherwise match (the NONE pseudo-style of
	// spec.md section 3).
	StyleNone BorderStyle = "NONE"

	// StyleAir draws every matched edge as a plain space: a visible gutter
	// without visible strokes.
	StyleAir BorderStyle = "AIR"

	// StyleThin draws single-weight box-drawing strokes: ─ │ with square
	// corners.
	StyleThin BorderStyle = "THIN"

	// StyleDouble draws double-line box-drawing strokes throughout.
	StyleDouble BorderStyle = "DOUBLE"

	// StyleThinDouble draws single-weight horizontal rules with
	// double-weight vertical separators.
	StyleThinDouble BorderStyle = "THIN_DOUBLE"

	// StyleFancyLight draws single-weight strokes with rounded outer
	// corners (T-junctions and crosses fall back to the square THIN glyphs,
	// since Unicode defines no rounded tee or cross).
	StyleFancyLight BorderStyle = "FANCY_LIGHT"

	// StyleOldSchool draws classic ASCII strokes: - | with + at every
	// corner, T-junction and cross.
	StyleOldSchool BorderStyle = "OLD_SCHOOL"
)

// strokeKind classifies the weight of a single stroke (one axis of one
// style) for the purposes of picking a corner glyph. Two strokes of the
// same kind combine using that kind's own intersection table; strokes of
// different kinds fall back to whichever kind has the higher precedence.
type strokeKind int

const (
	kindNone strokeKind = iota
	kindAir
	kindLight
	kindLightRounded
	kindAscii
	kindDouble
)

// precedence orders stroke kinds from weakest to strongest for the fallback
// used when two different-styled strokes meet at the same corner (e.g. a
// THIN border abutting a DOUBLE border).
func (k strokeKind) precedence() int {
	switch k {
	case kindAir:
		return 1
	case kindLight, kindLightRounded:
		return 2
	case kindAscii:
		return 3
	case kindDouble:
		return 4
	default:
		return 0
	}
}

// styleDef names the glyph and stroke kind a BorderStyle uses on each axis.
// A style need not use the same kind on both axes -- StyleThinDouble is
// exactly this: a light horizontal kind paired with a double vertical kind.
type styleDef struct {
	horizontalGlyph string
	verticalGlyph   string
	horizontalKind  strokeKind
	verticalKind    strokeKind
}

var styleDefs = map[BorderStyle]styleDef{
	StyleNone:       {},
	StyleAir:        {horizontalGlyph: " ", verticalGlyph: " ", horizontalKind: kindAir, verticalKind: kindAir},
	StyleThin:       {horizontalGlyph: "─", verticalGlyph: "│", horizontalKind: kindLight, verticalKind: kindLight},
	StyleDouble:     {horizontalGlyph: "═", verticalGlyph: "║", horizontalKind: kindDouble, verticalKind: kindDouble},
	StyleThinDouble: {horizontalGlyph: "─", verticalGlyph: "║", horizontalKind: kindLight, verticalKind: kindDouble},
	StyleFancyLight: {horizontalGlyph: "─", verticalGlyph: "│", horizontalKind: kindLightRounded, verticalKind: kindLightRounded},
	StyleOldSchool:  {horizontalGlyph: "-", verticalGlyph: "|", horizontalKind: kindAscii, verticalKind: kindAscii},
}

// cornerSet names the nine glyphs a (verticalKind, horizontalKind) pair
// contributes to a corner, indexed by which of the four neighbouring
// strokes are present.
type cornerSet struct {
	topLeft, topRight, bottomLeft, bottomRight string
	teeDown, teeUp, teeRight, teeLeft          string
	cross                                      string
	vertical, horizontal                       string
}

type kindPair struct {
	vertical, horizontal strokeKind
}

// intersectionTables holds one cornerSet per (verticalKind, horizontalKind)
// pair this engine knows an exact Unicode combination for. Pairs not present
// here fall back, per corner, to the table of whichever kind has the higher
// precedence applied to both axes -- mirroring tbl/tblseparators.go's own
// comments that "there are no utf-8 characters" for certain combinations and
// reusing the heavier style's glyphs instead.
var intersectionTables = map[kindPair]cornerSet{
	{kindLight, kindLight}: {
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		teeDown: "┬", teeUp: "┴", teeRight: "├", teeLeft: "┤",
		cross: "┼", vertical: "│", horizontal: "─",
	},
	{kindLightRounded, kindLightRounded}: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		teeDown: "┬", teeUp: "┴", teeRight: "├", teeLeft: "┤",
		cross: "┼", vertical: "│", horizontal: "─",
	},
	{kindDouble, kindDouble}: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		teeDown: "╦", teeUp: "╩", teeRight: "╠", teeLeft: "╣",
		cross: "╬", vertical: "║", horizontal: "═",
	},
	// vertical strokes light, horizontal strokes double, taken verbatim from
	// tbl/tblseparators.go's "horizontal double separators" block.
	{kindLight, kindDouble}: {
		topLeft: "╒", topRight: "╕", bottomLeft: "╘", bottomRight: "╛",
		teeDown: "╤", teeUp: "╧", teeRight: "╞", teeLeft: "╡",
		cross: "╪", vertical: "│", horizontal: "═",
	},
	// vertical strokes double, horizontal strokes light -- StyleThinDouble's
	// own combination.
	{kindDouble, kindLight}: {
		topLeft: "╓", topRight: "╖", bottomLeft: "╙", bottomRight: "╜",
		teeDown: "╥", teeUp: "╨", teeRight: "╟", teeLeft: "╢",
		cross: "╫", vertical: "║", horizontal: "─",
	},
	{kindAscii, kindAscii}: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		teeDown: "+", teeUp: "+", teeRight: "+", teeLeft: "+",
		cross: "+", vertical: "|", horizontal: "-",
	},
	{kindAir, kindAir}: {
		topLeft: " ", topRight: " ", bottomLeft: " ", bottomRight: " ",
		teeDown: " ", teeUp: " ", teeRight: " ", teeLeft: " ",
		cross: " ", vertical: " ", horizontal: " ",
	},
}

// resolveCornerSet returns the cornerSet to use for a corner whose vertical
// neighbours (above/below) resolve to vKind and whose horizontal neighbours
// (left/right) resolve to hKind. Exact combinations are looked up directly;
// anything else falls back to the pure table of whichever kind has higher
// precedence, applied to both axes.
func resolveCornerSet(vKind, hKind strokeKind) cornerSet {
	if set, ok := intersectionTables[kindPair{vKind, hKind}]; ok {
		return set
	}
	dominant := vKind
	if hKind.precedence() > vKind.precedence() {
		dominant = hKind
	}
	if set, ok := intersectionTables[kindPair{dominant, dominant}]; ok {
		return set
	}
	return intersectionTables[kindPair{kindLight, kindLight}]
}

// dominantKind picks the higher-precedence of two stroke kinds seen on the
// same axis (e.g. the above and below strokes of one corner), with
// kindNone contributing nothing. Two equal non-none kinds of the "light"
// family only stay kindLightRounded when both actually are -- a single
// rounded stroke meeting a square one falls back to square, since a mixed
// rounded/square corner has no sensible glyph.
func dominantKind(a, b strokeKind) strokeKind {
	switch {
	case a == kindNone:
		return b
	case b == kindNone:
		return a
	case a == b:
		return a
	case (a == kindLightRounded && b == kindLight) || (a == kindLight && b == kindLightRounded):
		return kindLight
	case a.precedence() >= b.precedence():
		return a
	default:
		return b
	}
}
