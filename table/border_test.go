/*
  border_test.go
  Description: unit tests for BorderSpecification registration and corner
  resolution
  -----------------------------------------------------------------------------
*/

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBorderGridOutlineThin(t *testing.T) {
	g := newBorderGrid(2, 2)
	g.register(BorderSpecification{Top: 0, Left: 0, Bottom: 2, Right: 2, Match: Outline, Style: StyleThin})

	topLeft, ok := g.cornerAt(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "┌", topLeft)

	topRight, ok := g.cornerAt(0, 2)
	assert.True(t, ok)
	assert.Equal(t, "┐", topRight)

	bottomLeft, ok := g.cornerAt(2, 0)
	assert.True(t, ok)
	assert.Equal(t, "└", bottomLeft)

	bottomRight, ok := g.cornerAt(2, 2)
	assert.True(t, ok)
	assert.Equal(t, "┘", bottomRight)

	_, ok = g.cornerAt(1, 1)
	assert.False(t, ok, "inner corner has no registered edges when only OUTLINE is matched")
}

func TestBorderGridLaterStyleWinsOnSharedEdges(t *testing.T) {
	g := newBorderGrid(2, 2)
	g.register(BorderSpecification{Top: 0, Left: 0, Bottom: 2, Right: 2, Match: Outline, Style: StyleThin})
	g.register(BorderSpecification{Top: 0, Left: 0, Bottom: 2, Right: 2, Match: Outline, Style: StyleDouble})

	topLeft, ok := g.cornerAt(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "╔", topLeft)

	h, ok := g.horizontalAt(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "═", h)

	v, ok := g.verticalAt(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "║", v)
}

func TestBorderGridRegistrationIsIdempotent(t *testing.T) {
	spec := BorderSpecification{Top: 0, Left: 0, Bottom: 2, Right: 2, Match: All, Style: StyleThin}
	once := newBorderGrid(2, 2)
	once.register(spec)

	twice := newBorderGrid(2, 2)
	twice.register(spec)
	twice.register(spec)

	for r := 0; r <= 2; r++ {
		for c := 0; c <= 2; c++ {
			a, aok := once.cornerAt(r, c)
			b, bok := twice.cornerAt(r, c)
			assert.Equal(t, aok, bok)
			assert.Equal(t, a, b)
		}
	}
}

func TestBorderGridInnerCross(t *testing.T) {
	g := newBorderGrid(2, 2)
	g.register(BorderSpecification{Top: 0, Left: 0, Bottom: 2, Right: 2, Match: All, Style: StyleThin})

	cross, ok := g.cornerAt(1, 1)
	assert.True(t, ok)
	assert.Equal(t, "┼", cross)
}

func TestBorderGridNoneClearsPreviousGlyph(t *testing.T) {
	g := newBorderGrid(2, 2)
	g.register(BorderSpecification{Top: 0, Left: 0, Bottom: 2, Right: 2, Match: Outline, Style: StyleThin})
	g.register(BorderSpecification{Top: 0, Left: 0, Bottom: 2, Right: 2, Match: Top, Style: StyleNone})

	_, ok := g.horizontalAt(0, 0)
	assert.False(t, ok)
}
