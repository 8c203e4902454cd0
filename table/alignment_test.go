/*
  alignment_test.go
  Description: unit tests for the built-in alignment strategies
  -----------------------------------------------------------------------------
*/

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftAlignment(t *testing.T) {
	out := Left.Align([]string{"ab  "}, 4, 1)
	assert.Equal(t, []string{"ab  "}, out)
}

func TestRightAlignment(t *testing.T) {
	out := Right.Align([]string{"ab  "}, 4, 1)
	assert.Equal(t, []string{"  ab"}, out)
}

func TestCenterAlignmentOddRemainderGoesRight(t *testing.T) {
	out := Center.Align([]string{"ab   "}, 5, 1)
	assert.Equal(t, []string{" ab  "}, out)
}

func TestTopAlignmentPadsBelow(t *testing.T) {
	out := Top.Align([]string{"ab"}, 2, 3)
	assert.Equal(t, []string{"ab", "  ", "  "}, out)
}

func TestBottomAlignmentPadsAbove(t *testing.T) {
	out := Bottom.Align([]string{"ab"}, 2, 3)
	assert.Equal(t, []string{"  ", "  ", "ab"}, out)
}

func TestMiddleAlignmentOddRemainderGoesBelow(t *testing.T) {
	out := Middle.Align([]string{"ab"}, 2, 4)
	assert.Equal(t, []string{"  ", "ab", "  ", "  "}, out)
}

func TestComposeAppliesHorizontalThenVertical(t *testing.T) {
	composed := Compose(Right, Top)
	out := composed.Align([]string{"ab  "}, 4, 2)
	assert.Equal(t, []string{"  ab", "    "}, out)
}
