/*
  errors.go
  Description: the error kinds Render and its configuration methods return
  -----------------------------------------------------------------------------
*/

package table

import "fmt"

// DimensionError reports a malformed row/column rectangle passed to
// WithBorder: a negative index, or one not satisfying top < bottom <= rows
// and left < right <= columns. WithBorder also returns it, with the
// rectangle it was given, for a border style it does not know.
type DimensionError struct {
	Top, Left, Bottom, Right int
	Reason                   string
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("table: invalid rectangle (%d,%d)-(%d,%d): %s", e.Top, e.Left, e.Bottom, e.Right, e.Reason)
}

// NullArgumentError reports a required argument that was nil: a nil model,
// matcher, formatter, constraints, wrapper or aligner passed to a
// registration method.
type NullArgumentError struct {
	Argument string
}

func (e NullArgumentError) Error() string {
	return fmt.Sprintf("table: %s must not be nil", e.Argument)
}

// ContractViolation reports a user-supplied Formatter, SizeConstraints,
// TextWrapper or AlignmentStrategy that broke its post-condition. Render
// recovers these from the panic asserting decorators raise and returns them
// as an ordinary error.
type ContractViolation struct {
	Coord  CellCoord
	Stage  string
	Reason string
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("table: contract violation at row %d column %d during %s: %s", e.Coord.Row, e.Coord.Column, e.Stage, e.Reason)
}

// RenderWidthTooSmall reports that the requested render width could not
// satisfy the sum of every column's minimum width plus its border overhead.
// Render still produces output (each column falls back to its minimum
// width), so this is diagnostic rather than fatal: Render does not return
// it, it only logs it as a warning to the logger attached with WithLogger.
type RenderWidthTooSmall struct {
	Requested, Needed int
}

func (e RenderWidthTooSmall) Error() string {
	return fmt.Sprintf("table: requested width %d is smaller than the %d needed for every column's minimum", e.Requested, e.Needed)
}
