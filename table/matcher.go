/*
  matcher.go
  Description: predicates selecting which cells a rule applies to
  -----------------------------------------------------------------------------
*/

package table

import "github.com/expr-lang/expr"

// CellMatcher decides whether a rule applies to a given cell. Matchers are
// plain predicates, deliberately not a type hierarchy: spec.md's pipelines
// scan an ordered list of (matcher, strategy) pairs and the last match wins.
type CellMatcher func(coord CellCoord, model TableModel) bool

// MatchAll matches every cell of the table. The default rule installed at
// position 0 of every pipeline uses this matcher.
func MatchAll(coord CellCoord, model TableModel) bool {
	return true
}

// MatchRow matches every cell in the given row.
func MatchRow(row int) CellMatcher {
	return func(coord CellCoord, model TableModel) bool {
		return coord.Row == row
	}
}

// MatchColumn matches every cell in the given column.
func MatchColumn(column int) CellMatcher {
	return func(coord CellCoord, model TableModel) bool {
		return coord.Column == column
	}
}

// MatchCell matches exactly one cell.
func MatchCell(row, column int) CellMatcher {
	return func(coord CellCoord, model TableModel) bool {
		return coord.Row == row && coord.Column == column
	}
}

// MatchRowRange matches every cell whose row lies in [from, to).
func MatchRowRange(from, to int) CellMatcher {
	return func(coord CellCoord, model TableModel) bool {
		return coord.Row >= from && coord.Row < to
	}
}

// MatchColumnRange matches every cell whose column lies in [from, to).
func MatchColumnRange(from, to int) CellMatcher {
	return func(coord CellCoord, model TableModel) bool {
		return coord.Column >= from && coord.Column < to
	}
}

// MatchPredicate adapts an arbitrary predicate over a cell's value into a
// CellMatcher.
func MatchPredicate(predicate func(value any) bool) CellMatcher {
	return func(coord CellCoord, model TableModel) bool {
		return predicate(model.Value(coord.Row, coord.Column))
	}
}

// exprEnv is the environment exposed to expressions compiled by ExprMatcher.
type exprEnv struct {
	Row, Column int
	Value       any
}

// ExprMatcher compiles a boolean expression (via github.com/expr-lang/expr)
// against an environment exposing Row, Column and Value, and adapts it into
// a CellMatcher. It is sugar over MatchPredicate for rules authored as
// strings (e.g. loaded from configuration) rather than Go closures --
// "Column == 0", `Value startsWith "ERROR"`. Compile errors are returned
// synchronously, consistent with the fail-fast registration policy of
// spec.md section 7.
func ExprMatcher(expression string) (CellMatcher, error) {
	program, err := expr.Compile(expression, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}

	return func(coord CellCoord, model TableModel) bool {
		env := exprEnv{Row: coord.Row, Column: coord.Column, Value: model.Value(coord.Row, coord.Column)}
		out, err := expr.Run(program, env)
		if err != nil {
			return false
		}
		matched, _ := out.(bool)
		return matched
	}, nil
}
