/*
  rule.go
  Description: ordered (matcher, value) rule lists with last-match-wins
  lookup, shared by the format/size/wrap/align pipelines
  -----------------------------------------------------------------------------

  Grounded on the registration order tbl.Tbl builds its column/row state in
  (each AddRow/HSingleRule call appends to the table in call order, and later
  calls take precedence over earlier structural decisions for the same
  position) generalized into an explicit last-match-wins rule list so four
  independent pipelines can share one lookup algorithm.
*/

package table

// rule pairs a CellMatcher predicate with the pipeline value it selects.
type rule[T any] struct {
	matcher CellMatcher
	value   T
}

// ruleList holds an always-present default rule at position 0 plus any
// number of additional rules appended by registration calls. lookup scans
// from the most recently registered rule backward and returns the value of
// the first one whose matcher matches, falling back to the default.
type ruleList[T any] struct {
	rules []rule[T]
}

// newRuleList creates a ruleList whose position 0 is the always-matching
// default rule.
func newRuleList[T any](defaultValue T) *ruleList[T] {
	return &ruleList[T]{
		rules: []rule[T]{{matcher: MatchAll, value: defaultValue}},
	}
}

// register appends a new rule; being last in the slice, it outranks every
// rule registered before it.
func (l *ruleList[T]) register(matcher CellMatcher, value T) {
	l.rules = append(l.rules, rule[T]{matcher: matcher, value: value})
}

// lookup returns the value of the last-registered rule whose matcher
// matches coord against model. The default rule at position 0 always
// matches, so lookup always returns a value.
func (l *ruleList[T]) lookup(coord CellCoord, model TableModel) T {
	for i := len(l.rules) - 1; i >= 0; i-- {
		if l.rules[i].matcher(coord, model) {
			return l.rules[i].value
		}
	}
	return l.rules[0].value
}
