package filtermodel

import (
	"strings"

	"github.com/filtermodel/filtermodel-golang/internal/condition"
	"github.com/filtermodel/filtermodel-golang/internal/value"
)

// Accepts reports whether v satisfies the condition. A disabled condition
// accepts everything.
func (m *Model[T]) Accepts(v T) bool {
	return m.accepts(&v)
}

// AcceptsNull reports whether a null column value satisfies the condition.
func (m *Model[T]) AcceptsNull() bool {
	return m.accepts(nil)
}

func (m *Model[T]) accepts(v *T) bool {
	if !m.enabled {
		return true
	}
	return m.evaluator().Eval(v)
}

// evaluator builds the condition for the current operator and operands.
func (m *Model[T]) evaluator() condition.Condition[T] {
	ops := m.operands
	lower, upper := ops.lowerBound.value, ops.upperBound.value
	switch m.operator {
	case Equal:
		return condition.NewValueCond(ops.equal.get(), m.match)
	case NotEqual:
		return condition.NewNotCond[T](condition.NewValueCond(ops.equal.get(), m.match))
	case LessThan:
		return condition.NewCompCond(condition.LtOp, upper, m.compareValues)
	case LessThanOrEqual:
		return condition.NewCompCond(condition.LteOp, upper, m.compareValues)
	case GreaterThan:
		return condition.NewCompCond(condition.GtOp, lower, m.compareValues)
	case GreaterThanOrEqual:
		return condition.NewCompCond(condition.GteOp, lower, m.compareValues)
	case Between:
		return condition.NewRangeCond(lower, upper, true, m.compareValues)
	case BetweenExclusive:
		return condition.NewRangeCond(lower, upper, false, m.compareValues)
	case NotBetween:
		return condition.NewOutsideCond(lower, upper, true, m.compareValues)
	case NotBetweenExclusive:
		return condition.NewOutsideCond(lower, upper, false, m.compareValues)
	case In:
		return condition.NewInCond(ops.in.values, m.match)
	case NotIn:
		return condition.NewNotInCond(ops.in.values, m.match)
	}
	return condition.True[T]{}
}

// match is the equality used by Equal, NotEqual, In and NotIn. Textual
// operands containing the wildcard rune match as patterns.
func (m *Model[T]) match(actual, expected T) bool {
	if m.textual {
		if m.folding() {
			actual, expected = value.Fold(actual), m.foldPattern(expected)
		}
		a, _ := value.Text(actual)
		e, _ := value.Text(expected)
		return m.matcher.Match(e, a)
	}
	if m.folding() {
		actual, expected = value.Fold(actual), value.Fold(expected)
	}
	return m.compare(actual, expected) == 0
}

// foldPattern folds the literal parts of a textual pattern, leaving a
// letter wildcard intact.
func (m *Model[T]) foldPattern(pattern T) T {
	s, _ := value.Text(pattern)
	w := string(m.Wildcard())
	parts := strings.Split(s, w)
	for i, p := range parts {
		parts[i], _ = value.Text(value.Fold(value.FromText[T](p)))
	}
	return value.FromText[T](strings.Join(parts, w))
}

func (m *Model[T]) compareValues(a, b T) int {
	if m.folding() {
		a, b = value.Fold(a), value.Fold(b)
	}
	return m.compare(a, b)
}

func (m *Model[T]) folding() bool {
	return !m.caseSensitive && m.foldable
}
