package filtermodel

import "golang.org/x/exp/slices"

// Condition is a detached description of a model's condition, for
// collaborators that translate conditions rather than evaluate them, such
// as a query builder. Operand pointers are nil for null operands. Equal
// carries the automatic wildcard already applied.
type Condition[T comparable] struct {
	Identifier    string
	Operator      Operator
	Enabled       bool
	CaseSensitive bool
	Wildcard      rune
	Equal         *T
	In            []T
	LowerBound    *T
	UpperBound    *T
}

// Condition describes the current state. Later changes to the model don't
// affect the returned value.
func (m *Model[T]) Condition() Condition[T] {
	ops := m.operands
	return Condition[T]{
		Identifier:    m.identifier,
		Operator:      m.operator,
		Enabled:       m.enabled,
		CaseSensitive: m.caseSensitive,
		Wildcard:      m.Wildcard(),
		Equal:         ops.equal.get(),
		In:            slices.Clone(ops.in.values),
		LowerBound:    copyPtr(ops.lowerBound.value),
		UpperBound:    copyPtr(ops.upperBound.value),
	}
}

// Operands returns the operands the operator reads, the lower bound before
// the upper one. Null operands are nil.
func (c Condition[T]) Operands() []*T {
	switch c.Operator {
	case Equal, NotEqual:
		return []*T{c.Equal}
	case LessThan, LessThanOrEqual:
		return []*T{c.UpperBound}
	case GreaterThan, GreaterThanOrEqual:
		return []*T{c.LowerBound}
	case Between, BetweenExclusive, NotBetween, NotBetweenExclusive:
		return []*T{c.LowerBound, c.UpperBound}
	case In, NotIn:
		ops := make([]*T, len(c.In))
		for i := range c.In {
			ops[i] = &c.In[i]
		}
		return ops
	}
	return nil
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
