package filtermodel

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/filtermodel/filtermodel-golang/internal/event"
	"github.com/filtermodel/filtermodel-golang/internal/value"
)

// Operands holds the values a condition compares column values with.
// Each operator reads only some of them; see Model.SetOperator.
type Operands[T comparable] struct {
	equal      *Operand[T]
	in         *SetOperand[T]
	upperBound *Operand[T]
	lowerBound *Operand[T]
}

func newOperands[T comparable](m *Model[T]) *Operands[T] {
	return &Operands[T]{
		equal:      &Operand[T]{model: m, name: "equal", read: m.withAutomaticWildcard},
		in:         &SetOperand[T]{model: m, index: map[T]struct{}{}},
		upperBound: &Operand[T]{model: m, name: "upper bound"},
		lowerBound: &Operand[T]{model: m, name: "lower bound"},
	}
}

// Equal is the operand of Equal and NotEqual.
func (o *Operands[T]) Equal() *Operand[T] {
	return o.equal
}

// In is the operand of In and NotIn.
func (o *Operands[T]) In() *SetOperand[T] {
	return o.in
}

// UpperBound is read by LessThan, LessThanOrEqual and the range operators.
func (o *Operands[T]) UpperBound() *Operand[T] {
	return o.upperBound
}

// LowerBound is read by GreaterThan, GreaterThanOrEqual and the range operators.
func (o *Operands[T]) LowerBound() *Operand[T] {
	return o.lowerBound
}

// clear nulls every operand and notifies the operand listeners. The
// caller takes care of enabled and the condition notification.
func (o *Operands[T]) clear() {
	o.equal.value = nil
	o.in.values = nil
	maps.Clear(o.in.index)
	o.upperBound.value = nil
	o.lowerBound.value = nil
	o.equal.changed.Fire(struct{}{})
	o.in.changed.Fire(struct{}{})
	o.lowerBound.changed.Fire(struct{}{})
	o.upperBound.changed.Fire(struct{}{})
}

// Operand is a single nullable operand value.
type Operand[T comparable] struct {
	model   *Model[T]
	name    string
	value   *T
	read    func(T) T
	changed event.Event[struct{}]
}

// Get returns the operand, with ok false when it's null. The equal operand
// of a textual column comes back wrapped per the automatic wildcard policy
// while the operator is Equal or NotEqual.
func (o *Operand[T]) Get() (v T, ok bool) {
	if o.value == nil {
		return v, false
	}
	if o.read != nil {
		return o.read(*o.value), true
	}
	return *o.value, true
}

// Raw returns the operand as it was set.
func (o *Operand[T]) Raw() (v T, ok bool) {
	if o.value == nil {
		return v, false
	}
	return *o.value, true
}

func (o *Operand[T]) IsNull() bool {
	return o.value == nil
}

// Set stores v. It fails with ErrLocked while the model is locked.
func (o *Operand[T]) Set(v T) error {
	return o.set(&v)
}

// Clear nulls the operand. It fails with ErrLocked while the model is locked.
func (o *Operand[T]) Clear() error {
	return o.set(nil)
}

// OnChanged subscribes to every Set and Clear, even when the value stays
// the same. The returned function unsubscribes.
func (o *Operand[T]) OnChanged(fn func()) func() {
	return o.changed.Subscribe(func(struct{}) { fn() })
}

func (o *Operand[T]) set(v *T) error {
	if err := o.model.checkLock("set " + o.name); err != nil {
		return err
	}
	o.value = v
	o.changed.Fire(struct{}{})
	o.model.operandChanged()
	return nil
}

// get returns the operand as Get does, nil meaning null.
func (o *Operand[T]) get() *T {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}

// SetOperand is a set of operand values. Duplicates collapse; Values
// keeps the order in which values were first added.
type SetOperand[T comparable] struct {
	model   *Model[T]
	values  []T
	index   map[T]struct{}
	changed event.Event[struct{}]
}

// Values returns a copy of the set.
func (s *SetOperand[T]) Values() []T {
	return slices.Clone(s.values)
}

func (s *SetOperand[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *SetOperand[T]) Len() int {
	return len(s.values)
}

func (s *SetOperand[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Set replaces the set with values. It fails with ErrLocked while the
// model is locked.
func (s *SetOperand[T]) Set(values ...T) error {
	if err := s.model.checkLock("set in"); err != nil {
		return err
	}
	s.values = nil
	maps.Clear(s.index)
	for _, v := range values {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = struct{}{}
		s.values = append(s.values, v)
	}
	s.changed.Fire(struct{}{})
	s.model.operandChanged()
	return nil
}

// Clear empties the set. It fails with ErrLocked while the model is locked.
func (s *SetOperand[T]) Clear() error {
	return s.Set()
}

// OnChanged subscribes to every Set and Clear. The returned function
// unsubscribes.
func (s *SetOperand[T]) OnChanged(fn func()) func() {
	return s.changed.Subscribe(func(struct{}) { fn() })
}

// withAutomaticWildcard is the read transform of the equal operand.
func (m *Model[T]) withAutomaticWildcard(v T) T {
	if !m.textual || m.automaticWildcard == None {
		return v
	}
	if m.operator != Equal && m.operator != NotEqual {
		return v
	}
	return value.Wrap(v, m.Wildcard(), m.automaticWildcard.prefix(), m.automaticWildcard.postfix())
}
