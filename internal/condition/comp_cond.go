package condition

// CompCond compares a value with a single bound. A null bound leaves the
// value unconstrained, null included.
type CompCond[T any] struct {
	op      CompOp
	bound   *T
	compare Compare[T]
}

func NewCompCond[T any](op CompOp, bound *T, compare Compare[T]) CompCond[T] {
	return CompCond[T]{op, bound, compare}
}

func (c CompCond[T]) Eval(actual *T) bool {
	if c.bound == nil {
		return true
	}
	if actual == nil {
		return false
	}
	cmp := c.compare(*actual, *c.bound)
	switch c.op {
	case LtOp:
		return cmp < 0
	case LteOp:
		return cmp <= 0
	case GtOp:
		return cmp > 0
	case GteOp:
		return cmp >= 0
	}
	return false
}
