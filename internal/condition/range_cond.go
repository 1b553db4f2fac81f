package condition

// RangeCond accepts values inside [lower, upper], or (lower, upper) when
// not inclusive. A null bound leaves that side open.
type RangeCond[T any] struct {
	lower, upper *T
	inclusive    bool
	compare      Compare[T]
}

func NewRangeCond[T any](lower, upper *T, inclusive bool, compare Compare[T]) RangeCond[T] {
	return RangeCond[T]{lower, upper, inclusive, compare}
}

func (c RangeCond[T]) Eval(actual *T) bool {
	if c.lower == nil && c.upper == nil {
		return true
	}
	if actual == nil {
		return false
	}
	if c.lower != nil && !above(c.compare(*actual, *c.lower), c.inclusive) {
		return false
	}
	if c.upper != nil && !above(c.compare(*c.upper, *actual), c.inclusive) {
		return false
	}
	return true
}

// OutsideCond accepts values outside a range. With inclusive set the
// bounds themselves count as outside, i.e. it's the complement of the open
// interval; otherwise it's the complement of the closed one.
type OutsideCond[T any] struct {
	lower, upper *T
	inclusive    bool
	compare      Compare[T]
}

func NewOutsideCond[T any](lower, upper *T, inclusive bool, compare Compare[T]) OutsideCond[T] {
	return OutsideCond[T]{lower, upper, inclusive, compare}
}

func (c OutsideCond[T]) Eval(actual *T) bool {
	if c.lower == nil && c.upper == nil {
		return true
	}
	if actual == nil {
		return false
	}
	if c.lower != nil && above(c.compare(*c.lower, *actual), c.inclusive) {
		return true
	}
	if c.upper != nil && above(c.compare(*actual, *c.upper), c.inclusive) {
		return true
	}
	return false
}

func above(cmp int, inclusive bool) bool {
	if inclusive {
		return cmp >= 0
	}
	return cmp > 0
}
