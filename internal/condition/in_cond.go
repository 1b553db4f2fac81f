package condition

// InCond checks if value is in the expected set. Null is never a member.
type InCond[T any] struct {
	expected []T
	match    Match[T]
}

func NewInCond[T any](expected []T, match Match[T]) InCond[T] {
	return InCond[T]{expected, match}
}

func NewNotInCond[T any](expected []T, match Match[T]) Condition[T] {
	return NotCond[T]{NewInCond(expected, match)}
}

func (c InCond[T]) Eval(actual *T) bool {
	if actual == nil {
		return false
	}
	for _, e := range c.expected {
		if c.match(*actual, e) {
			return true
		}
	}
	return false
}
