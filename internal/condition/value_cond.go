package condition

// ValueCond checks equality with a single operand. Null equals null only.
type ValueCond[T any] struct {
	expected *T
	match    Match[T]
}

func NewValueCond[T any](expected *T, match Match[T]) ValueCond[T] {
	return ValueCond[T]{expected, match}
}

func (c ValueCond[T]) Eval(actual *T) bool {
	if actual == nil || c.expected == nil {
		return actual == nil && c.expected == nil
	}
	return c.match(*actual, *c.expected)
}
