package condition

type NotCond[T any] struct {
	cond Condition[T]
}

func NewNotCond[T any](cond Condition[T]) NotCond[T] {
	return NotCond[T]{cond}
}

func (c NotCond[T]) Eval(actual *T) bool {
	return !c.cond.Eval(actual)
}
