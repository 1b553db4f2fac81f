// Package condition evaluates a single column value against one operator.
// A nil actual value stands for null.
package condition

// Condition evaluates conditional expression
type Condition[T any] interface {
	Eval(actual *T) bool
}

// Compare returns a negative number, zero or a positive number when a is
// less than, equal to or greater than b.
type Compare[T any] func(a, b T) int

// Match reports whether actual equals the expected operand.
type Match[T any] func(actual, expected T) bool
