package value

import (
	"reflect"
	"strings"
)

// Text returns v as a string when T has a string kind.
func Text[T any](v T) (string, bool) {
	if !IsText[T]() {
		return "", false
	}
	return reflect.ValueOf(&v).Elem().String(), true
}

// FromText converts s to T. T must have a string kind.
func FromText[T any](s string) T {
	var t T
	reflect.ValueOf(&t).Elem().SetString(s)
	return t
}

// Wrap adds the wildcard rune in front of and/or after a textual value,
// unless it's already there. Non-textual values are returned unchanged.
func Wrap[T any](v T, wildcard rune, prefix, postfix bool) T {
	s, ok := Text(v)
	if !ok {
		return v
	}
	w := string(wildcard)
	if prefix && !strings.HasPrefix(s, w) {
		s = w + s
	}
	if postfix && !strings.HasSuffix(s, w) {
		s = s + w
	}
	return FromText[T](s)
}

type lowerer[T any] interface {
	ToLower() T
}

// Fold lowercases v. Types providing ToLower() T fold through it, string
// kinds fold with strings.ToLower, everything else is returned as is.
func Fold[T any](v T) T {
	if l, ok := any(v).(lowerer[T]); ok {
		return l.ToLower()
	}
	if s, ok := Text(v); ok {
		return FromText[T](strings.ToLower(s))
	}
	return v
}

// Foldable reports whether Fold can change values of T.
func Foldable[T any]() bool {
	if IsText[T]() {
		return true
	}
	return TypeOf[T]().Implements(TypeOf[lowerer[T]]())
}
