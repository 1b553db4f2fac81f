// Package value classifies column value types and applies the text
// transformations a condition needs: case folding and wildcard wrapping.
package value

import "reflect"

// Kind is the coarse classification of a column value type.
type Kind int

const (
	OtherKind Kind = iota
	TextKind
	BoolKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "text"
	case BoolKind:
		return "bool"
	default:
		return "other"
	}
}

// KindOf classifies T by its underlying kind, so named string types
// are text too.
func KindOf[T any]() Kind {
	switch TypeOf[T]().Kind() {
	case reflect.String:
		return TextKind
	case reflect.Bool:
		return BoolKind
	default:
		return OtherKind
	}
}

// TypeOf returns the runtime type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// IsText reports whether T has a string kind.
func IsText[T any]() bool {
	return KindOf[T]() == TextKind
}

// IsBool reports whether T has a bool kind.
func IsBool[T any]() bool {
	return KindOf[T]() == BoolKind
}
