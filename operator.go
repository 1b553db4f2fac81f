package filtermodel

import (
	"fmt"
	"strings"
)

// Operator is the comparison applied between a column value and the
// condition operands.
type Operator int

const (
	// Equal accepts values equal to the equal operand. Textual operands
	// may contain wildcards.
	Equal Operator = iota
	// NotEqual accepts values Equal rejects.
	NotEqual
	// LessThan accepts values below the upper bound.
	LessThan
	// LessThanOrEqual accepts values at or below the upper bound.
	LessThanOrEqual
	// GreaterThan accepts values above the lower bound.
	GreaterThan
	// GreaterThanOrEqual accepts values at or above the lower bound.
	GreaterThanOrEqual
	// Between accepts values in the closed interval [lower, upper].
	Between
	// BetweenExclusive accepts values in the open interval (lower, upper).
	BetweenExclusive
	// NotBetween accepts values outside the open interval (lower, upper),
	// the bounds included.
	NotBetween
	// NotBetweenExclusive accepts values outside the closed interval
	// [lower, upper], the bounds excluded.
	NotBetweenExclusive
	// In accepts values matching any member of the in operand.
	In
	// NotIn accepts values In rejects.
	NotIn
)

var operatorNames = [...]string{
	Equal:               "EQUAL",
	NotEqual:            "NOT_EQUAL",
	LessThan:            "LESS_THAN",
	LessThanOrEqual:     "LESS_THAN_OR_EQUAL",
	GreaterThan:         "GREATER_THAN",
	GreaterThanOrEqual:  "GREATER_THAN_OR_EQUAL",
	Between:             "BETWEEN",
	BetweenExclusive:    "BETWEEN_EXCLUSIVE",
	NotBetween:          "NOT_BETWEEN",
	NotBetweenExclusive: "NOT_BETWEEN_EXCLUSIVE",
	In:                  "IN",
	NotIn:               "NOT_IN",
}

// Operators returns every operator in declaration order.
func Operators() []Operator {
	ops := make([]Operator, len(operatorNames))
	for i := range ops {
		ops[i] = Operator(i)
	}
	return ops
}

// ParseOperator returns the operator with the given name, ignoring case.
func ParseOperator(name string) (Operator, error) {
	for i, n := range operatorNames {
		if strings.EqualFold(n, name) {
			return Operator(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidConfiguration, name)
}

func (op Operator) valid() bool {
	return op >= 0 && int(op) < len(operatorNames)
}

func (op Operator) String() string {
	if !op.valid() {
		return "UNKNOWN"
	}
	return operatorNames[op]
}

func (op Operator) MarshalText() ([]byte, error) {
	if !op.valid() {
		return nil, fmt.Errorf("%w: unknown operator %d", ErrInvalidConfiguration, int(op))
	}
	return []byte(operatorNames[op]), nil
}

func (op *Operator) UnmarshalText(text []byte) error {
	parsed, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
