package filtermodel

import (
	"fmt"
	"strings"
)

// DefaultWildcard is the wildcard rune used unless WithWildcard says otherwise.
const DefaultWildcard = '%'

// AutomaticWildcard controls how the equal operand of a textual column is
// wrapped with wildcards when read.
type AutomaticWildcard int

const (
	// None leaves the operand as entered.
	None AutomaticWildcard = iota
	// Prefix prepends a wildcard, so the operand matches at the end.
	Prefix
	// Postfix appends a wildcard, so the operand matches at the start.
	Postfix
	// PrefixAndPostfix wraps the operand, so it matches anywhere.
	PrefixAndPostfix
)

var automaticWildcardNames = [...]string{
	None:             "NONE",
	Prefix:           "PREFIX",
	Postfix:          "POSTFIX",
	PrefixAndPostfix: "PREFIX_AND_POSTFIX",
}

// ParseAutomaticWildcard returns the policy with the given name, ignoring case.
func ParseAutomaticWildcard(name string) (AutomaticWildcard, error) {
	for i, n := range automaticWildcardNames {
		if strings.EqualFold(n, name) {
			return AutomaticWildcard(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown automatic wildcard %q", ErrInvalidConfiguration, name)
}

func (w AutomaticWildcard) valid() bool {
	return w >= 0 && int(w) < len(automaticWildcardNames)
}

func (w AutomaticWildcard) prefix() bool {
	return w == Prefix || w == PrefixAndPostfix
}

func (w AutomaticWildcard) postfix() bool {
	return w == Postfix || w == PrefixAndPostfix
}

func (w AutomaticWildcard) String() string {
	if !w.valid() {
		return "UNKNOWN"
	}
	return automaticWildcardNames[w]
}

func (w AutomaticWildcard) MarshalText() ([]byte, error) {
	if !w.valid() {
		return nil, fmt.Errorf("%w: unknown automatic wildcard %d", ErrInvalidConfiguration, int(w))
	}
	return []byte(automaticWildcardNames[w]), nil
}

func (w *AutomaticWildcard) UnmarshalText(text []byte) error {
	parsed, err := ParseAutomaticWildcard(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
