package filtermodel

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/barkimedes/go-deepcopy"
	"golang.org/x/exp/slices"
)

// Config contains the construction-time settings of a condition model.
// Nil and zero fields fall back to defaults: all operators (Equal only for
// bool columns), the first allowed operator, the % wildcard, case
// sensitivity and auto-enable on.
type Config struct {
	Operators         []Operator        `json:"operators,omitempty"`
	DefaultOperator   *Operator         `json:"defaultOperator,omitempty"`
	Wildcard          string            `json:"wildcard,omitempty"`
	CaseSensitive     *bool             `json:"caseSensitive,omitempty"`
	AutomaticWildcard AutomaticWildcard `json:"automaticWildcard,omitempty"`
	AutoEnable        *bool             `json:"autoEnable,omitempty"`
}

// ParseConfig creates a Config from JSON. Operators and automatic wildcard
// policies are given by name, e.g.
//
//	{"operators": ["EQUAL", "IN"], "defaultOperator": "IN", "wildcard": "*"}
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Copy returns a deep copy, sharing no slices or pointers with c.
func (c *Config) Copy() *Config {
	cp := deepcopy.MustAnything(c).(*Config)
	// nil and empty operator sets mean different things
	if c.Operators == nil {
		cp.Operators = nil
	}
	return cp
}

// Validate checks the settings that don't depend on the column type.
func (c *Config) Validate() error {
	if c.Operators != nil && len(c.Operators) == 0 {
		return fmt.Errorf("%w: one or more operators must be specified", ErrInvalidConfiguration)
	}
	for _, op := range c.Operators {
		if !op.valid() {
			return fmt.Errorf("%w: unknown operator %d", ErrInvalidConfiguration, int(op))
		}
	}
	if c.DefaultOperator != nil {
		if !c.DefaultOperator.valid() {
			return fmt.Errorf("%w: unknown operator %d", ErrInvalidConfiguration, int(*c.DefaultOperator))
		}
		if c.Operators != nil && !slices.Contains(c.Operators, *c.DefaultOperator) {
			return fmt.Errorf("%w: default operator %v is not among the allowed operators", ErrInvalidConfiguration, *c.DefaultOperator)
		}
	}
	if c.Wildcard != "" && utf8.RuneCountInString(c.Wildcard) != 1 {
		return fmt.Errorf("%w: wildcard %q must be a single character", ErrInvalidConfiguration, c.Wildcard)
	}
	if !c.AutomaticWildcard.valid() {
		return fmt.Errorf("%w: unknown automatic wildcard %d", ErrInvalidConfiguration, int(c.AutomaticWildcard))
	}
	return nil
}

// operators resolves the allowed operator set and the default operator.
func (c *Config) operators(boolColumn bool) ([]Operator, Operator) {
	ops := c.Operators
	if ops == nil {
		if boolColumn {
			ops = []Operator{Equal}
		} else {
			ops = Operators()
		}
	}
	def := ops[0]
	if c.DefaultOperator != nil {
		def = *c.DefaultOperator
	}
	return slices.Clone(ops), def
}

func (c *Config) wildcard() rune {
	if c.Wildcard == "" {
		return DefaultWildcard
	}
	r, _ := utf8.DecodeRuneInString(c.Wildcard)
	return r
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
