package filtermodel

import (
	"fmt"
	"log/slog"
)

type options struct {
	config Config
	logger *slog.Logger
}

type Option func(*options) error

// WithConfig replaces every setting with a copy of cfg. Options after it
// still apply on top.
func WithConfig(cfg *Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("%w: nil config", ErrInvalidConfiguration)
		}
		o.config = *cfg.Copy()
		return nil
	}
}

// WithOperators sets the operators the model allows. At least one is required.
func WithOperators(operators ...Operator) Option {
	return func(o *options) error {
		if len(operators) == 0 {
			return fmt.Errorf("%w: one or more operators must be specified", ErrInvalidConfiguration)
		}
		o.config.Operators = append([]Operator{}, operators...)
		return nil
	}
}

// WithDefaultOperator sets the initial operator, also restored by Clear.
// Default is the first allowed operator.
func WithDefaultOperator(operator Operator) Option {
	return func(o *options) error {
		o.config.DefaultOperator = &operator
		return nil
	}
}

// WithWildcard sets the rune matching any run of characters in textual
// operands. Default '%'.
func WithWildcard(wildcard rune) Option {
	return func(o *options) error {
		o.config.Wildcard = string(wildcard)
		return nil
	}
}

// WithCaseSensitive sets the initial case sensitivity. Default true.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(o *options) error {
		o.config.CaseSensitive = &caseSensitive
		return nil
	}
}

// WithAutomaticWildcard sets the initial automatic wildcard policy. Default None.
func WithAutomaticWildcard(wildcard AutomaticWildcard) Option {
	return func(o *options) error {
		o.config.AutomaticWildcard = wildcard
		return nil
	}
}

// WithAutoEnable sets whether enabled follows the operands. Default true.
func WithAutoEnable(autoEnable bool) Option {
	return func(o *options) error {
		o.config.AutoEnable = &autoEnable
		return nil
	}
}

// WithLogger sets logger for the model
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
