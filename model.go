package filtermodel

import (
	"cmp"
	"fmt"
	"log/slog"
	"reflect"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/filtermodel/filtermodel-golang/internal/event"
	"github.com/filtermodel/filtermodel-golang/internal/pattern"
	"github.com/filtermodel/filtermodel-golang/internal/value"
)

// Model holds the filter condition of a single column with values of
// type T: the operator, its operands and the flags controlling how they
// apply. See the package documentation for the notification contract.
type Model[T comparable] struct {
	identifier      string
	columnType      reflect.Type
	compare         func(a, b T) int
	operators       []Operator
	defaultOperator Operator
	textual         bool
	foldable        bool
	matcher         *pattern.Matcher
	logger          *slog.Logger

	operator          Operator
	operands          *Operands[T]
	caseSensitive     bool
	automaticWildcard AutomaticWildcard
	autoEnable        bool
	enabled           bool
	locked            bool

	operatorChanged          event.Event[Operator]
	enabledChanged           event.Event[bool]
	caseSensitiveChanged     event.Event[bool]
	automaticWildcardChanged event.Event[AutomaticWildcard]
	autoEnableChanged        event.Event[bool]
	lockedChanged            event.Event[bool]
	cleared                  event.Event[struct{}]
	changed                  event.Event[struct{}]
}

// New creates a condition model for a column of naturally ordered values.
// Floating point NaN orders before every other value and equals itself.
func New[T constraints.Ordered](identifier string, opts ...Option) (*Model[T], error) {
	return NewFunc(identifier, cmp.Compare[T], opts...)
}

// NewFunc creates a condition model ordering values with compare, which
// returns a negative number, zero or a positive number when a is less
// than, equal to or greater than b. Use it for types such as time.Time or
// bool (see CompareBool).
func NewFunc[T comparable](identifier string, compare func(a, b T) int, opts ...Option) (*Model[T], error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", ErrInvalidConfiguration)
	}
	if compare == nil {
		return nil, fmt.Errorf("%w: compare function is required for %q", ErrInvalidConfiguration, identifier)
	}
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	cfg := &o.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	operators, defaultOperator := cfg.operators(value.IsBool[T]())
	if !slices.Contains(operators, defaultOperator) {
		return nil, fmt.Errorf("%w: default operator %v is not among the allowed operators", ErrInvalidConfiguration, defaultOperator)
	}
	if o.logger == nil {
		o.logger = logger
	}

	m := &Model[T]{
		identifier:        identifier,
		columnType:        value.TypeOf[T](),
		compare:           compare,
		operators:         operators,
		defaultOperator:   defaultOperator,
		textual:           value.IsText[T](),
		foldable:          value.Foldable[T](),
		matcher:           pattern.NewMatcher(cfg.wildcard()),
		logger:            o.logger.With("identifier", identifier),
		operator:          defaultOperator,
		caseSensitive:     boolOr(cfg.CaseSensitive, true),
		automaticWildcard: cfg.AutomaticWildcard,
		autoEnable:        boolOr(cfg.AutoEnable, true),
	}
	m.operands = newOperands(m)
	m.logger.Debug("Condition model created", "columnType", m.columnType, "operators", m.operators, "operator", m.operator)
	return m, nil
}

// CompareBool orders false before true. Pass it to NewFunc for bool columns.
func CompareBool(a, b bool) int {
	return value.CompareBool(a, b)
}

// Identifier returns the key identifying the column.
func (m *Model[T]) Identifier() string {
	return m.identifier
}

// ColumnType returns the runtime type of the column values.
func (m *Model[T]) ColumnType() reflect.Type {
	return m.columnType
}

// Operators returns the allowed operators.
func (m *Model[T]) Operators() []Operator {
	return slices.Clone(m.operators)
}

// DefaultOperator returns the operator the model starts with and Clear restores.
func (m *Model[T]) DefaultOperator() Operator {
	return m.defaultOperator
}

// Wildcard returns the rune matching any run of characters in textual operands.
func (m *Model[T]) Wildcard() rune {
	return m.matcher.Wildcard()
}

func (m *Model[T]) Operator() Operator {
	return m.operator
}

func (m *Model[T]) Operands() *Operands[T] {
	return m.operands
}

func (m *Model[T]) CaseSensitive() bool {
	return m.caseSensitive
}

func (m *Model[T]) AutomaticWildcard() AutomaticWildcard {
	return m.automaticWildcard
}

func (m *Model[T]) AutoEnable() bool {
	return m.autoEnable
}

// Enabled reports whether the condition filters. A disabled condition
// accepts every value.
func (m *Model[T]) Enabled() bool {
	return m.enabled
}

func (m *Model[T]) Locked() bool {
	return m.locked
}

// SetOperator changes the operator. With auto-enable on, enabled is
// recomputed for the new operator from the current operands.
func (m *Model[T]) SetOperator(operator Operator) error {
	if err := m.checkLock("set operator"); err != nil {
		return err
	}
	if !slices.Contains(m.operators, operator) {
		m.logger.Warn("Operator not allowed", "operator", operator, "operators", m.operators)
		return fmt.Errorf("%w: %v for %q", ErrOperatorNotAllowed, operator, m.identifier)
	}
	if operator == m.operator {
		return nil
	}
	m.operator = operator
	m.logger.Debug("Operator changed", "operator", operator)
	m.operatorChanged.Fire(operator)
	m.updateEnabled()
	m.changed.Fire(struct{}{})
	return nil
}

// SetEnabled turns the condition on or off. While auto-enable is on the
// value only lasts until the next operand or operator change recomputes it.
func (m *Model[T]) SetEnabled(enabled bool) error {
	if err := m.checkLock("set enabled"); err != nil {
		return err
	}
	if m.setEnabled(enabled) {
		m.changed.Fire(struct{}{})
	}
	return nil
}

func (m *Model[T]) SetCaseSensitive(caseSensitive bool) {
	if caseSensitive == m.caseSensitive {
		return
	}
	m.caseSensitive = caseSensitive
	m.caseSensitiveChanged.Fire(caseSensitive)
	m.changed.Fire(struct{}{})
}

// SetAutomaticWildcard changes how the equal operand is read. The stored
// operand is left untouched.
func (m *Model[T]) SetAutomaticWildcard(wildcard AutomaticWildcard) {
	if wildcard == m.automaticWildcard {
		return
	}
	m.automaticWildcard = wildcard
	m.automaticWildcardChanged.Fire(wildcard)
	m.changed.Fire(struct{}{})
}

// SetAutoEnable turns automatic enabling on or off. Turning it on
// recomputes enabled right away, unless the model is locked.
func (m *Model[T]) SetAutoEnable(autoEnable bool) {
	if autoEnable == m.autoEnable {
		return
	}
	m.autoEnable = autoEnable
	m.autoEnableChanged.Fire(autoEnable)
	if m.updateEnabled() {
		m.changed.Fire(struct{}{})
	}
}

// SetLocked locks or unlocks the model. A locked model rejects changes to
// the operator, the operands and enabled with ErrLocked.
func (m *Model[T]) SetLocked(locked bool) {
	if locked == m.locked {
		return
	}
	m.locked = locked
	m.logger.Debug("Lock changed", "locked", locked)
	m.lockedChanged.Fire(locked)
	if m.updateEnabled() {
		m.changed.Fire(struct{}{})
	}
}

// Clear restores the default operator and nulls every operand.
func (m *Model[T]) Clear() error {
	if err := m.checkLock("clear"); err != nil {
		return err
	}
	if m.operator != m.defaultOperator {
		m.operator = m.defaultOperator
		m.operatorChanged.Fire(m.operator)
	}
	m.operands.clear()
	m.updateEnabled()
	m.logger.Debug("Condition cleared")
	m.cleared.Fire(struct{}{})
	m.changed.Fire(struct{}{})
	return nil
}

// OnOperatorChanged subscribes to operator changes. The returned function
// unsubscribes.
func (m *Model[T]) OnOperatorChanged(fn func(Operator)) func() {
	return m.operatorChanged.Subscribe(fn)
}

func (m *Model[T]) OnEnabledChanged(fn func(bool)) func() {
	return m.enabledChanged.Subscribe(fn)
}

func (m *Model[T]) OnCaseSensitiveChanged(fn func(bool)) func() {
	return m.caseSensitiveChanged.Subscribe(fn)
}

func (m *Model[T]) OnAutomaticWildcardChanged(fn func(AutomaticWildcard)) func() {
	return m.automaticWildcardChanged.Subscribe(fn)
}

func (m *Model[T]) OnAutoEnableChanged(fn func(bool)) func() {
	return m.autoEnableChanged.Subscribe(fn)
}

func (m *Model[T]) OnLockedChanged(fn func(bool)) func() {
	return m.lockedChanged.Subscribe(fn)
}

// OnCleared subscribes to Clear calls.
func (m *Model[T]) OnCleared(fn func()) func() {
	return m.cleared.Subscribe(func(struct{}) { fn() })
}

// OnChanged subscribes to any change that may alter what the condition
// accepts. It fires once per change, after the more specific notifications.
func (m *Model[T]) OnChanged(fn func()) func() {
	return m.changed.Subscribe(func(struct{}) { fn() })
}

func (m *Model[T]) checkLock(action string) error {
	if m.locked {
		m.logger.Warn("Condition model is locked", "action", action)
		return fmt.Errorf("%w: cannot %s %q", ErrLocked, action, m.identifier)
	}
	return nil
}

func (m *Model[T]) setEnabled(enabled bool) bool {
	if enabled == m.enabled {
		return false
	}
	m.enabled = enabled
	m.logger.Debug("Enabled changed", "enabled", enabled)
	m.enabledChanged.Fire(enabled)
	return true
}

// updateEnabled recomputes enabled when auto-enable is on and reports
// whether it changed.
func (m *Model[T]) updateEnabled() bool {
	if !m.autoEnable || m.locked {
		return false
	}
	return m.setEnabled(m.operandsPresent())
}

// operandsPresent reports whether the operands the current operator reads
// are set.
func (m *Model[T]) operandsPresent() bool {
	ops := m.operands
	switch m.operator {
	case Equal, NotEqual:
		return !ops.equal.IsNull()
	case In, NotIn:
		return !ops.in.IsEmpty()
	case LessThan, LessThanOrEqual:
		return !ops.upperBound.IsNull()
	case GreaterThan, GreaterThanOrEqual:
		return !ops.lowerBound.IsNull()
	case Between, BetweenExclusive, NotBetween, NotBetweenExclusive:
		return !ops.lowerBound.IsNull() && !ops.upperBound.IsNull()
	}
	return false
}

// operandChanged runs after an operand was set.
func (m *Model[T]) operandChanged() {
	m.updateEnabled()
	m.changed.Fire(struct{}{})
}
