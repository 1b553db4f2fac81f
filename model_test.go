package filtermodel

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New[string]("test")
	require.NoError(t, err)
	require.Equal(t, "test", m.Identifier())
	require.Equal(t, reflect.TypeOf(""), m.ColumnType())
	require.Equal(t, Operators(), m.Operators())
	require.Equal(t, Equal, m.Operator())
	require.Equal(t, Equal, m.DefaultOperator())
	require.Equal(t, '%', m.Wildcard())
	require.True(t, m.CaseSensitive())
	require.Equal(t, None, m.AutomaticWildcard())
	require.True(t, m.AutoEnable())
	require.False(t, m.Enabled())
	require.False(t, m.Locked())
}

func TestNewInvalid(t *testing.T) {
	t.Run("empty identifier", func(t *testing.T) {
		_, err := New[int]("")
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
	t.Run("nil compare", func(t *testing.T) {
		_, err := NewFunc[int]("test", nil)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
	t.Run("no operators", func(t *testing.T) {
		_, err := New[int]("test", WithOperators())
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
	t.Run("default operator outside the set", func(t *testing.T) {
		_, err := New[string]("test", WithOperators(Equal, NotBetween), WithDefaultOperator(In))
		require.ErrorIs(t, err, ErrInvalidConfiguration)
		_, err = New[string]("test", WithDefaultOperator(In), WithOperators(Equal, NotBetween))
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
	t.Run("unknown operator", func(t *testing.T) {
		_, err := New[int]("test", WithOperators(Equal, Operator(42)))
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
	t.Run("bool column without equal", func(t *testing.T) {
		_, err := NewFunc("test", CompareBool, WithDefaultOperator(NotEqual))
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func TestNewDefaultOperator(t *testing.T) {
	m, err := New[int]("test", WithOperators(LessThan, GreaterThan))
	require.NoError(t, err)
	require.Equal(t, LessThan, m.Operator())

	m, err = New[int]("test", WithOperators(LessThan, GreaterThan), WithDefaultOperator(GreaterThan))
	require.NoError(t, err)
	require.Equal(t, GreaterThan, m.Operator())
	require.Equal(t, []Operator{LessThan, GreaterThan}, m.Operators())
}

func TestSetOperator(t *testing.T) {
	m, err := New[string]("test", WithOperators(Equal, NotEqual, LessThanOrEqual, NotBetween))
	require.NoError(t, err)

	var ops []Operator
	unsubscribe := m.OnOperatorChanged(func(op Operator) { ops = append(ops, op) })

	require.NoError(t, m.SetOperator(LessThanOrEqual))
	require.Equal(t, LessThanOrEqual, m.Operator())
	require.NoError(t, m.SetOperator(LessThanOrEqual))
	require.NoError(t, m.Clear())
	require.Equal(t, Equal, m.Operator())
	require.NoError(t, m.SetOperator(NotBetween))
	require.Equal(t, []Operator{LessThanOrEqual, Equal, NotBetween}, ops)
	unsubscribe()

	err = m.SetOperator(Between)
	require.ErrorIs(t, err, ErrOperatorNotAllowed)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.Equal(t, NotBetween, m.Operator())
	require.Len(t, ops, 3)
}

func TestLocked(t *testing.T) {
	m, err := New[string]("test")
	require.NoError(t, err)
	ops := m.Operands()
	require.NoError(t, ops.Equal().Set("a"))
	require.NoError(t, ops.In().Set("b"))
	require.NoError(t, ops.LowerBound().Set("c"))
	require.NoError(t, ops.UpperBound().Set("d"))
	require.True(t, m.Enabled())

	var locks []bool
	m.OnLockedChanged(func(locked bool) { locks = append(locks, locked) })
	changed := 0
	m.OnChanged(func() { changed++ })

	m.SetLocked(true)
	require.True(t, m.Locked())

	mutations := map[string]func() error{
		"operator":    func() error { return m.SetOperator(NotEqual) },
		"enabled":     func() error { return m.SetEnabled(false) },
		"equal":       func() error { return ops.Equal().Set("x") },
		"clear equal": func() error { return ops.Equal().Clear() },
		"in":          func() error { return ops.In().Set("x") },
		"clear in":    func() error { return ops.In().Clear() },
		"lower bound": func() error { return ops.LowerBound().Set("x") },
		"upper bound": func() error { return ops.UpperBound().Set("x") },
		"clear":       func() error { return m.Clear() },
	}
	for name, mutate := range mutations {
		require.ErrorIs(t, mutate(), ErrLocked, name)
	}

	require.Equal(t, Equal, m.Operator())
	require.True(t, m.Enabled())
	v, _ := ops.Equal().Get()
	require.Equal(t, "a", v)
	require.Equal(t, []string{"b"}, ops.In().Values())
	v, _ = ops.LowerBound().Get()
	require.Equal(t, "c", v)
	v, _ = ops.UpperBound().Get()
	require.Equal(t, "d", v)
	require.Equal(t, 0, changed)

	// the remaining setters aren't gated
	m.SetCaseSensitive(false)
	m.SetAutomaticWildcard(Postfix)
	m.SetAutoEnable(false)
	require.False(t, m.CaseSensitive())
	require.Equal(t, Postfix, m.AutomaticWildcard())
	require.False(t, m.AutoEnable())

	m.SetLocked(false)
	require.NoError(t, m.SetOperator(NotEqual))
	require.Equal(t, []bool{true, false}, locks)
}

func TestLockedDefersAutoEnable(t *testing.T) {
	m, err := New[int]("test", WithAutoEnable(false))
	require.NoError(t, err)
	require.NoError(t, m.Operands().Equal().Set(1))
	require.False(t, m.Enabled())

	m.SetLocked(true)
	m.SetAutoEnable(true)
	require.False(t, m.Enabled())

	m.SetLocked(false)
	require.True(t, m.Enabled())
}

func TestAutoEnable(t *testing.T) {
	m, err := New[int]("test")
	require.NoError(t, err)
	ops := m.Operands()

	tests := []struct {
		operators []Operator
		required  []*Operand[int]
		unrelated []*Operand[int]
	}{
		{[]Operator{Equal, NotEqual}, []*Operand[int]{ops.Equal()}, []*Operand[int]{ops.LowerBound(), ops.UpperBound()}},
		{[]Operator{LessThan, LessThanOrEqual}, []*Operand[int]{ops.UpperBound()}, []*Operand[int]{ops.Equal(), ops.LowerBound()}},
		{[]Operator{GreaterThan, GreaterThanOrEqual}, []*Operand[int]{ops.LowerBound()}, []*Operand[int]{ops.Equal(), ops.UpperBound()}},
		{
			[]Operator{Between, BetweenExclusive, NotBetween, NotBetweenExclusive},
			[]*Operand[int]{ops.LowerBound(), ops.UpperBound()},
			[]*Operand[int]{ops.Equal()},
		},
	}
	for _, tt := range tests {
		for _, op := range tt.operators {
			t.Run(op.String(), func(t *testing.T) {
				require.NoError(t, m.SetOperator(op))
				require.False(t, m.Enabled())

				for _, o := range tt.unrelated {
					require.NoError(t, o.Set(1))
				}
				require.NoError(t, ops.In().Set(1))
				require.False(t, m.Enabled(), "unrelated operands must not enable %v", op)

				for i, o := range tt.required {
					require.NoError(t, o.Set(1))
					require.Equal(t, i == len(tt.required)-1, m.Enabled())
				}
				for _, o := range tt.unrelated {
					require.NoError(t, o.Clear())
				}
				require.NoError(t, ops.In().Clear())
				require.True(t, m.Enabled(), "unrelated operands must not disable %v", op)

				for _, o := range tt.required {
					require.NoError(t, o.Clear())
					require.False(t, m.Enabled())
					require.NoError(t, o.Set(1))
					require.True(t, m.Enabled())
				}
				for _, o := range tt.required {
					require.NoError(t, o.Clear())
				}
				require.False(t, m.Enabled())
			})
		}
	}

	for _, op := range []Operator{In, NotIn} {
		t.Run(op.String(), func(t *testing.T) {
			require.NoError(t, m.SetOperator(op))
			require.False(t, m.Enabled())
			require.NoError(t, ops.Equal().Set(1))
			require.NoError(t, ops.LowerBound().Set(1))
			require.False(t, m.Enabled())
			require.NoError(t, ops.In().Set(1, 2))
			require.True(t, m.Enabled())
			require.NoError(t, ops.In().Set())
			require.False(t, m.Enabled())
			require.NoError(t, ops.Equal().Clear())
			require.NoError(t, ops.LowerBound().Clear())
		})
	}
}

func TestAutoEnableOperatorSwitch(t *testing.T) {
	m, err := New[int]("test")
	require.NoError(t, err)
	require.NoError(t, m.Operands().UpperBound().Set(10))
	require.False(t, m.Enabled())

	require.NoError(t, m.SetOperator(LessThan))
	require.True(t, m.Enabled())
	require.NoError(t, m.SetOperator(Between))
	require.False(t, m.Enabled())
	require.NoError(t, m.Operands().LowerBound().Set(1))
	require.True(t, m.Enabled())
	require.NoError(t, m.SetOperator(GreaterThan))
	require.True(t, m.Enabled())

	upper, ok := m.Operands().UpperBound().Get()
	require.True(t, ok)
	require.Equal(t, 10, upper)
}

func TestSetEnabled(t *testing.T) {
	t.Run("manual", func(t *testing.T) {
		m, err := New[int]("test", WithAutoEnable(false))
		require.NoError(t, err)
		var states []bool
		m.OnEnabledChanged(func(enabled bool) { states = append(states, enabled) })

		require.NoError(t, m.SetEnabled(true))
		require.NoError(t, m.SetEnabled(true))
		require.NoError(t, m.Operands().Equal().Clear())
		require.True(t, m.Enabled())
		require.NoError(t, m.SetEnabled(false))
		require.Equal(t, []bool{true, false}, states)
	})

	t.Run("overridden by auto-enable", func(t *testing.T) {
		m, err := New[int]("test")
		require.NoError(t, err)
		require.NoError(t, m.Operands().Equal().Set(1))
		require.True(t, m.Enabled())

		require.NoError(t, m.SetEnabled(false))
		require.False(t, m.Enabled())
		require.NoError(t, m.Operands().Equal().Set(2))
		require.True(t, m.Enabled())
	})

	t.Run("auto-enable turned on recomputes", func(t *testing.T) {
		m, err := New[int]("test", WithAutoEnable(false))
		require.NoError(t, err)
		require.NoError(t, m.SetEnabled(true))
		changed := 0
		m.OnChanged(func() { changed++ })

		m.SetAutoEnable(true)
		require.False(t, m.Enabled())
		require.Equal(t, 1, changed)
	})
}

func TestClear(t *testing.T) {
	m, err := New[int]("test", WithOperators(Equal, Between, In))
	require.NoError(t, err)
	ops := m.Operands()
	require.NoError(t, m.SetOperator(Between))
	require.NoError(t, ops.Equal().Set(1))
	require.NoError(t, ops.In().Set(1, 2))
	require.NoError(t, ops.LowerBound().Set(1))
	require.NoError(t, ops.UpperBound().Set(2))
	require.True(t, m.Enabled())

	var events []string
	m.OnOperatorChanged(func(op Operator) { events = append(events, "operator:"+op.String()) })
	ops.Equal().OnChanged(func() { events = append(events, "equal") })
	ops.In().OnChanged(func() { events = append(events, "in") })
	ops.LowerBound().OnChanged(func() { events = append(events, "lower") })
	ops.UpperBound().OnChanged(func() { events = append(events, "upper") })
	m.OnEnabledChanged(func(enabled bool) { events = append(events, fmt.Sprint("enabled:", enabled)) })
	m.OnCleared(func() { events = append(events, "cleared") })
	m.OnChanged(func() { events = append(events, "changed") })

	require.NoError(t, m.Clear())
	require.Equal(t, Equal, m.Operator())
	require.True(t, ops.Equal().IsNull())
	require.True(t, ops.In().IsEmpty())
	require.True(t, ops.LowerBound().IsNull())
	require.True(t, ops.UpperBound().IsNull())
	require.False(t, m.Enabled())
	require.Equal(t, []string{
		"operator:EQUAL", "equal", "in", "lower", "upper", "enabled:false", "cleared", "changed",
	}, events)
}

func TestNotificationOrder(t *testing.T) {
	m, err := New[int]("test")
	require.NoError(t, err)

	var events []string
	m.OnOperatorChanged(func(op Operator) { events = append(events, "operator:"+op.String()) })
	m.Operands().Equal().OnChanged(func() { events = append(events, "equal") })
	m.OnEnabledChanged(func(enabled bool) {
		// listeners see the state they are notified about
		require.Equal(t, enabled, m.Enabled())
		events = append(events, fmt.Sprint("enabled:", enabled))
	})
	m.OnCaseSensitiveChanged(func(b bool) { events = append(events, fmt.Sprint("caseSensitive:", b)) })
	m.OnAutomaticWildcardChanged(func(w AutomaticWildcard) { events = append(events, "wildcard:"+w.String()) })
	m.OnAutoEnableChanged(func(b bool) { events = append(events, fmt.Sprint("autoEnable:", b)) })
	m.OnChanged(func() { events = append(events, "changed") })

	steps := []struct {
		name   string
		mutate func()
		events []string
	}{
		{"set equal", func() { require.NoError(t, m.Operands().Equal().Set(1)) }, []string{"equal", "enabled:true", "changed"}},
		{"set same equal", func() { require.NoError(t, m.Operands().Equal().Set(1)) }, []string{"equal", "changed"}},
		{"switch operator", func() { require.NoError(t, m.SetOperator(LessThan)) }, []string{"operator:LESS_THAN", "enabled:false", "changed"}},
		{"same operator", func() { require.NoError(t, m.SetOperator(LessThan)) }, nil},
		{"case sensitivity", func() { m.SetCaseSensitive(false) }, []string{"caseSensitive:false", "changed"}},
		{"same case sensitivity", func() { m.SetCaseSensitive(false) }, nil},
		{"automatic wildcard", func() { m.SetAutomaticWildcard(Prefix) }, []string{"wildcard:PREFIX", "changed"}},
		{"auto-enable off", func() { m.SetAutoEnable(false) }, []string{"autoEnable:false"}},
		{"enable", func() { require.NoError(t, m.SetEnabled(true)) }, []string{"enabled:true", "changed"}},
	}
	for _, step := range steps {
		events = nil
		step.mutate()
		require.Equal(t, step.events, events, step.name)
	}
}

func TestListenerUnsubscribesItself(t *testing.T) {
	m, err := New[int]("test")
	require.NoError(t, err)
	calls := 0
	var unsubscribe func()
	unsubscribe = m.OnChanged(func() {
		calls++
		unsubscribe()
	})
	other := 0
	m.OnChanged(func() { other++ })

	require.NoError(t, m.Operands().Equal().Set(1))
	require.NoError(t, m.Operands().Equal().Set(2))
	require.Equal(t, 1, calls)
	require.Equal(t, 2, other)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := New[int]("age", WithLogger(log), WithOperators(Equal, LessThan))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Condition model created")

	require.NoError(t, m.SetOperator(LessThan))
	require.Contains(t, buf.String(), "Operator changed")
	require.Contains(t, buf.String(), "operator=LESS_THAN")

	require.Error(t, m.SetOperator(In))
	require.Contains(t, buf.String(), "Operator not allowed")

	m.SetLocked(true)
	err = m.Operands().UpperBound().Set(1)
	require.True(t, errors.Is(err, ErrLocked))
	require.Contains(t, buf.String(), "Condition model is locked")
	require.Contains(t, buf.String(), "identifier=age")
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(logger)
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := New[int]("global")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "identifier=global")
}

func TestSetLoggerNil(t *testing.T) {
	defer SetLogger(logger)
	SetLogger(nil)
	require.NotNil(t, logger)

	m, err := New[int]("nil logger", WithLogger(nil))
	require.NoError(t, err)
	require.NoError(t, m.Operands().Equal().Set(1))
	m.SetLocked(true)
	require.ErrorIs(t, m.Clear(), ErrLocked)
}
