package todo_lifecycle

import (
	"testing"
	"time"

	"github.com/Xenn-00/personal-meister/internal/entity"
	"github.com/Xenn-00/personal-meister/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// clock lets a test move time forward.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newEngine() (*Engine, *clock) {
	c := &clock{t: base}
	return New(c.now), c
}

func assertValidation(t *testing.T, err error) {
	t.Helper()
	kind, ok := rules.KindOf(err)
	require.True(t, ok, "expected rule error, got %v", err)
	assert.Equal(t, rules.KindValidation, kind)
}

func TestCreate_DueDateBoundary(t *testing.T) {
	e, _ := newEngine()

	_, err := e.Create(base.Add(-time.Nanosecond))
	assertValidation(t, err)

	s, err := e.Create(base)
	require.NoError(t, err)
	assert.Equal(t, entity.TodoPending, s.Status)
	assert.Nil(t, s.CompletedAt)

	s, err = e.Create(base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entity.TodoPending, s.Status)
}

func TestRecompute_PendingBecomesOverdueOnlyWhenEvaluated(t *testing.T) {
	e, c := newEngine()

	s, err := e.Create(base.Add(time.Second))
	require.NoError(t, err)

	c.t = base.Add(2 * time.Second)
	assert.Equal(t, entity.TodoPending, s.Status, "stored state is untouched until a write or read recomputes")
	assert.Equal(t, entity.TodoOverdue, e.Observe(s).Status)
	assert.True(t, e.IsOverdue(s))
}

func TestRecompute_EqualInstantIsNotOverdue(t *testing.T) {
	e, _ := newEngine()
	s := e.Recompute(State{Status: entity.TodoPending, DueDate: base})
	assert.Equal(t, entity.TodoPending, s.Status)
}

func TestRecompute_CompletedStaysCompleted(t *testing.T) {
	e, _ := newEngine()
	done := base.Add(-48 * time.Hour)
	s := e.Recompute(State{Status: entity.TodoCompleted, DueDate: base.Add(-24 * time.Hour), CompletedAt: &done})
	assert.Equal(t, entity.TodoCompleted, s.Status)
	assert.Equal(t, &done, s.CompletedAt)
}

func TestApplyStatus_CompleteSetsTimestamp(t *testing.T) {
	e, _ := newEngine()

	for _, from := range []entity.TodoStatus{entity.TodoPending, entity.TodoOverdue} {
		s, err := e.ApplyStatus(State{Status: from, DueDate: base.Add(-time.Hour)}, "completed")
		require.NoError(t, err)
		assert.Equal(t, entity.TodoCompleted, s.Status)
		require.NotNil(t, s.CompletedAt)
		assert.Equal(t, base, *s.CompletedAt)
	}
}

func TestApplyStatus_CompleteIsIdempotent(t *testing.T) {
	e, c := newEngine()

	s, err := e.ApplyStatus(State{Status: entity.TodoPending, DueDate: base.Add(time.Hour)}, "completed")
	require.NoError(t, err)

	c.t = base.Add(10 * time.Minute)
	again, err := e.ApplyStatus(s, "completed")
	require.NoError(t, err)
	assert.Equal(t, entity.TodoCompleted, again.Status)
	assert.Equal(t, base, *again.CompletedAt)
}

func TestApplyStatus_ReopenRederivesFromDueDate(t *testing.T) {
	e, _ := newEngine()
	done := base.Add(-time.Hour)

	past := State{Status: entity.TodoCompleted, DueDate: base.Add(-24 * time.Hour), CompletedAt: &done}
	s, err := e.ApplyStatus(past, "pending")
	require.NoError(t, err)
	assert.Equal(t, entity.TodoOverdue, s.Status)
	assert.Nil(t, s.CompletedAt)

	future := State{Status: entity.TodoCompleted, DueDate: base.Add(24 * time.Hour), CompletedAt: &done}
	s, err = e.ApplyStatus(future, "overdue")
	require.NoError(t, err)
	assert.Equal(t, entity.TodoPending, s.Status)
	assert.Nil(t, s.CompletedAt)
}

func TestApplyStatus_InvalidValue(t *testing.T) {
	e, _ := newEngine()
	_, err := e.ApplyStatus(State{Status: entity.TodoPending, DueDate: base}, "archived")
	assertValidation(t, err)
}

func TestApplyStatus_CompletedAtTracksStatus(t *testing.T) {
	e, _ := newEngine()
	start := State{Status: entity.TodoPending, DueDate: base.Add(time.Hour)}

	s := start
	for _, target := range []string{"completed", "pending", "completed", "completed", "overdue", "pending"} {
		var err error
		s, err = e.ApplyStatus(s, target)
		require.NoError(t, err)
		assert.Equal(t, s.Status == entity.TodoCompleted, s.CompletedAt != nil, "after %s", target)
	}
}

func TestApplyDueDate(t *testing.T) {
	e, c := newEngine()

	_, err := e.ApplyDueDate(State{Status: entity.TodoPending, DueDate: base.Add(time.Hour)}, base.Add(-time.Minute))
	assertValidation(t, err)

	overdue := State{Status: entity.TodoOverdue, DueDate: base.Add(-time.Hour)}
	s, err := e.ApplyDueDate(overdue, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entity.TodoPending, s.Status)

	c.t = base.Add(2 * time.Hour)
	assert.Equal(t, entity.TodoOverdue, e.Recompute(s).Status)
}

func TestDaysRemaining(t *testing.T) {
	e, _ := newEngine()

	assert.Equal(t, 2, e.DaysRemaining(State{Status: entity.TodoPending, DueDate: base.Add(25 * time.Hour)}))
	assert.Equal(t, 1, e.DaysRemaining(State{Status: entity.TodoPending, DueDate: base.Add(24 * time.Hour)}))
	assert.Equal(t, -1, e.DaysRemaining(State{Status: entity.TodoOverdue, DueDate: base.Add(-36 * time.Hour)}))
	assert.Equal(t, 0, e.DaysRemaining(State{Status: entity.TodoCompleted, DueDate: base.Add(72 * time.Hour)}))
}
