// Package todo_lifecycle decides status and completion timestamps for todos.
// Overdue is derived from the due date at evaluation time; nothing here runs in the background.
package todo_lifecycle

import (
	"fmt"
	"time"

	"github.com/Xenn-00/personal-meister/internal/entity"
	"github.com/Xenn-00/personal-meister/internal/rules"
)

// State is the lifecycle-relevant part of a todo.
type State struct {
	Status      entity.TodoStatus
	DueDate     time.Time
	CompletedAt *time.Time
}

type Clock func() time.Time

type Engine struct {
	now Clock
}

func New(now Clock) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Create starts a todo. A due date before now is rejected, equal is accepted.
func (e *Engine) Create(due time.Time) (State, error) {
	if err := e.CheckDueDate(due); err != nil {
		return State{}, err
	}
	return State{Status: entity.TodoPending, DueDate: due}, nil
}

// CheckDueDate rejects due dates that already passed.
func (e *Engine) CheckDueDate(due time.Time) error {
	if due.Before(e.now()) {
		return rules.Invalid("todo.due_date_in_past", "due date cannot be in the past")
	}
	return nil
}

// Recompute marks a non-completed todo overdue once due < now.
func (e *Engine) Recompute(s State) State {
	if s.Status == entity.TodoCompleted {
		return s
	}
	if s.DueDate.Before(e.now()) {
		s.Status = entity.TodoOverdue
	} else {
		s.Status = entity.TodoPending
	}
	return s
}

// Observe is the read-side recompute. It never changes completion.
func (e *Engine) Observe(s State) State {
	return e.Recompute(s)
}

// ApplyStatus handles an explicit status request.
// Completing an already completed todo keeps the original completed_at.
// Any other target clears completed_at and re-derives pending or overdue from the due date.
func (e *Engine) ApplyStatus(cur State, requested string) (State, error) {
	target := entity.TodoStatus(requested)
	if !target.Valid() {
		return State{}, rules.Invalid("validation.todo_status", fmt.Sprintf("invalid status %q", requested))
	}

	next := cur
	if target == entity.TodoCompleted {
		if cur.Status == entity.TodoCompleted && cur.CompletedAt != nil {
			return cur, nil
		}
		now := e.now()
		next.Status = entity.TodoCompleted
		next.CompletedAt = &now
		return next, nil
	}

	next.Status = target
	next.CompletedAt = nil
	return e.Recompute(next), nil
}

// ApplyDueDate moves the due date. The new date must not be in the past.
func (e *Engine) ApplyDueDate(cur State, due time.Time) (State, error) {
	if err := e.CheckDueDate(due); err != nil {
		return State{}, err
	}
	cur.DueDate = due
	return e.Recompute(cur), nil
}

// DaysRemaining rounds up to whole days and is 0 for completed todos.
func (e *Engine) DaysRemaining(s State) int {
	if s.Status == entity.TodoCompleted {
		return 0
	}
	diff := s.DueDate.Sub(e.now())
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

func (e *Engine) IsOverdue(s State) bool {
	return e.Observe(s).Status == entity.TodoOverdue
}

func (e *Engine) Now() time.Time {
	return e.now()
}
