package todo_case

import (
	"context"
	"testing"

	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTodo_Success(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	scope, _ := access_rules.NewBuilder().TodoRead(admin)
	todo := &entity.TodoWithNames{TodoEntity: *assignedTodo(), EmployeeName: "Emma"}
	d.repo.On("FindScopedTodo", ctx, "todo-1", scope).Return(todo, (*app_errors.AppError)(nil))

	resp, err := service.GetTodo(ctx, admin, "todo-1")

	require.Nil(t, err)
	assert.Equal(t, "todo-1", resp.ID)
	assert.Equal(t, 2, resp.DaysRemaining)
	assert.Equal(t, []string{}, resp.Tags)
	d.repo.AssertExpectations(t)
}

// Test a todo outside the scope reads as not found
func TestGetTodo_OutsideScope(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	scope, _ := access_rules.NewBuilder().TodoRead(otherAdmin)
	d.repo.On("FindScopedTodo", ctx, "todo-1", scope).Return((*entity.TodoWithNames)(nil), app_errors.NewNotFoundError("todo.not_found"))

	resp, err := service.GetTodo(ctx, otherAdmin, "todo-1")

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)
	assert.Equal(t, "todo.not_found", err.MessageKey)
}
