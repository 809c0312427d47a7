package todo_case

import (
	"context"
	"testing"

	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteTodo_SuperAdmin(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.repo.On("GetTodoByID", ctx, "todo-1").Return(assignedTodo(), (*app_errors.AppError)(nil))
	d.repo.On("DeleteTodo", ctx, "todo-1").Return((*app_errors.AppError)(nil))

	err := service.DeleteTodo(ctx, superAdmin, "todo-1")

	assert.Nil(t, err)
	d.repo.AssertExpectations(t)
}

// Test employees may never delete, not even their own todo
func TestDeleteTodo_EmployeeForbidden(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.repo.On("GetTodoByID", ctx, "todo-1").Return(assignedTodo(), (*app_errors.AppError)(nil))

	err := service.DeleteTodo(ctx, employee, "todo-1")

	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	assert.Equal(t, "todo.employee_cannot_delete", err.MessageKey)
	d.repo.AssertNotCalled(t, "DeleteTodo", mock.Anything, mock.Anything)
}

func TestDeleteTodo_NotFound(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.repo.On("GetTodoByID", ctx, "todo-9").Return((*entity.TodoEntity)(nil), app_errors.NewNotFoundError("todo.not_found"))

	err := service.DeleteTodo(ctx, admin, "todo-9")

	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)
}
