package todo_case

import (
	"context"
	"testing"

	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func twoTodos() []entity.TodoEntity {
	a := assignedTodo()
	b := assignedTodo()
	b.ID = "todo-2"
	return []entity.TodoEntity{*a, *b}
}

// Test admin completes every todo they assigned in one transaction
func TestBulkUpdateStatus_Success(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	req := &todo_dto.BulkTodoStatusRequest{TodoIDs: []string{"todo-1", "todo-2", "todo-1"}, Status: "completed"}

	d.repo.On("GetTodosByIDs", ctx, []string{"todo-1", "todo-2"}).Return(twoTodos(), (*app_errors.AppError)(nil))
	d.txManager.On("Begin", ctx).Return(d.tx, (*app_errors.AppError)(nil))
	d.repo.On("UpdateStatuses", ctx, d.tx, mock.MatchedBy(func(changes []entity.TodoStatusChange) bool {
		return len(changes) == 2 && changes[0].CompletedAt != nil && changes[1].CompletedAt != nil
	})).Return(2, (*app_errors.AppError)(nil))
	d.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	d.tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.BulkUpdateStatus(ctx, admin, req)

	require.Nil(t, err)
	assert.Equal(t, 2, resp.Updated)
	assert.Equal(t, "completed", resp.Status)

	d.repo.AssertExpectations(t)
	d.tx.AssertExpectations(t)
}

// Test a missing id fails the whole batch
func TestBulkUpdateStatus_MissingTodo(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	req := &todo_dto.BulkTodoStatusRequest{TodoIDs: []string{"todo-1", "todo-9"}, Status: "completed"}

	d.repo.On("GetTodosByIDs", ctx, req.TodoIDs).Return(twoTodos()[:1], (*app_errors.AppError)(nil))

	resp, err := service.BulkUpdateStatus(ctx, admin, req)

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)
	d.txManager.AssertNotCalled(t, "Begin", mock.Anything)
}

// Test one foreign todo rejects the batch before anything is written
func TestBulkUpdateStatus_OneForbidden(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	todos := twoTodos()
	todos[1].AssignedBy = otherAdmin.ID
	req := &todo_dto.BulkTodoStatusRequest{TodoIDs: []string{"todo-1", "todo-2"}, Status: "completed"}

	d.repo.On("GetTodosByIDs", ctx, req.TodoIDs).Return(todos, (*app_errors.AppError)(nil))

	resp, err := service.BulkUpdateStatus(ctx, admin, req)

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	d.txManager.AssertNotCalled(t, "Begin", mock.Anything)
	d.repo.AssertNotCalled(t, "UpdateStatuses", mock.Anything, mock.Anything, mock.Anything)
}

func TestBulkUpdateStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	req := &todo_dto.BulkTodoStatusRequest{TodoIDs: []string{"todo-1", "todo-2"}, Status: "done"}
	d.repo.On("GetTodosByIDs", ctx, req.TodoIDs).Return(twoTodos(), (*app_errors.AppError)(nil))

	resp, err := service.BulkUpdateStatus(ctx, superAdmin, req)

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)
	d.txManager.AssertNotCalled(t, "Begin", mock.Anything)
}
