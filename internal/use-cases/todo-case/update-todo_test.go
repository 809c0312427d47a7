package todo_case

import (
	"context"
	"testing"
	"time"

	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Test moving the due date of an overdue todo into the future makes it pending again
func TestUpdateTodo_RescheduleOverdue(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	todo := assignedTodo()
	todo.DueDate = fixedNow.Add(-time.Hour)
	todo.Status = entity.TodoOverdue
	newDue := fixedNow.Add(24 * time.Hour)
	title := "Prepare onboarding v2"

	d.repo.On("GetTodoByID", ctx, "todo-1").Return(todo, (*app_errors.AppError)(nil))
	d.txManager.On("Begin", ctx).Return(d.tx, (*app_errors.AppError)(nil))
	d.repo.On("UpdateTodo", ctx, d.tx, mock.MatchedBy(func(u *entity.TodoEntity) bool {
		return u.Status == entity.TodoPending && u.DueDate.Equal(newDue) && u.Title == title &&
			u.EmployeeID == employee.ID && u.AssignedBy == admin.ID
	})).Return((*app_errors.AppError)(nil))
	d.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	d.tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateTodo(ctx, admin, "todo-1", &todo_dto.UpdateTodoRequest{DueDate: &newDue, Title: &title})

	require.Nil(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 1, resp.DaysRemaining)
	d.repo.AssertExpectations(t)
}

// Test a todo can be detached from its project
func TestUpdateTodo_ClearProject(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	todo := assignedTodo()
	projectID := "project-1"
	todo.ProjectID = &projectID

	d.repo.On("GetTodoByID", ctx, "todo-1").Return(todo, (*app_errors.AppError)(nil))
	d.txManager.On("Begin", ctx).Return(d.tx, (*app_errors.AppError)(nil))
	d.repo.On("UpdateTodo", ctx, d.tx, mock.MatchedBy(func(u *entity.TodoEntity) bool {
		return u.ProjectID == nil
	})).Return((*app_errors.AppError)(nil))
	d.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	d.tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateTodo(ctx, admin, "todo-1", &todo_dto.UpdateTodoRequest{ClearProject: true})

	require.Nil(t, err)
	assert.Nil(t, resp.ProjectID)
	d.repo.AssertExpectations(t)
	d.projectRepo.AssertNotCalled(t, "IsProjectExist", mock.Anything, mock.Anything)
}

func TestUpdateTodo_DueDateInPast(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	past := fixedNow.Add(-time.Minute)
	d.repo.On("GetTodoByID", ctx, "todo-1").Return(assignedTodo(), (*app_errors.AppError)(nil))

	resp, err := service.UpdateTodo(ctx, admin, "todo-1", &todo_dto.UpdateTodoRequest{DueDate: &past})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)
	assert.Equal(t, "todo.due_date_in_past", err.MessageKey)
	d.txManager.AssertNotCalled(t, "Begin", mock.Anything)
}

// Test only admins can hide a todo from its employee
func TestUpdateTodo_EmployeeCannotHide(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	hidden := true
	d.repo.On("GetTodoByID", ctx, "todo-1").Return(assignedTodo(), (*app_errors.AppError)(nil))

	resp, err := service.UpdateTodo(ctx, employee, "todo-1", &todo_dto.UpdateTodoRequest{IsHiddenForEmployee: &hidden})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	assert.Equal(t, "todo.hidden_admin_only", err.MessageKey)
}

// Test an admin who did not assign the todo cannot edit it
func TestUpdateTodo_OtherAdminForbidden(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	title := "Hijack"
	d.repo.On("GetTodoByID", ctx, "todo-1").Return(assignedTodo(), (*app_errors.AppError)(nil))

	resp, err := service.UpdateTodo(ctx, otherAdmin, "todo-1", &todo_dto.UpdateTodoRequest{Title: &title})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, "todo.only_assigned_by_you", err.MessageKey)
}
