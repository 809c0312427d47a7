package todo_case

import (
	"context"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	todo_repo "github.com/Xenn-00/personal-meister/internal/repo/todo-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/stretchr/testify/mock"
)

var _ todo_repo.TodoRepoContract = (*MockTodoRepo)(nil)

type MockTodoRepo struct {
	mock.Mock
}

func (m *MockTodoRepo) InsertTodo(ctx context.Context, todo *entity.TodoEntity) *app_errors.AppError {
	args := m.Called(ctx, todo)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTodoRepo) GetTodoByID(ctx context.Context, todoID string) (*entity.TodoEntity, *app_errors.AppError) {
	args := m.Called(ctx, todoID)
	return args.Get(0).(*entity.TodoEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTodoRepo) GetTodosByIDs(ctx context.Context, todoIDs []string) ([]entity.TodoEntity, *app_errors.AppError) {
	args := m.Called(ctx, todoIDs)
	return args.Get(0).([]entity.TodoEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTodoRepo) FindScopedTodo(ctx context.Context, todoID string, scope access_rules.Filter) (*entity.TodoWithNames, *app_errors.AppError) {
	args := m.Called(ctx, todoID, scope)
	return args.Get(0).(*entity.TodoWithNames), args.Get(1).(*app_errors.AppError)
}

func (m *MockTodoRepo) ListTodos(ctx context.Context, scope access_rules.Filter, filter *todo_dto.TodoListFilter, now time.Time) ([]entity.TodoWithNames, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter, now)
	return args.Get(0).([]entity.TodoWithNames), args.Get(1).(*app_errors.AppError)
}

func (m *MockTodoRepo) CountTodos(ctx context.Context, scope access_rules.Filter, filter *todo_dto.TodoListFilter, now time.Time) (int, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter, now)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockTodoRepo) UpdateTodo(ctx context.Context, t tx.Tx, todo *entity.TodoEntity) *app_errors.AppError {
	args := m.Called(ctx, t, todo)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTodoRepo) UpdateStatuses(ctx context.Context, t tx.Tx, changes []entity.TodoStatusChange) (int, *app_errors.AppError) {
	args := m.Called(ctx, t, changes)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockTodoRepo) DeleteTodo(ctx context.Context, todoID string) *app_errors.AppError {
	args := m.Called(ctx, todoID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTodoRepo) TodoStats(ctx context.Context, scope access_rules.Filter, now time.Time) (*entity.TodoStats, *app_errors.AppError) {
	args := m.Called(ctx, scope, now)
	return args.Get(0).(*entity.TodoStats), args.Get(1).(*app_errors.AppError)
}

func (m *MockTodoRepo) ListOverdueToRemind(ctx context.Context, now time.Time) ([]entity.TodoReminder, *app_errors.AppError) {
	args := m.Called(ctx, now)
	return args.Get(0).([]entity.TodoReminder), args.Get(1).(*app_errors.AppError)
}

func (m *MockTodoRepo) MarkReminded(ctx context.Context, t tx.Tx, todoIDs []string) *app_errors.AppError {
	args := m.Called(ctx, t, todoIDs)
	return args.Get(0).(*app_errors.AppError)
}
