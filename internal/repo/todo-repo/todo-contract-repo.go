package todo_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type TodoRepoContract interface {
	InsertTodo(ctx context.Context, todo *entity.TodoEntity) *app_errors.AppError
	GetTodoByID(ctx context.Context, todoID string) (*entity.TodoEntity, *app_errors.AppError)
	GetTodosByIDs(ctx context.Context, todoIDs []string) ([]entity.TodoEntity, *app_errors.AppError)
	FindScopedTodo(ctx context.Context, todoID string, scope access_rules.Filter) (*entity.TodoWithNames, *app_errors.AppError)
	ListTodos(ctx context.Context, scope access_rules.Filter, filter *todo_dto.TodoListFilter, now time.Time) ([]entity.TodoWithNames, *app_errors.AppError)
	CountTodos(ctx context.Context, scope access_rules.Filter, filter *todo_dto.TodoListFilter, now time.Time) (int, *app_errors.AppError)
	UpdateTodo(ctx context.Context, t tx.Tx, todo *entity.TodoEntity) *app_errors.AppError
	UpdateStatuses(ctx context.Context, t tx.Tx, changes []entity.TodoStatusChange) (int, *app_errors.AppError)
	DeleteTodo(ctx context.Context, todoID string) *app_errors.AppError
	TodoStats(ctx context.Context, scope access_rules.Filter, now time.Time) (*entity.TodoStats, *app_errors.AppError)
	ListOverdueToRemind(ctx context.Context, now time.Time) ([]entity.TodoReminder, *app_errors.AppError)
	MarkReminded(ctx context.Context, t tx.Tx, todoIDs []string) *app_errors.AppError
}
