package todo_case

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type TodoServiceContract interface {
	CreateTodo(ctx context.Context, actor access_rules.Actor, req *todo_dto.CreateTodoRequest) (*todo_dto.TodoResponse, *app_errors.AppError)
	ListTodos(ctx context.Context, actor access_rules.Actor, filter todo_dto.TodoListFilter) ([]*todo_dto.TodoResponse, *dtos.PaginationMeta, *app_errors.AppError)
	GetTodo(ctx context.Context, actor access_rules.Actor, todoID string) (*todo_dto.TodoResponse, *app_errors.AppError)
	TodoStats(ctx context.Context, actor access_rules.Actor) (*entity.TodoStats, *app_errors.AppError)
	UpdateTodo(ctx context.Context, actor access_rules.Actor, todoID string, req *todo_dto.UpdateTodoRequest) (*todo_dto.TodoResponse, *app_errors.AppError)
	UpdateTodoStatus(ctx context.Context, actor access_rules.Actor, todoID string, req *todo_dto.UpdateTodoStatusRequest) (*todo_dto.TodoResponse, *app_errors.AppError)
	BulkUpdateStatus(ctx context.Context, actor access_rules.Actor, req *todo_dto.BulkTodoStatusRequest) (*todo_dto.BulkTodoStatusResponse, *app_errors.AppError)
	DeleteTodo(ctx context.Context, actor access_rules.Actor, todoID string) *app_errors.AppError
}
