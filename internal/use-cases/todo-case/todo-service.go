package todo_case

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	"github.com/Xenn-00/personal-meister/internal/dtos"
	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/queue"
	project_repo "github.com/Xenn-00/personal-meister/internal/repo/project-repo"
	todo_repo "github.com/Xenn-00/personal-meister/internal/repo/todo-repo"
	user_repo "github.com/Xenn-00/personal-meister/internal/repo/user-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	todo_lifecycle "github.com/Xenn-00/personal-meister/internal/rules/todo-lifecycle"
	worker_task "github.com/Xenn-00/personal-meister/internal/worker/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type TodoService struct {
	repo        todo_repo.TodoRepoContract
	userRepo    user_repo.UserRepoContract
	projectRepo project_repo.ProjectRepoContract
	txManager   tx.TxManager
	taskQueue   queue.TaskQueueClient
	access      *access_rules.Builder
	lifecycle   *todo_lifecycle.Engine
}

func NewTodoService(db *pgxpool.Pool, redis *redis.Client) TodoServiceContract {
	return &TodoService{
		repo:        todo_repo.NewTodoRepo(db),
		userRepo:    user_repo.NewUserRepo(db),
		projectRepo: project_repo.NewProjectRepo(db),
		txManager:   tx.NewPgxTxManager(db),
		taskQueue:   queue.NewTaskQueue(redis),
		access:      access_rules.NewBuilder(),
		lifecycle:   todo_lifecycle.New(nil),
	}
}

func (s *TodoService) CreateTodo(ctx context.Context, actor access_rules.Actor, req *todo_dto.CreateTodoRequest) (*todo_dto.TodoResponse, *app_errors.AppError) {
	// Employees may only create todos for themselves
	if err := s.access.TodoCreate(actor, access_rules.Record{EmployeeID: req.EmployeeID, AssignedBy: actor.ID}); err != nil {
		return nil, app_errors.FromRuleError(err)
	}

	state, ruleErr := s.lifecycle.Create(req.DueDate)
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	// Assignee must exist
	found, err := s.userRepo.ExistingIDs(ctx, []string{req.EmployeeID})
	if err != nil {
		return nil, err
	}
	if !found[req.EmployeeID] {
		return nil, app_errors.NewNotFoundError("user.not_found")
	}

	if req.ProjectID != nil {
		if err := s.ensureProject(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	priority := entity.PriorityMedium
	if req.Priority != nil {
		priority = entity.TodoPriority(*req.Priority)
	}

	todoID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	now := s.lifecycle.Now()
	todo := &entity.TodoEntity{
		ID:          todoID.String(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		EmployeeID:  req.EmployeeID,
		AssignedBy:  actor.ID,
		ProjectID:   req.ProjectID,
		Tags:        req.Tags,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyState(todo, state)

	if err := s.repo.InsertTodo(ctx, todo); err != nil {
		return nil, err
	}

	// Notify the assignee, self-created todos need no mail
	if todo.EmployeeID != actor.ID {
		payload := &worker_task.TodoAssignedPayload{
			TodoID:     todo.ID,
			Title:      todo.Title,
			Priority:   string(todo.Priority),
			DueDate:    todo.DueDate,
			EmployeeID: todo.EmployeeID,
			AssignedBy: todo.AssignedBy,
		}
		if err := s.taskQueue.EnqueueTodoAssigned(payload); err != nil {
			log.Warn().Err(err).Str("todo_id", todo.ID).Msg("failed to enqueue todo assigned mail")
		}
	}

	return toTodoResponse(s.lifecycle, &entity.TodoWithNames{TodoEntity: *todo}), nil
}

func (s *TodoService) ListTodos(ctx context.Context, actor access_rules.Actor, filter todo_dto.TodoListFilter) ([]*todo_dto.TodoResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	filter.Normalize()

	q := access_rules.Query{}
	if filter.EmployeeID != nil {
		q.EmployeeID = *filter.EmployeeID
	}
	scope, ruleErr := s.access.TodoList(actor, q)
	if ruleErr != nil {
		return nil, nil, app_errors.FromRuleError(ruleErr)
	}

	now := s.lifecycle.Now()
	todos, err := s.repo.ListTodos(ctx, scope, &filter, now)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.CountTodos(ctx, scope, &filter, now)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*todo_dto.TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, toTodoResponse(s.lifecycle, &todos[i]))
	}

	return responses, dtos.NewPaginationMeta(filter.Page, filter.Limit, total), nil
}

func (s *TodoService) GetTodo(ctx context.Context, actor access_rules.Actor, todoID string) (*todo_dto.TodoResponse, *app_errors.AppError) {
	scope, ruleErr := s.access.TodoRead(actor)
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	todo, err := s.repo.FindScopedTodo(ctx, todoID, scope)
	if err != nil {
		return nil, err
	}

	return toTodoResponse(s.lifecycle, todo), nil
}

func (s *TodoService) TodoStats(ctx context.Context, actor access_rules.Actor) (*entity.TodoStats, *app_errors.AppError) {
	scope, ruleErr := s.access.TodoList(actor, access_rules.Query{})
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	return s.repo.TodoStats(ctx, scope, s.lifecycle.Now())
}

func (s *TodoService) UpdateTodo(ctx context.Context, actor access_rules.Actor, todoID string, req *todo_dto.UpdateTodoRequest) (*todo_dto.TodoResponse, *app_errors.AppError) {
	todo, err := s.repo.GetTodoByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if ruleErr := s.access.TodoUpdate(actor, recordOf(todo)); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	if req.IsHiddenForEmployee != nil && actor.Role == access_rules.Employee {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "todo.hidden_admin_only", nil)
	}

	if req.ProjectID != nil {
		if err := s.ensureProject(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
		todo.ProjectID = req.ProjectID
	}
	if req.ClearProject {
		todo.ProjectID = nil
	}
	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = req.Description
	}
	if req.Priority != nil {
		todo.Priority = entity.TodoPriority(*req.Priority)
	}
	if req.Tags != nil {
		todo.Tags = req.Tags
	}
	if req.Notes != nil {
		todo.Notes = req.Notes
	}
	if req.IsHiddenForEmployee != nil {
		todo.IsHiddenForEmployee = *req.IsHiddenForEmployee
	}

	state := s.lifecycle.Recompute(stateOf(todo))
	if req.DueDate != nil {
		next, ruleErr := s.lifecycle.ApplyDueDate(state, *req.DueDate)
		if ruleErr != nil {
			return nil, app_errors.FromRuleError(ruleErr)
		}
		state = next
	}
	applyState(todo, state)

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	if err := s.repo.UpdateTodo(ctx, t, todo); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	return toTodoResponse(s.lifecycle, &entity.TodoWithNames{TodoEntity: *todo}), nil
}

func (s *TodoService) UpdateTodoStatus(ctx context.Context, actor access_rules.Actor, todoID string, req *todo_dto.UpdateTodoStatusRequest) (*todo_dto.TodoResponse, *app_errors.AppError) {
	todo, err := s.repo.GetTodoByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if ruleErr := s.access.TodoUpdateStatus(actor, recordOf(todo)); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	next, ruleErr := s.lifecycle.ApplyStatus(stateOf(todo), req.Status)
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}
	applyState(todo, next)

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	change := entity.TodoStatusChange{ID: todo.ID, Status: todo.Status, CompletedAt: todo.CompletedAt}
	if _, err := s.repo.UpdateStatuses(ctx, t, []entity.TodoStatusChange{change}); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	return toTodoResponse(s.lifecycle, &entity.TodoWithNames{TodoEntity: *todo}), nil
}

// BulkUpdateStatus prüft zuerst alle Todos und schreibt dann alles in einer Transaktion.
func (s *TodoService) BulkUpdateStatus(ctx context.Context, actor access_rules.Actor, req *todo_dto.BulkTodoStatusRequest) (*todo_dto.BulkTodoStatusResponse, *app_errors.AppError) {
	ids := uniqueIDs(req.TodoIDs)

	todos, err := s.repo.GetTodosByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(todos) != len(ids) {
		return nil, app_errors.NewNotFoundError("todo.not_found")
	}

	records := make([]access_rules.Record, len(todos))
	for i := range todos {
		records[i] = recordOf(&todos[i])
	}
	if ruleErr := s.access.TodoBulkStatus(actor, records); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	changes := make([]entity.TodoStatusChange, 0, len(todos))
	for i := range todos {
		next, ruleErr := s.lifecycle.ApplyStatus(stateOf(&todos[i]), req.Status)
		if ruleErr != nil {
			return nil, app_errors.FromRuleError(ruleErr)
		}
		changes = append(changes, entity.TodoStatusChange{ID: todos[i].ID, Status: next.Status, CompletedAt: next.CompletedAt})
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	updated, err := s.repo.UpdateStatuses(ctx, t, changes)
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	return &todo_dto.BulkTodoStatusResponse{Updated: updated, Status: req.Status}, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, actor access_rules.Actor, todoID string) *app_errors.AppError {
	todo, err := s.repo.GetTodoByID(ctx, todoID)
	if err != nil {
		return err
	}

	if ruleErr := s.access.TodoDelete(actor, recordOf(todo)); ruleErr != nil {
		return app_errors.FromRuleError(ruleErr)
	}

	return s.repo.DeleteTodo(ctx, todo.ID)
}

func (s *TodoService) ensureProject(ctx context.Context, projectID string) *app_errors.AppError {
	exists, err := s.projectRepo.IsProjectExist(ctx, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return app_errors.NewNotFoundError("project.not_found")
	}
	return nil
}
