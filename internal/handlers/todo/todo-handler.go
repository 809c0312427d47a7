package todo_handlers

import (
	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	todo_case "github.com/Xenn-00/personal-meister/internal/use-cases/todo-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TodoHandler struct {
	validator *validator.Validate
	service   todo_case.TodoServiceContract
	i18n      internal_i18n.Service
}

func NewTodoHandler(db *pgxpool.Pool, redis *redis.Client, i18n internal_i18n.Service) *TodoHandler {
	return &TodoHandler{
		validator: handlers.NewValidator(),
		service:   todo_case.NewTodoService(db, redis),
		i18n:      i18n,
	}
}

func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req todo_dto.CreateTodoRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { handlers.NormalizeEnumPtr(req.Priority) }); err != nil {
		return err
	}

	resp, err := h.service.CreateTodo(c.Context(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusCreated, h.i18n.T(handlers.GetLang(c), "response.success_create_todo", nil), resp)
}

func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var filter todo_dto.TodoListFilter
	if err := handlers.ParseQuery(c, h.validator, &filter, func() {
		handlers.NormalizeEnumPtr(filter.Status)
		handlers.NormalizeEnumPtr(filter.Priority)
	}); err != nil {
		return err
	}

	resp, meta, err := h.service.ListTodos(c.Context(), actor, filter)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_list_todos", nil), resp, meta)
}

func (h *TodoHandler) TodoStats(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	stats, err := h.service.TodoStats(c.Context(), actor)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_todo_stats", nil), stats)
}

func (h *TodoHandler) GetTodo(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	todoID, err := handlers.GetParamTodoID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetTodo(c.Context(), actor, todoID)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_get_todo", nil), resp)
}

func (h *TodoHandler) UpdateTodo(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	todoID, err := handlers.GetParamTodoID(c, h.validator)
	if err != nil {
		return err
	}

	var req todo_dto.UpdateTodoRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { handlers.NormalizeEnumPtr(req.Priority) }); err != nil {
		return err
	}

	resp, err := h.service.UpdateTodo(c.Context(), actor, todoID, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_update_todo", nil), resp)
}

func (h *TodoHandler) UpdateTodoStatus(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	todoID, err := handlers.GetParamTodoID(c, h.validator)
	if err != nil {
		return err
	}

	var req todo_dto.UpdateTodoStatusRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { req.Status = handlers.NormalizeEnum(req.Status) }); err != nil {
		return err
	}

	resp, err := h.service.UpdateTodoStatus(c.Context(), actor, todoID, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_update_todo", nil), resp)
}

func (h *TodoHandler) BulkUpdateStatus(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req todo_dto.BulkTodoStatusRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { req.Status = handlers.NormalizeEnum(req.Status) }); err != nil {
		return err
	}

	resp, err := h.service.BulkUpdateStatus(c.Context(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_bulk_status", map[string]any{"Count": resp.Updated}), resp)
}

func (h *TodoHandler) DeleteTodo(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	todoID, err := handlers.GetParamTodoID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTodo(c.Context(), actor, todoID); err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_delete_todo", nil), "OK")
}
