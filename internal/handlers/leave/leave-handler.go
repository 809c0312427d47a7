package leave_handlers

import (
	leave_dto "github.com/Xenn-00/personal-meister/internal/dtos/leave-dto"
	"github.com/Xenn-00/personal-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	leave_case "github.com/Xenn-00/personal-meister/internal/use-cases/leave-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type LeaveHandler struct {
	validator *validator.Validate
	service   leave_case.LeaveServiceContract
	i18n      internal_i18n.Service
}

func NewLeaveHandler(db *pgxpool.Pool, redis *redis.Client, i18n internal_i18n.Service) *LeaveHandler {
	return &LeaveHandler{
		validator: handlers.NewValidator(),
		service:   leave_case.NewLeaveService(db, redis),
		i18n:      i18n,
	}
}

func (h *LeaveHandler) CreateLeave(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req leave_dto.CreateLeaveRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.CreateLeave(c.Context(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusCreated, h.i18n.T(handlers.GetLang(c), "response.success_create_leave", nil), resp)
}

func (h *LeaveHandler) ListLeaves(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var filter leave_dto.LeaveListFilter
	if err := handlers.ParseQuery(c, h.validator, &filter, func() { handlers.NormalizeEnumPtr(filter.Status) }); err != nil {
		return err
	}

	resp, meta, err := h.service.ListLeaves(c.Context(), actor, filter)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_list_leaves", nil), resp, meta)
}

func (h *LeaveHandler) LeaveStats(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	stats, err := h.service.LeaveStats(c.Context(), actor)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_leave_stats", nil), stats)
}

func (h *LeaveHandler) GetLeave(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	leaveID, err := handlers.GetParamLeaveID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetLeave(c.Context(), actor, leaveID)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_get_leave", nil), resp)
}

func (h *LeaveHandler) UpdateLeave(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	leaveID, err := handlers.GetParamLeaveID(c, h.validator)
	if err != nil {
		return err
	}

	var req leave_dto.UpdateLeaveRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { handlers.NormalizeEnumPtr(req.Status) }); err != nil {
		return err
	}

	resp, err := h.service.UpdateLeave(c.Context(), actor, leaveID, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_update_leave", nil), resp)
}

func (h *LeaveHandler) DeleteLeave(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	leaveID, err := handlers.GetParamLeaveID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteLeave(c.Context(), actor, leaveID); err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_delete_leave", nil), "OK")
}
