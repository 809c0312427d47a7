package user_handlers

import (
	user_dto "github.com/Xenn-00/personal-meister/internal/dtos/user-dto"
	"github.com/Xenn-00/personal-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	user_case "github.com/Xenn-00/personal-meister/internal/use-cases/user-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type UserHandler struct {
	validator *validator.Validate
	service   user_case.UserServiceContract
	i18n      internal_i18n.Service
}

// Geschützt mit AuthMiddleware
func NewUserHandler(db *pgxpool.Pool, redis *redis.Client, i18n internal_i18n.Service) *UserHandler {
	return &UserHandler{
		validator: handlers.NewValidator(),
		service:   user_case.NewUserService(db, redis),
		i18n:      i18n,
	}
}

func (h *UserHandler) CreateEmployee(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req user_dto.CreateEmployeeRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { req.Role = handlers.NormalizeEnum(req.Role) }); err != nil {
		return err
	}

	resp, err := h.service.CreateEmployee(c.Context(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusCreated, h.i18n.T(handlers.GetLang(c), "response.success_create_employee", nil), resp)
}

func (h *UserHandler) ListEmployees(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ListEmployees(c.Context(), actor)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_list_employees", nil), resp)
}

// FetchUserSelfProfile braucht keine Anfrage, die ID kommt aus dem Token.
func (h *UserHandler) FetchUserSelfProfile(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetProfile(c.Context(), actor, actor.ID)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_get_profile", nil), resp)
}

func (h *UserHandler) FetchUserProfileByID(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	userID, err := handlers.GetParamUserID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetProfile(c.Context(), actor, userID)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_get_profile", nil), resp)
}

func (h *UserHandler) SetEmployeeActive(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	userID, err := handlers.GetParamUserID(c, h.validator)
	if err != nil {
		return err
	}

	var req user_dto.SetActiveRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	if err := h.service.SetEmployeeActive(c.Context(), actor, userID, *req.IsActive); err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_update_employee", nil), "OK")
}
