package client_handlers

import (
	client_dto "github.com/Xenn-00/personal-meister/internal/dtos/client-dto"
	"github.com/Xenn-00/personal-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	client_case "github.com/Xenn-00/personal-meister/internal/use-cases/client-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientHandler struct {
	validator *validator.Validate
	service   client_case.ClientServiceContract
	i18n      internal_i18n.Service
}

func NewClientHandler(db *pgxpool.Pool, i18n internal_i18n.Service) *ClientHandler {
	return &ClientHandler{
		validator: handlers.NewValidator(),
		service:   client_case.NewClientService(db),
		i18n:      i18n,
	}
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req client_dto.CreateClientRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { handlers.NormalizeEnumPtr(req.Status) }); err != nil {
		return err
	}

	resp, err := h.service.CreateClient(c.Context(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusCreated, h.i18n.T(handlers.GetLang(c), "response.success_create_client", nil), resp)
}

func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var filter client_dto.ClientListFilter
	if err := handlers.ParseQuery(c, h.validator, &filter, func() { handlers.NormalizeEnumPtr(filter.Status) }); err != nil {
		return err
	}

	resp, meta, err := h.service.ListClients(c.Context(), actor, filter)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_list_clients", nil), resp, meta)
}

func (h *ClientHandler) ClientStats(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	stats, err := h.service.ClientStats(c.Context(), actor)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_client_stats", nil), stats)
}

func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	clientID, err := handlers.GetParamClientID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetClient(c.Context(), actor, clientID)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_get_client", nil), resp)
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	clientID, err := handlers.GetParamClientID(c, h.validator)
	if err != nil {
		return err
	}

	var req client_dto.UpdateClientRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { handlers.NormalizeEnumPtr(req.Status) }); err != nil {
		return err
	}

	resp, err := h.service.UpdateClient(c.Context(), actor, clientID, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_update_client", nil), resp)
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	clientID, err := handlers.GetParamClientID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteClient(c.Context(), actor, clientID); err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_delete_client", nil), "OK")
}
