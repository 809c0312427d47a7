package auth_handlers

import (
	auth_dto "github.com/Xenn-00/personal-meister/internal/dtos/auth-dto"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	auth_case "github.com/Xenn-00/personal-meister/internal/use-cases/auth-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	validator *validator.Validate
	service   auth_case.AuthServiceContract
	i18n      internal_i18n.Service
}

// NewAuthHandler teilt sich den AuthService mit der AuthMiddleware.
func NewAuthHandler(service auth_case.AuthServiceContract, i18n internal_i18n.Service) *AuthHandler {
	return &AuthHandler{
		validator: handlers.NewValidator(),
		i18n:      i18n,
		service:   service,
	}
}

// RegisterUser legt den ersten Super-Admin an.
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var req auth_dto.RegisterUserRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.RegisterUser(c.Context(), req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusCreated, h.i18n.T(handlers.GetLang(c), "response.success_register", nil), resp)
}

// LoginUser behandelt die Anmeldung eines Benutzers.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var req auth_dto.LoginUserRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	// Login metadata erstellen
	ua := c.Get("User-Agent")
	if ua == "" {
		ua = "Unknown-Test-Client"
	}

	device := c.Get("X-Device-Name")
	if device == "" {
		device = detectDeviceType(ua)
	}

	loginMetadata := auth_dto.LoginMetadata{
		UserAgent: ua,
		Device:    device,
		IP:        c.IP(),
	}

	resp, err := h.service.LoginUser(c.Context(), req, loginMetadata)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_login", nil), resp)
}

// LogoutUser beendet die aktuelle Sitzung. Die JTI kommt aus c.Locals.
func (h *AuthHandler) LogoutUser(c *fiber.Ctx) error {
	jti, ok := c.Locals("jti").(string)
	if !ok || jti == "" {
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if err := h.service.LogoutUser(c.Context(), jti); err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_logout", nil), "OK")
}

// ListAllUserDevices listet alle aktiven Sitzungen des Aufrufers auf.
func (h *AuthHandler) ListAllUserDevices(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	devices, err := h.service.ListAllUserDevices(c.Context(), userID)
	if err != nil {
		return err
	}

	resp := map[string]any{
		"devices": devices,
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_list_device", nil), resp, map[string]any{"count_devices": len(devices)})
}

func (h *AuthHandler) LogoutAllDevices(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.LogoutAllDevices(c.Context(), userID); err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_logout_all", nil), "OK")
}
