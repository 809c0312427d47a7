package middleware

import (
	"slices"

	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles prüft, ob die im Context unter "role" gespeicherte Rolle einer der erlaubten Rollen (allowedRoles) entspricht.
// Ohne Rolle gibt es 401, bei fehlender Berechtigung 403.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return unauthorized()
		}

		if slices.Contains(allowedRoles, role) {
			return c.Next()
		}
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}
}
