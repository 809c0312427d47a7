package middleware

import (
	"strings"

	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	auth_case "github.com/Xenn-00/personal-meister/internal/use-cases/auth-case"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware validiert das Authorization-Header ("Bearer <token>") und verifiziert das PASETO-Token.
// Verhalten:
//   - Fehlender Header, falsches Format oder ungültiges/abgelaufenes Token ergeben 401.
//   - Die Session muss in Redis existieren und zum Token passen, der Benutzer muss aktiv sein.
//   - Bei Erfolg werden die Context-Lokale "user_id", "role", "email", "jti" und "device_name" gesetzt.
func AuthMiddleware(pasetoMaker *utils.PasetoMaker, auth auth_case.AuthServiceContract) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized()
		}

		token := parts[1]

		// Verifizieren via PASETO
		payload, err := pasetoMaker.VerifyToken(token)
		if err != nil {
			log.Debug().Err(err).Msg("Token-Verifizierung fehlgeschlagen")
			return unauthorized()
		}

		// Überprüft, ob die Session noch in Redis liegt und der Benutzer aktiv ist.
		current, appErr := auth.ResolveSession(c.Context(), payload.JTI, token)
		if appErr != nil {
			return appErr
		}

		device := current.Device
		if device == "" {
			device = "Unknown Device"
		}

		// Speichern zu kontext, sodass Handler es nutzen kann
		c.Locals("user_id", current.UserID)
		c.Locals("role", current.Role)
		c.Locals("email", payload.Email)
		c.Locals("jti", current.JTI)
		c.Locals("device_name", device)

		return c.Next()
	}
}

func unauthorized() *app_errors.AppError {
	return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
}
