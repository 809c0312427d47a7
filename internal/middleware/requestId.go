package middleware

import (
	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
)

const (
	requestIDPrefix = "PM-"
	maxRequestIDLen = 64
)

// RequestIDMiddleware übernimmt eine eingehende X-Request-ID oder erzeugt eine neue.
// Zu lange IDs von außen werden verworfen.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			id, err := gonanoid.New()
			if err != nil {
				log.Error().Err(err).Msg("Anforderungs-ID konnte nicht erzeugt werden")
				id = "unknown"
			}
			requestID = requestIDPrefix + id
		}

		c.Locals("request_id", requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		return c.Next()
	}
}
