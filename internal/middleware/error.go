package middleware

import (
	"errors"

	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware behandelt Fehler, die während der Anfrageverarbeitung auftreten.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals("lang").(string)
		if lang == "" {
			lang = "en"
		}

		var appErr *app_errors.AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
		case errors.As(err, &fiberErr):
			// z. B. 404 für unbekannte Routen oder 405
			appErr = app_errors.NewAppError(fiberErr.Code, httpErrorType(fiberErr.Code), "invalid_request", nil)
			if fiberErr.Code == fiber.StatusNotFound {
				appErr.MessageKey = "not_found"
			}
		default:
			appErr = app_errors.NewAppError(
				fiber.StatusInternalServerError,
				app_errors.ErrInternal,
				"internal_error",
				err,
			)
		}

		message := i18nSvc.T(lang, appErr.MessageKey, nil)

		reqID, _ := c.Locals("request_id").(string)

		respErr := fiber.Map{
			"code":       appErr.Code,
			"type":       appErr.Type,
			"message":    message,
			"request_id": reqID,
		}

		if len(appErr.Details) > 0 {
			var details []fiber.Map

			for _, d := range appErr.Details {
				details = append(details, fiber.Map{
					"field":  d.Field,
					"reason": d.Reason,
					"message": i18nSvc.T(
						lang,
						d.MessageKey,
						d.Params,
					),
				})
			}

			respErr["details"] = details
		}

		if appErr.Code >= fiber.StatusInternalServerError {
			log.Error().Err(appErr.Err).Str("request_id", reqID).Str("path", c.Path()).Msg("application error")
		} else if appErr.Err != nil {
			log.Debug().Err(appErr.Err).Str("type", appErr.Type).Str("key", appErr.MessageKey).Msg("client error")
		}

		return c.Status(appErr.Code).JSON(fiber.Map{
			"status": "error",
			"error":  respErr,
		})
	}
}

func httpErrorType(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return app_errors.ErrNotFound
	case fiber.StatusUnauthorized:
		return app_errors.ErrUnauthorized
	case fiber.StatusForbidden:
		return app_errors.ErrForbidden
	case fiber.StatusConflict:
		return app_errors.ErrConflict
	}
	if code >= fiber.StatusInternalServerError {
		return app_errors.ErrInternal
	}
	return app_errors.ErrValidation
}
