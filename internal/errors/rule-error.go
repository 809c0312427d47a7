package app_errors

import (
	"errors"

	"github.com/Xenn-00/personal-meister/internal/rules"
	"github.com/gofiber/fiber/v2"
)

// FromRuleError übersetzt eine Regel-Entscheidung in einen AppError mit passendem HTTP-Status.
// Fehler, die keine Regel-Fehler sind, werden als interner Fehler gemeldet.
func FromRuleError(err error) *AppError {
	if err == nil {
		return nil
	}

	var re *rules.Error
	if !errors.As(err, &re) {
		return NewAppError(fiber.StatusInternalServerError, ErrInternal, "internal_error", err)
	}

	switch re.Kind {
	case rules.KindForbidden:
		return NewAppError(fiber.StatusForbidden, ErrForbidden, re.Key, err)
	case rules.KindValidation:
		return &AppError{
			Code:       fiber.StatusBadRequest,
			Type:       ErrValidation,
			MessageKey: re.Key,
			Err:        err,
		}
	case rules.KindNotFound:
		return NewAppError(fiber.StatusNotFound, ErrNotFound, re.Key, err)
	}

	return NewAppError(fiber.StatusInternalServerError, ErrInternal, "internal_error", err)
}
