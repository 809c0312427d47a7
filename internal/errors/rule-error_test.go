package app_errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Xenn-00/personal-meister/internal/rules"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestFromRuleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		errType string
		key     string
	}{
		{"forbidden", rules.Forbidden("todo.only_own", "x"), fiber.StatusForbidden, ErrForbidden, "todo.only_own"},
		{"validation", rules.Invalid("todo.due_date_in_past", "x"), fiber.StatusBadRequest, ErrValidation, "todo.due_date_in_past"},
		{"not found", rules.NotFound("todo.not_found", "x"), fiber.StatusNotFound, ErrNotFound, "todo.not_found"},
		{"wrapped", fmt.Errorf("bulk: %w", rules.Forbidden("forbidden", "x")), fiber.StatusForbidden, ErrForbidden, "forbidden"},
		{"plain", errors.New("boom"), fiber.StatusInternalServerError, ErrInternal, "internal_error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			appErr := FromRuleError(tc.err)
			assert.Equal(t, tc.code, appErr.Code)
			assert.Equal(t, tc.errType, appErr.Type)
			assert.Equal(t, tc.key, appErr.MessageKey)
			assert.ErrorIs(t, appErr.Err, tc.err)
		})
	}

	assert.Nil(t, FromRuleError(nil))
}
