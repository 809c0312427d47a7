package app_errors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func MapPgxError(err error) *AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return NewAppError(409, ErrConflict, "conflict", err)
		case "23503": // foreign_key_violation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		case "23514", "22P02": // check_violation, invalid_text_representation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		}
	}

	return NewAppError(500, ErrInternal, "internal_error", err)
}

// MapPgxLookupError behandelt pgx.ErrNoRows als 404 mit dem gegebenen Schlüssel.
func MapPgxLookupError(err error, notFoundKey string) *AppError {
	if errors.Is(err, pgx.ErrNoRows) {
		return NewAppError(404, ErrNotFound, notFoundKey, nil)
	}
	return MapPgxError(err)
}
