package session

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
)

// Session ist eine aktive Anmeldung, gespeichert unter "session:<jti>".
type Session struct {
	JTI       string    `json:"jti"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	Device    string    `json:"device"`
	UserAgent string    `json:"user_agent"`
	IP        string    `json:"ip"`
	LoginAt   time.Time `json:"login_at"`
}

// Store verwaltet Sessions und das Set "user_sessions:<userID>" pro Benutzer.
// Get liefert (nil, nil), wenn die Session abgelaufen oder unbekannt ist.
type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) *app_errors.AppError
	Get(ctx context.Context, jti string) (*Session, *app_errors.AppError)
	Delete(ctx context.Context, userID, jti string) *app_errors.AppError
	ListByUser(ctx context.Context, userID string) ([]*Session, *app_errors.AppError)
	DeleteAllByUser(ctx context.Context, userID string) *app_errors.AppError
}
