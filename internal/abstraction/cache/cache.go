package cache

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
)

// Cache speichert JSON-Werte mit TTL. Get meldet mit false einen Cache-Miss.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, keys ...string) error
}
