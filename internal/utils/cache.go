package utils

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// GetCacheData liest cacheKey aus Redis und unmarshalt den Wert nach dest.
// Bei Cache-Miss kommt (false, nil) zurück.
// Hinweis: nutzt goccy/go-json; erwartet JSON als gespeicherten Wert.
func GetCacheData(ctx context.Context, rdb *redis.Client, cacheKey string, dest any) (bool, *app_errors.AppError) {
	val, err := rdb.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return true, nil
}

// SetCacheData serialisiert data als JSON und speichert es mit Ablaufzeit in Redis.
func SetCacheData(ctx context.Context, rdb *redis.Client, cacheKey string, data any, expire time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(data)
	if err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if err := rdb.Set(ctx, cacheKey, bytes, expire).Err(); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

// DeleteCacheData löscht die angegebenen Keys. Fehlende Keys sind kein Fehler.
func DeleteCacheData(ctx context.Context, rdb *redis.Client, cacheKeys ...string) error {
	if len(cacheKeys) == 0 {
		return nil
	}
	return rdb.Del(ctx, cacheKeys...).Err()
}
