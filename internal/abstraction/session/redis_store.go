package session

import (
	"context"
	"fmt"
	"time"

	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(jti string) string {
	return fmt.Sprintf("session:%s", jti)
}

func userSessionsKey(userID string) string {
	return fmt.Sprintf("user_sessions:%s", userID)
}

func internalError(err error) *app_errors.AppError {
	return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
}

func (r *RedisStore) Save(ctx context.Context, s *Session, ttl time.Duration) *app_errors.AppError {
	if err := utils.SetCacheData(ctx, r.client, sessionKey(s.JTI), s, ttl); err != nil {
		return err
	}

	// Das Set lebt so lange wie die jüngste Session
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, userSessionsKey(s.UserID), s.JTI)
	pipe.Expire(ctx, userSessionsKey(s.UserID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Msg("Fehler beim Speichern der Session-Liste")
		return internalError(err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, jti string) (*Session, *app_errors.AppError) {
	var s Session
	found, err := utils.GetCacheData(ctx, r.client, sessionKey(jti), &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, userID, jti string) *app_errors.AppError {
	if err := utils.DeleteCacheData(ctx, r.client, sessionKey(jti)); err != nil {
		log.Error().Err(err).Msg("Fehler beim Löschen der Session")
		return internalError(err)
	}
	if err := r.client.SRem(ctx, userSessionsKey(userID), jti).Err(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Löschen der JTI aus der Session-Liste")
		return internalError(err)
	}
	return nil
}

// ListByUser räumt dabei JTIs auf, deren Session bereits abgelaufen ist.
func (r *RedisStore) ListByUser(ctx context.Context, userID string) ([]*Session, *app_errors.AppError) {
	jtis, err := r.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Abrufen der Redis-SMembers")
		return nil, internalError(err)
	}

	sessions := make([]*Session, 0, len(jtis))
	var stale []any
	for _, jti := range jtis {
		s, appErr := r.Get(ctx, jti)
		if appErr != nil {
			return nil, appErr
		}
		if s == nil {
			stale = append(stale, jti)
			continue
		}
		sessions = append(sessions, s)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, userSessionsKey(userID), stale...).Err(); err != nil {
			log.Warn().Err(err).Msg("Abgelaufene Sessions konnten nicht entfernt werden")
		}
	}

	return sessions, nil
}

func (r *RedisStore) DeleteAllByUser(ctx context.Context, userID string) *app_errors.AppError {
	jtis, err := r.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Abrufen der Redis-SMembers")
		return internalError(err)
	}

	keys := make([]string, 0, len(jtis)+1)
	for _, jti := range jtis {
		keys = append(keys, sessionKey(jti))
	}
	keys = append(keys, userSessionsKey(userID))

	if err := utils.DeleteCacheData(ctx, r.client, keys...); err != nil {
		log.Error().Err(err).Msg("Fehler beim Löschen der Cache")
		return internalError(err)
	}
	return nil
}
