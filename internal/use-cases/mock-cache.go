package use_cases

import (
	"context"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/cache"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
)

var _ cache.Cache = (*MockCache)(nil)

type MockCache struct {
	GetFn func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	SetFn func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError
	DelFn func(ctx context.Context, keys ...string) error

	GetCalled int
	SetCalled int
	DelCalled int
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	m.GetCalled++
	return m.GetFn(ctx, key, dest)
}

func (m *MockCache) Set(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
	m.SetCalled++
	return m.SetFn(ctx, key, val, ttl)
}

func (m *MockCache) Del(ctx context.Context, keys ...string) error {
	m.DelCalled++
	return m.DelFn(ctx, keys...)
}
