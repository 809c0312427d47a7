package use_cases

import (
	"context"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/session"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

var _ session.Store = (*MockSessionStore)(nil)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, s *session.Session, ttl time.Duration) *app_errors.AppError {
	args := m.Called(ctx, s, ttl)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockSessionStore) Get(ctx context.Context, jti string) (*session.Session, *app_errors.AppError) {
	args := m.Called(ctx, jti)
	return args.Get(0).(*session.Session), args.Get(1).(*app_errors.AppError)
}

func (m *MockSessionStore) Delete(ctx context.Context, userID, jti string) *app_errors.AppError {
	args := m.Called(ctx, userID, jti)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockSessionStore) ListByUser(ctx context.Context, userID string) ([]*session.Session, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*session.Session), args.Get(1).(*app_errors.AppError)
}

func (m *MockSessionStore) DeleteAllByUser(ctx context.Context, userID string) *app_errors.AppError {
	args := m.Called(ctx, userID)
	return args.Get(0).(*app_errors.AppError)
}
