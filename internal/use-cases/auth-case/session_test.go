package auth_case

import (
	"context"
	"testing"

	"github.com/Xenn-00/personal-meister/internal/abstraction/session"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedSession() *session.Session {
	return &session.Session{JTI: "jti-1", UserID: "user-1", Role: "employee", Token: "token-1", LoginAt: fixedNow}
}

func TestResolveSession_Active(t *testing.T) {
	ctx := context.Background()
	service, repo, sessions := newTestService(t)

	sessions.On("Get", ctx, "jti-1").Return(storedSession(), (*app_errors.AppError)(nil))
	repo.On("IsUserActive", ctx, "user-1").Return(true, (*app_errors.AppError)(nil))

	current, err := service.ResolveSession(ctx, "jti-1", "token-1")

	require.Nil(t, err)
	assert.Equal(t, "user-1", current.UserID)
}

// Test a token that no longer matches the stored session is rejected
func TestResolveSession_TokenMismatch(t *testing.T) {
	ctx := context.Background()
	service, repo, sessions := newTestService(t)

	sessions.On("Get", ctx, "jti-1").Return(storedSession(), (*app_errors.AppError)(nil))

	current, err := service.ResolveSession(ctx, "jti-1", "other-token")

	assert.Nil(t, current)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
	repo.AssertNotCalled(t, "IsUserActive", mock.Anything, mock.Anything)
}

// Test deactivated users lose every session
func TestResolveSession_DeactivatedUser(t *testing.T) {
	ctx := context.Background()
	service, repo, sessions := newTestService(t)

	sessions.On("Get", ctx, "jti-1").Return(storedSession(), (*app_errors.AppError)(nil))
	repo.On("IsUserActive", ctx, "user-1").Return(false, (*app_errors.AppError)(nil))
	sessions.On("DeleteAllByUser", ctx, "user-1").Return((*app_errors.AppError)(nil))

	current, err := service.ResolveSession(ctx, "jti-1", "token-1")

	assert.Nil(t, current)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
	sessions.AssertExpectations(t)
}

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()
	service, _, sessions := newTestService(t)

	sessions.On("Get", ctx, "jti-1").Return(storedSession(), (*app_errors.AppError)(nil))
	sessions.On("Delete", ctx, "user-1", "jti-1").Return((*app_errors.AppError)(nil))
	sessions.On("Get", ctx, "gone").Return((*session.Session)(nil), (*app_errors.AppError)(nil))

	assert.Nil(t, service.LogoutUser(ctx, "jti-1"))

	err := service.LogoutUser(ctx, "gone")
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
	sessions.AssertExpectations(t)
}

func TestListAllUserDevices(t *testing.T) {
	ctx := context.Background()
	service, _, sessions := newTestService(t)

	sessions.On("ListByUser", ctx, "user-1").Return([]*session.Session{storedSession()}, (*app_errors.AppError)(nil))

	devices, err := service.ListAllUserDevices(ctx, "user-1")

	require.Nil(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "jti-1", devices[0].Key)
	assert.Equal(t, fixedNow, devices[0].LoginAt)
}
