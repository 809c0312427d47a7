package auth_case

import (
	"context"
	"testing"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/session"
	auth_dto "github.com/Xenn-00/personal-meister/internal/dtos/auth-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Test login issues a token carrying the role and stores the session
func TestLoginUser_Success(t *testing.T) {
	ctx := context.Background()
	service, repo, sessions := newTestService(t)

	user := activeUser(t, "correct-horse")
	repo.On("FindByEmail", ctx, user.Email).Return(user, (*app_errors.AppError)(nil))

	var saved *session.Session
	sessions.On("Save", ctx, mock.Anything, 15*time.Minute).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*session.Session) }).
		Return((*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{Email: user.Email, Password: "correct-horse"}, auth_dto.LoginMetadata{IP: "10.0.0.1"})

	require.Nil(t, err)
	assert.Equal(t, "admin", resp.Role)
	assert.NotEmpty(t, resp.Token)

	payload, verifyErr := service.paseto.VerifyToken(resp.Token)
	require.NoError(t, verifyErr)
	assert.Equal(t, user.ID, payload.UserID)
	assert.Equal(t, "admin", payload.Role)

	require.NotNil(t, saved)
	assert.Equal(t, payload.JTI, saved.JTI)
	assert.Equal(t, resp.Token, saved.Token)
	assert.Equal(t, "Unknown Device", saved.Device)
	assert.Equal(t, fixedNow, saved.LoginAt)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	ctx := context.Background()
	service, repo, sessions := newTestService(t)

	user := activeUser(t, "correct-horse")
	repo.On("FindByEmail", ctx, user.Email).Return(user, (*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{Email: user.Email, Password: "wrong"}, auth_dto.LoginMetadata{})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

// Test an unknown email looks like a wrong password
func TestLoginUser_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService(t)

	repo.On("FindByEmail", ctx, "ghost@example.com").
		Return((*entity.UserEntity)(nil), app_errors.NewNotFoundError("user.not_found"))

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{Email: "ghost@example.com", Password: "x"}, auth_dto.LoginMetadata{})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
	assert.Equal(t, "auth.unauthorized", err.MessageKey)
}

func TestLoginUser_Inactive(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService(t)

	user := activeUser(t, "correct-horse")
	user.IsActive = false
	repo.On("FindByEmail", ctx, user.Email).Return(user, (*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{Email: user.Email, Password: "correct-horse"}, auth_dto.LoginMetadata{})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	assert.Equal(t, "auth.user_inactive", err.MessageKey)
}
