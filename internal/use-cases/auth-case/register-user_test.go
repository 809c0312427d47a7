package auth_case

import (
	"context"
	"testing"

	auth_dto "github.com/Xenn-00/personal-meister/internal/dtos/auth-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registerRequest() auth_dto.RegisterUserRequest {
	return auth_dto.RegisterUserRequest{
		Email:           "root@example.com",
		Name:            "Root",
		Password:        "super-secret",
		ConfirmPassword: "super-secret",
	}
}

// Test the first user becomes super admin with a hashed password
func TestRegisterUser_Bootstrap(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService(t)

	repo.On("CountUsers", ctx, entity.UserCountFilter{}).Return(int64(0), (*app_errors.AppError)(nil))
	repo.On("SaveUsers", ctx, mock.MatchedBy(func(u entity.UserEntity) bool {
		return u.Role == entity.RoleSuperAdmin && u.PasswordHash != "super-secret" && utils.VerifyHash(u.PasswordHash, "super-secret")
	})).Return("user-1", (*app_errors.AppError)(nil))

	resp, err := service.RegisterUser(ctx, registerRequest())

	require.Nil(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "super_admin", resp.Role)
	repo.AssertExpectations(t)
}

func TestRegisterUser_AlreadyBootstrapped(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService(t)

	repo.On("CountUsers", ctx, entity.UserCountFilter{}).Return(int64(1), (*app_errors.AppError)(nil))

	resp, err := service.RegisterUser(ctx, registerRequest())

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
	assert.Equal(t, "auth.already_bootstrapped", err.MessageKey)
	repo.AssertNotCalled(t, "SaveUsers", mock.Anything, mock.Anything)
}
