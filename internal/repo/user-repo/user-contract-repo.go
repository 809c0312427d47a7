package user_repo

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
)

type UserRepoContract interface {
	FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
	ListEmployees(ctx context.Context) ([]entity.UserOption, *app_errors.AppError)
	CountRoles(ctx context.Context) (*entity.RoleCounts, *app_errors.AppError)
	ExistingIDs(ctx context.Context, userIDs []string) (map[string]bool, *app_errors.AppError)
	SetUserActive(ctx context.Context, t tx.Tx, userID string, active bool) *app_errors.AppError
}
