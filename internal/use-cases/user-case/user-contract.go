package user_case

import (
	"context"

	user_dto "github.com/Xenn-00/personal-meister/internal/dtos/user-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type UserServiceContract interface {
	CreateEmployee(ctx context.Context, actor access_rules.Actor, req *user_dto.CreateEmployeeRequest) (*user_dto.UserProfileResponse, *app_errors.AppError)
	ListEmployees(ctx context.Context, actor access_rules.Actor) ([]entity.UserOption, *app_errors.AppError)
	GetProfile(ctx context.Context, actor access_rules.Actor, userID string) (*user_dto.UserProfileResponse, *app_errors.AppError)
	SetEmployeeActive(ctx context.Context, actor access_rules.Actor, userID string, active bool) *app_errors.AppError
}
