package leave_case

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	leave_dto "github.com/Xenn-00/personal-meister/internal/dtos/leave-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type LeaveServiceContract interface {
	CreateLeave(ctx context.Context, actor access_rules.Actor, req *leave_dto.CreateLeaveRequest) (*leave_dto.LeaveResponse, *app_errors.AppError)
	ListLeaves(ctx context.Context, actor access_rules.Actor, filter leave_dto.LeaveListFilter) ([]*leave_dto.LeaveResponse, *dtos.PaginationMeta, *app_errors.AppError)
	GetLeave(ctx context.Context, actor access_rules.Actor, leaveID string) (*leave_dto.LeaveResponse, *app_errors.AppError)
	LeaveStats(ctx context.Context, actor access_rules.Actor) (*entity.LeaveStats, *app_errors.AppError)
	UpdateLeave(ctx context.Context, actor access_rules.Actor, leaveID string, req *leave_dto.UpdateLeaveRequest) (*leave_dto.LeaveResponse, *app_errors.AppError)
	DeleteLeave(ctx context.Context, actor access_rules.Actor, leaveID string) *app_errors.AppError
}
