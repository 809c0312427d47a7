package leave_repo

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	leave_dto "github.com/Xenn-00/personal-meister/internal/dtos/leave-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type LeaveRepoContract interface {
	InsertLeave(ctx context.Context, leave *entity.LeaveEntity) *app_errors.AppError
	GetLeaveByID(ctx context.Context, leaveID string) (*entity.LeaveEntity, *app_errors.AppError)
	FindScopedLeave(ctx context.Context, leaveID string, scope access_rules.Filter) (*entity.LeaveWithEmployee, *app_errors.AppError)
	ListLeaves(ctx context.Context, scope access_rules.Filter, filter *leave_dto.LeaveListFilter) ([]entity.LeaveWithEmployee, *app_errors.AppError)
	CountLeaves(ctx context.Context, scope access_rules.Filter, filter *leave_dto.LeaveListFilter) (int, *app_errors.AppError)
	UpdateLeave(ctx context.Context, t tx.Tx, leave *entity.LeaveEntity) *app_errors.AppError
	DeleteLeave(ctx context.Context, leaveID string) *app_errors.AppError
	LeaveStats(ctx context.Context, scope access_rules.Filter) (*entity.LeaveStats, *app_errors.AppError)
}
