package leave_case

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	leave_dto "github.com/Xenn-00/personal-meister/internal/dtos/leave-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	leave_repo "github.com/Xenn-00/personal-meister/internal/repo/leave-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/stretchr/testify/mock"
)

var _ leave_repo.LeaveRepoContract = (*MockLeaveRepo)(nil)

type MockLeaveRepo struct {
	mock.Mock
}

func (m *MockLeaveRepo) InsertLeave(ctx context.Context, leave *entity.LeaveEntity) *app_errors.AppError {
	args := m.Called(ctx, leave)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLeaveRepo) GetLeaveByID(ctx context.Context, leaveID string) (*entity.LeaveEntity, *app_errors.AppError) {
	args := m.Called(ctx, leaveID)
	return args.Get(0).(*entity.LeaveEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockLeaveRepo) FindScopedLeave(ctx context.Context, leaveID string, scope access_rules.Filter) (*entity.LeaveWithEmployee, *app_errors.AppError) {
	args := m.Called(ctx, leaveID, scope)
	return args.Get(0).(*entity.LeaveWithEmployee), args.Get(1).(*app_errors.AppError)
}

func (m *MockLeaveRepo) ListLeaves(ctx context.Context, scope access_rules.Filter, filter *leave_dto.LeaveListFilter) ([]entity.LeaveWithEmployee, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]entity.LeaveWithEmployee), args.Get(1).(*app_errors.AppError)
}

func (m *MockLeaveRepo) CountLeaves(ctx context.Context, scope access_rules.Filter, filter *leave_dto.LeaveListFilter) (int, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockLeaveRepo) UpdateLeave(ctx context.Context, t tx.Tx, leave *entity.LeaveEntity) *app_errors.AppError {
	args := m.Called(ctx, t, leave)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLeaveRepo) DeleteLeave(ctx context.Context, leaveID string) *app_errors.AppError {
	args := m.Called(ctx, leaveID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLeaveRepo) LeaveStats(ctx context.Context, scope access_rules.Filter) (*entity.LeaveStats, *app_errors.AppError) {
	args := m.Called(ctx, scope)
	return args.Get(0).(*entity.LeaveStats), args.Get(1).(*app_errors.AppError)
}
