package dashboard_case

import (
	"context"
	"testing"
	"time"

	dashboard_dto "github.com/Xenn-00/personal-meister/internal/dtos/dashboard-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	use_cases "github.com/Xenn-00/personal-meister/internal/use-cases"
	leave_case "github.com/Xenn-00/personal-meister/internal/use-cases/leave-case"
	project_case "github.com/Xenn-00/personal-meister/internal/use-cases/project-case"
	todo_case "github.com/Xenn-00/personal-meister/internal/use-cases/todo-case"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Stubs überschreiben nur die Stats-Methoden der Services.

type stubTodos struct {
	todo_case.TodoServiceContract
	mock.Mock
}

func (s *stubTodos) TodoStats(ctx context.Context, actor access_rules.Actor) (*entity.TodoStats, *app_errors.AppError) {
	args := s.Called(ctx, actor)
	return args.Get(0).(*entity.TodoStats), args.Get(1).(*app_errors.AppError)
}

type stubLeaves struct {
	leave_case.LeaveServiceContract
	mock.Mock
}

func (s *stubLeaves) LeaveStats(ctx context.Context, actor access_rules.Actor) (*entity.LeaveStats, *app_errors.AppError) {
	args := s.Called(ctx, actor)
	return args.Get(0).(*entity.LeaveStats), args.Get(1).(*app_errors.AppError)
}

type stubProjects struct {
	project_case.ProjectServiceContract
	mock.Mock
}

func (s *stubProjects) ProjectStats(ctx context.Context, actor access_rules.Actor) (*entity.ProjectStats, *app_errors.AppError) {
	args := s.Called(ctx, actor)
	return args.Get(0).(*entity.ProjectStats), args.Get(1).(*app_errors.AppError)
}

var employee = access_rules.Actor{ID: "emp-1", Role: access_rules.Employee}

func TestGetDashboard_CacheMissLoadsAndStores(t *testing.T) {
	ctx := context.Background()

	userRepo := new(use_cases.MockUserRepo)
	todos := new(stubTodos)
	leaves := new(stubLeaves)
	projects := new(stubProjects)

	var storedKey string
	var storedTTL time.Duration
	cache := &use_cases.MockCache{
		GetFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) { return false, nil },
		SetFn: func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
			storedKey, storedTTL = key, ttl
			return nil
		},
	}

	service := &DashboardService{userRepo: userRepo, todos: todos, leaves: leaves, projects: projects, cache: cache}

	userRepo.On("CountRoles", ctx).Return(&entity.RoleCounts{Admins: 2, Employees: 7}, (*app_errors.AppError)(nil))
	todos.On("TodoStats", ctx, employee).Return(&entity.TodoStats{Total: 4, Pending: 2, Completed: 1, Overdue: 1, OverdueCount: 1}, (*app_errors.AppError)(nil))
	leaves.On("LeaveStats", ctx, employee).Return(&entity.LeaveStats{Total: 1, Pending: 1}, (*app_errors.AppError)(nil))
	projects.On("ProjectStats", ctx, employee).Return(&entity.ProjectStats{Total: 1, Active: 1}, (*app_errors.AppError)(nil))

	resp, err := service.GetDashboard(ctx, employee)

	require.Nil(t, err)
	assert.Equal(t, 2, resp.Admins)
	assert.Equal(t, 7, resp.Employees)
	assert.Equal(t, 1, resp.Todos.OverdueCount)
	assert.Equal(t, 1, resp.Leaves.Pending)
	assert.Equal(t, "dashboard:employee:emp-1", storedKey)
	assert.Equal(t, 30*time.Second, storedTTL)

	todos.AssertExpectations(t)
	leaves.AssertExpectations(t)
	projects.AssertExpectations(t)
}

func TestGetDashboard_CacheHit(t *testing.T) {
	ctx := context.Background()

	userRepo := new(use_cases.MockUserRepo)
	cache := &use_cases.MockCache{
		GetFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
			*dest.(*dashboard_dto.DashboardResponse) = dashboard_dto.DashboardResponse{Admins: 1, Employees: 3}
			return true, nil
		},
	}

	service := &DashboardService{userRepo: userRepo, cache: cache}

	resp, err := service.GetDashboard(ctx, employee)

	require.Nil(t, err)
	assert.Equal(t, 3, resp.Employees)
	assert.Equal(t, 0, cache.SetCalled)
	userRepo.AssertNotCalled(t, "CountRoles", mock.Anything)
}

// Test a failing stats query is returned and nothing is cached
func TestGetDashboard_StatsError(t *testing.T) {
	ctx := context.Background()

	userRepo := new(use_cases.MockUserRepo)
	todos := new(stubTodos)
	cache := &use_cases.MockCache{
		GetFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) { return false, nil },
	}

	service := &DashboardService{userRepo: userRepo, todos: todos, cache: cache}

	userRepo.On("CountRoles", ctx).Return(&entity.RoleCounts{}, (*app_errors.AppError)(nil))
	todos.On("TodoStats", ctx, employee).Return((*entity.TodoStats)(nil),
		app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil))

	resp, err := service.GetDashboard(ctx, employee)

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, err.Code)
	assert.Equal(t, 0, cache.SetCalled)
}
