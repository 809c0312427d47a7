package user_case

import (
	"context"
	"testing"
	"time"

	user_dto "github.com/Xenn-00/personal-meister/internal/dtos/user-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	use_cases "github.com/Xenn-00/personal-meister/internal/use-cases"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	superAdmin = access_rules.Actor{ID: "super-1", Role: access_rules.SuperAdmin}
	admin      = access_rules.Actor{ID: "admin-1", Role: access_rules.Admin}
	employee   = access_rules.Actor{ID: "emp-1", Role: access_rules.Employee}
)

type testDeps struct {
	repo      *use_cases.MockUserRepo
	authRepo  *use_cases.MockAuthRepo
	txManager *use_cases.MockTxManager
	tx        *use_cases.MockTx
	cache     *use_cases.MockCache
	sessions  *use_cases.MockSessionStore
}

// newTestService startet mit einem leeren Cache, der jeden Set annimmt.
func newTestService() (*UserService, *testDeps) {
	d := &testDeps{
		repo:      new(use_cases.MockUserRepo),
		authRepo:  new(use_cases.MockAuthRepo),
		txManager: new(use_cases.MockTxManager),
		tx:        new(use_cases.MockTx),
		sessions:  new(use_cases.MockSessionStore),
		cache: &use_cases.MockCache{
			GetFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) { return false, nil },
			SetFn: func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError { return nil },
			DelFn: func(ctx context.Context, keys ...string) error { return nil },
		},
	}
	return &UserService{
		repo:      d.repo,
		authRepo:  d.authRepo,
		txManager: d.txManager,
		cache:     d.cache,
		sessions:  d.sessions,
	}, d
}

func employeeRequest(role string) *user_dto.CreateEmployeeRequest {
	return &user_dto.CreateEmployeeRequest{
		Email:    "emma@example.com",
		Name:     "Emma",
		Password: "welcome-123",
		Role:     role,
	}
}

func storedEmployee() *entity.UserEntity {
	position := "Developer"
	return &entity.UserEntity{
		ID:       "emp-2",
		Email:    "emma@example.com",
		Name:     "Emma",
		Role:     entity.RoleEmployee,
		Position: &position,
		IsActive: true,
	}
}

func TestCreateEmployee_AdminCreatesEmployee(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	req := employeeRequest("employee")
	d.authRepo.On("CountUsers", ctx, entity.UserCountFilter{Email: &req.Email}).Return(int64(0), (*app_errors.AppError)(nil))
	d.authRepo.On("SaveUsers", ctx, mock.MatchedBy(func(u entity.UserEntity) bool {
		return u.Role == entity.RoleEmployee && *u.CreatedBy == admin.ID && utils.VerifyHash(u.PasswordHash, "welcome-123")
	})).Return("emp-9", (*app_errors.AppError)(nil))

	resp, err := service.CreateEmployee(ctx, admin, req)

	require.Nil(t, err)
	assert.Equal(t, "emp-9", resp.ID)
	assert.Equal(t, "employee", resp.Role)
	d.authRepo.AssertExpectations(t)
}

// Test admins may not create other admins
func TestCreateEmployee_AdminCannotCreateAdmin(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	resp, err := service.CreateEmployee(ctx, admin, employeeRequest("admin"))

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	assert.Equal(t, "user.admin_only_employees", err.MessageKey)
	d.authRepo.AssertNotCalled(t, "SaveUsers", mock.Anything, mock.Anything)
}

func TestCreateEmployee_SuperAdminCreatesAdmin(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	req := employeeRequest("admin")
	d.authRepo.On("CountUsers", ctx, mock.Anything).Return(int64(0), (*app_errors.AppError)(nil))
	d.authRepo.On("SaveUsers", ctx, mock.Anything).Return("admin-9", (*app_errors.AppError)(nil))

	resp, err := service.CreateEmployee(ctx, superAdmin, req)

	require.Nil(t, err)
	assert.Equal(t, "admin", resp.Role)
}

func TestCreateEmployee_EmailTaken(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.authRepo.On("CountUsers", ctx, mock.Anything).Return(int64(1), (*app_errors.AppError)(nil))

	resp, err := service.CreateEmployee(ctx, admin, employeeRequest("employee"))

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
}

func TestCreateEmployee_EmployeeForbidden(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateEmployee(context.Background(), employee, employeeRequest("employee"))

	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
}

func TestListEmployees(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.repo.On("ListEmployees", ctx).Return([]entity.UserOption{{ID: "emp-1", Name: "Anna"}}, (*app_errors.AppError)(nil))

	options, err := service.ListEmployees(ctx, admin)
	require.Nil(t, err)
	assert.Len(t, options, 1)

	_, err = service.ListEmployees(ctx, employee)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
}

// Test employees see a reduced view of colleagues
func TestGetProfile_EmployeeSeesReducedColleague(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.repo.On("FindByUserID", ctx, "emp-2").Return(storedEmployee(), (*app_errors.AppError)(nil))

	resp, err := service.GetProfile(ctx, employee, "emp-2")

	require.Nil(t, err)
	assert.Equal(t, "Emma", resp.Name)
	assert.Empty(t, resp.Email)
	assert.Equal(t, 1, d.cache.SetCalled)
}

func TestGetProfile_CacheHit(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.cache.GetFn = func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
		assert.Equal(t, "user_profile:emp-1", key)
		*dest.(*user_dto.UserProfileResponse) = user_dto.UserProfileResponse{ID: "emp-1", Email: "anna@example.com", Name: "Anna"}
		return true, nil
	}

	resp, err := service.GetProfile(ctx, employee, "emp-1")

	require.Nil(t, err)
	assert.Equal(t, "anna@example.com", resp.Email)
	d.repo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
}

// Test deactivation revokes every session
func TestSetEmployeeActive_DeactivateRevokesSessions(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.repo.On("FindByUserID", ctx, "emp-2").Return(storedEmployee(), (*app_errors.AppError)(nil))
	d.txManager.On("Begin", ctx).Return(d.tx, (*app_errors.AppError)(nil))
	d.repo.On("SetUserActive", ctx, d.tx, "emp-2", false).Return((*app_errors.AppError)(nil))
	d.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	d.tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	d.sessions.On("DeleteAllByUser", ctx, "emp-2").Return((*app_errors.AppError)(nil))

	err := service.SetEmployeeActive(ctx, admin, "emp-2", false)

	require.Nil(t, err)
	assert.Equal(t, 1, d.cache.DelCalled)
	d.repo.AssertExpectations(t)
	d.sessions.AssertExpectations(t)
}

func TestSetEmployeeActive_AdminCannotTouchAdmins(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	other := storedEmployee()
	other.Role = entity.RoleAdmin
	d.repo.On("FindByUserID", ctx, "emp-2").Return(other, (*app_errors.AppError)(nil))

	err := service.SetEmployeeActive(ctx, admin, "emp-2", false)

	require.NotNil(t, err)
	assert.Equal(t, "user.admin_only_employees", err.MessageKey)
	d.txManager.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestSetEmployeeActive_NotSelf(t *testing.T) {
	service, _ := newTestService()

	err := service.SetEmployeeActive(context.Background(), superAdmin, superAdmin.ID, false)

	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)
}
