package use_cases

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	client_dto "github.com/Xenn-00/personal-meister/internal/dtos/client-dto"
	project_dto "github.com/Xenn-00/personal-meister/internal/dtos/project-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	auth_repo "github.com/Xenn-00/personal-meister/internal/repo/auth-repo"
	client_repo "github.com/Xenn-00/personal-meister/internal/repo/client-repo"
	project_repo "github.com/Xenn-00/personal-meister/internal/repo/project-repo"
	user_repo "github.com/Xenn-00/personal-meister/internal/repo/user-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/stretchr/testify/mock"
)

var (
	_ auth_repo.AuthRepoContract       = (*MockAuthRepo)(nil)
	_ user_repo.UserRepoContract       = (*MockUserRepo)(nil)
	_ project_repo.ProjectRepoContract = (*MockProjectRepo)(nil)
	_ client_repo.ClientRepoContract   = (*MockClientRepo)(nil)
)

// Mocks für Repos, die von mehreren Services genutzt werden.

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) ListEmployees(ctx context.Context) ([]entity.UserOption, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.UserOption), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) CountRoles(ctx context.Context) (*entity.RoleCounts, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(*entity.RoleCounts), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) ExistingIDs(ctx context.Context, userIDs []string) (map[string]bool, *app_errors.AppError) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(map[string]bool), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) SetUserActive(ctx context.Context, t tx.Tx, userID string, active bool) *app_errors.AppError {
	args := m.Called(ctx, t, userID, active)
	return args.Get(0).(*app_errors.AppError)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) InsertProject(ctx context.Context, project *entity.ProjectEntity) *app_errors.AppError {
	args := m.Called(ctx, project)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) FindScopedProject(ctx context.Context, projectID string, scope access_rules.Filter) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID, scope)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) IsProjectExist(ctx context.Context, projectID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListProjects(ctx context.Context, scope access_rules.Filter, filter *project_dto.ProjectListFilter) ([]entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) CountProjects(ctx context.Context, scope access_rules.Filter, filter *project_dto.ProjectListFilter) (int, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) UpdateProject(ctx context.Context, t tx.Tx, project *entity.ProjectEntity) *app_errors.AppError {
	args := m.Called(ctx, t, project)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) DeleteProject(ctx context.Context, projectID string) *app_errors.AppError {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) ProjectStats(ctx context.Context, scope access_rules.Filter) (*entity.ProjectStats, *app_errors.AppError) {
	args := m.Called(ctx, scope)
	return args.Get(0).(*entity.ProjectStats), args.Get(1).(*app_errors.AppError)
}

type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) InsertClient(ctx context.Context, client *entity.ClientEntity) *app_errors.AppError {
	args := m.Called(ctx, client)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockClientRepo) GetClientByID(ctx context.Context, clientID string) (*entity.ClientEntity, *app_errors.AppError) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(*entity.ClientEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockClientRepo) IsEmailTaken(ctx context.Context, email string, excludeID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockClientRepo) ListClients(ctx context.Context, filter *client_dto.ClientListFilter) ([]entity.ClientEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.ClientEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockClientRepo) CountClients(ctx context.Context, filter *client_dto.ClientListFilter) (int, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockClientRepo) UpdateClient(ctx context.Context, client *entity.ClientEntity) *app_errors.AppError {
	args := m.Called(ctx, client)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockClientRepo) HasProjects(ctx context.Context, clientID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockClientRepo) DeleteClient(ctx context.Context, clientID string) *app_errors.AppError {
	args := m.Called(ctx, clientID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockClientRepo) ClientStats(ctx context.Context) (*entity.ClientStats, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(*entity.ClientStats), args.Get(1).(*app_errors.AppError)
}

type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) CountUsers(ctx context.Context, filter entity.UserCountFilter) (int64, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) SaveUsers(ctx context.Context, model entity.UserEntity) (string, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.String(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) IsUserActive(ctx context.Context, userID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}
