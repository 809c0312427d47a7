package project_case

import (
	"context"
	"testing"

	project_dto "github.com/Xenn-00/personal-meister/internal/dtos/project-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createRequest() *project_dto.CreateProjectRequest {
	return &project_dto.CreateProjectRequest{
		Name:        "Payroll",
		Description: "Payroll migration",
		Technology:  "Go",
		ClientID:    "client-1",
		TeamMembers: []string{"emp-1", "emp-2", "emp-1"},
		StartDate:   fixedNow.AddDate(0, 0, -10),
	}
}

// Test happy path, duplicate members are collapsed
func TestCreateProject_Success(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.clientRepo.On("GetClientByID", ctx, "client-1").Return(sampleClient("client-1", "Acme GmbH"), (*app_errors.AppError)(nil))
	d.userRepo.On("ExistingIDs", ctx, []string{"emp-1", "emp-2"}).
		Return(map[string]bool{"emp-1": true, "emp-2": true}, (*app_errors.AppError)(nil))
	d.repo.On("InsertProject", ctx, mock.MatchedBy(func(p *entity.ProjectEntity) bool {
		return p.Status == entity.ProjectActive && p.CreatedBy == admin.ID && len(p.TeamMembers) == 2
	})).Return((*app_errors.AppError)(nil))

	resp, err := service.CreateProject(ctx, admin, createRequest())

	require.Nil(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, []string{"emp-1", "emp-2"}, resp.TeamMembers)
	assert.Equal(t, 10, resp.DurationDays)
	assert.Equal(t, "Acme GmbH", resp.ClientName)

	d.repo.AssertExpectations(t)
	d.userRepo.AssertExpectations(t)
}

func TestCreateProject_EmployeeForbidden(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	resp, err := service.CreateProject(ctx, employee, createRequest())

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	d.repo.AssertNotCalled(t, "InsertProject", mock.Anything, mock.Anything)
}

// Test unknown team member
func TestCreateProject_UnknownMember(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.clientRepo.On("GetClientByID", ctx, "client-1").Return(sampleClient("client-1", "Acme GmbH"), (*app_errors.AppError)(nil))
	d.userRepo.On("ExistingIDs", ctx, []string{"emp-1", "emp-2"}).
		Return(map[string]bool{"emp-1": true}, (*app_errors.AppError)(nil))

	resp, err := service.CreateProject(ctx, admin, createRequest())

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)
	assert.Equal(t, "user.not_found", err.MessageKey)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "emp-2", err.Details[0].Params["id"])
}

func TestCreateProject_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	req := createRequest()
	end := req.StartDate.AddDate(0, 0, -1)
	req.EndDate = &end

	d.clientRepo.On("GetClientByID", ctx, "client-1").Return(sampleClient("client-1", "Acme GmbH"), (*app_errors.AppError)(nil))
	d.userRepo.On("ExistingIDs", ctx, mock.Anything).
		Return(map[string]bool{"emp-1": true, "emp-2": true}, (*app_errors.AppError)(nil))

	resp, err := service.CreateProject(ctx, admin, req)

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, "project.invalid_date_range", err.MessageKey)
}

func TestCreateProject_UnknownClient(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	d.clientRepo.On("GetClientByID", ctx, "client-1").
		Return((*entity.ClientEntity)(nil), app_errors.NewNotFoundError("client.not_found"))

	resp, err := service.CreateProject(ctx, admin, createRequest())

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)
	assert.Equal(t, "client.not_found", err.MessageKey)
	d.repo.AssertNotCalled(t, "InsertProject", mock.Anything, mock.Anything)
	d.userRepo.AssertNotCalled(t, "ExistingIDs", mock.Anything, mock.Anything)
}
