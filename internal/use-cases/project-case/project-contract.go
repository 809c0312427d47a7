package project_case

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	project_dto "github.com/Xenn-00/personal-meister/internal/dtos/project-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type ProjectServiceContract interface {
	CreateProject(ctx context.Context, actor access_rules.Actor, req *project_dto.CreateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError)
	ListProjects(ctx context.Context, actor access_rules.Actor, filter project_dto.ProjectListFilter) ([]*project_dto.ProjectResponse, *dtos.PaginationMeta, *app_errors.AppError)
	GetProject(ctx context.Context, actor access_rules.Actor, projectID string) (*project_dto.ProjectResponse, *app_errors.AppError)
	ProjectStats(ctx context.Context, actor access_rules.Actor) (*entity.ProjectStats, *app_errors.AppError)
	UpdateProject(ctx context.Context, actor access_rules.Actor, projectID string, req *project_dto.UpdateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError)
	DeleteProject(ctx context.Context, actor access_rules.Actor, projectID string) *app_errors.AppError
}
