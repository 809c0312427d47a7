package project_repo

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	project_dto "github.com/Xenn-00/personal-meister/internal/dtos/project-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type ProjectRepoContract interface {
	InsertProject(ctx context.Context, project *entity.ProjectEntity) *app_errors.AppError
	GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError)
	FindScopedProject(ctx context.Context, projectID string, scope access_rules.Filter) (*entity.ProjectEntity, *app_errors.AppError)
	IsProjectExist(ctx context.Context, projectID string) (bool, *app_errors.AppError)
	ListProjects(ctx context.Context, scope access_rules.Filter, filter *project_dto.ProjectListFilter) ([]entity.ProjectEntity, *app_errors.AppError)
	CountProjects(ctx context.Context, scope access_rules.Filter, filter *project_dto.ProjectListFilter) (int, *app_errors.AppError)
	UpdateProject(ctx context.Context, t tx.Tx, project *entity.ProjectEntity) *app_errors.AppError
	DeleteProject(ctx context.Context, projectID string) *app_errors.AppError
	ProjectStats(ctx context.Context, scope access_rules.Filter) (*entity.ProjectStats, *app_errors.AppError)
}
