package project_case

import (
	"context"
	"slices"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	"github.com/Xenn-00/personal-meister/internal/dtos"
	project_dto "github.com/Xenn-00/personal-meister/internal/dtos/project-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	client_repo "github.com/Xenn-00/personal-meister/internal/repo/client-repo"
	project_repo "github.com/Xenn-00/personal-meister/internal/repo/project-repo"
	user_repo "github.com/Xenn-00/personal-meister/internal/repo/user-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectService struct {
	repo       project_repo.ProjectRepoContract
	userRepo   user_repo.UserRepoContract
	clientRepo client_repo.ClientRepoContract
	txManager  tx.TxManager
	access     *access_rules.Builder
	now        func() time.Time
}

func NewProjectService(db *pgxpool.Pool) ProjectServiceContract {
	return &ProjectService{
		repo:       project_repo.NewProjectRepo(db),
		userRepo:   user_repo.NewUserRepo(db),
		clientRepo: client_repo.NewClientRepo(db),
		txManager:  tx.NewPgxTxManager(db),
		access:     access_rules.NewBuilder(),
		now:        time.Now,
	}
}

func (s *ProjectService) toProjectResponse(p *entity.ProjectEntity) *project_dto.ProjectResponse {
	members := p.TeamMembers
	if members == nil {
		members = []string{}
	}
	return &project_dto.ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Technology:   p.Technology,
		ClientID:     p.ClientID,
		ClientName:   p.ClientName,
		TeamMembers:  members,
		Status:       string(p.Status),
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		DurationDays: p.DurationDays(s.now()),
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ensureMembers dedupliziert die Team-Mitglieder und prüft, ob alle existieren.
func (s *ProjectService) ensureMembers(ctx context.Context, members []string) ([]string, *app_errors.AppError) {
	unique := make([]string, 0, len(members))
	for _, id := range members {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}

	found, err := s.userRepo.ExistingIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	var missing []app_errors.FieldError
	for _, id := range unique {
		if !found[id] {
			missing = append(missing, app_errors.FieldError{
				Field:      "team_members",
				Reason:     "not_found",
				MessageKey: "user.not_found",
				Params:     map[string]any{"id": id},
			})
		}
	}
	if len(missing) > 0 {
		notFound := app_errors.NewNotFoundError("user.not_found")
		notFound.Details = missing
		return nil, notFound
	}

	return unique, nil
}

// clientName lädt den Kunden, damit Projekte nur auf existierende Kunden zeigen.
func (s *ProjectService) clientName(ctx context.Context, clientID string) (string, *app_errors.AppError) {
	client, err := s.clientRepo.GetClientByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	return client.Name, nil
}

func invalidDateRange(p *entity.ProjectEntity) *app_errors.AppError {
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "project.invalid_date_range", nil)
	}
	return nil
}

func (s *ProjectService) CreateProject(ctx context.Context, actor access_rules.Actor, req *project_dto.CreateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError) {
	if ruleErr := s.access.ProjectManage(actor, access_rules.ActionCreate); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	clientName, err := s.clientName(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	members, err := s.ensureMembers(ctx, req.TeamMembers)
	if err != nil {
		return nil, err
	}

	projectID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	status := entity.ProjectActive
	if req.Status != nil {
		status = entity.ProjectStatus(*req.Status)
	}

	now := s.now()
	project := &entity.ProjectEntity{
		ID:          projectID.String(),
		Name:        req.Name,
		Description: req.Description,
		Technology:  req.Technology,
		ClientID:    req.ClientID,
		ClientName:  clientName,
		TeamMembers: members,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := invalidDateRange(project); err != nil {
		return nil, err
	}

	if err := s.repo.InsertProject(ctx, project); err != nil {
		return nil, err
	}

	return s.toProjectResponse(project), nil
}

func (s *ProjectService) ListProjects(ctx context.Context, actor access_rules.Actor, filter project_dto.ProjectListFilter) ([]*project_dto.ProjectResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	filter.Normalize()

	scope, ruleErr := s.access.ProjectList(actor)
	if ruleErr != nil {
		return nil, nil, app_errors.FromRuleError(ruleErr)
	}

	projects, err := s.repo.ListProjects(ctx, scope, &filter)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.CountProjects(ctx, scope, &filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*project_dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, s.toProjectResponse(&projects[i]))
	}

	return responses, dtos.NewPaginationMeta(filter.Page, filter.Limit, total), nil
}

func (s *ProjectService) GetProject(ctx context.Context, actor access_rules.Actor, projectID string) (*project_dto.ProjectResponse, *app_errors.AppError) {
	scope, ruleErr := s.access.ProjectRead(actor)
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	project, err := s.repo.FindScopedProject(ctx, projectID, scope)
	if err != nil {
		return nil, err
	}

	return s.toProjectResponse(project), nil
}

func (s *ProjectService) ProjectStats(ctx context.Context, actor access_rules.Actor) (*entity.ProjectStats, *app_errors.AppError) {
	scope, ruleErr := s.access.ProjectList(actor)
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	return s.repo.ProjectStats(ctx, scope)
}

func (s *ProjectService) UpdateProject(ctx context.Context, actor access_rules.Actor, projectID string, req *project_dto.UpdateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError) {
	if ruleErr := s.access.ProjectManage(actor, access_rules.ActionUpdate); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	project, err := s.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Technology != nil {
		project.Technology = *req.Technology
	}
	if req.ClientID != nil && *req.ClientID != project.ClientID {
		name, err := s.clientName(ctx, *req.ClientID)
		if err != nil {
			return nil, err
		}
		project.ClientID = *req.ClientID
		project.ClientName = name
	}
	if req.Status != nil {
		project.Status = entity.ProjectStatus(*req.Status)
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.TeamMembers != nil {
		members, err := s.ensureMembers(ctx, req.TeamMembers)
		if err != nil {
			return nil, err
		}
		project.TeamMembers = members
	}

	if err := invalidDateRange(project); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	if err := s.repo.UpdateProject(ctx, t, project); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	return s.toProjectResponse(project), nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, actor access_rules.Actor, projectID string) *app_errors.AppError {
	if ruleErr := s.access.ProjectManage(actor, access_rules.ActionDelete); ruleErr != nil {
		return app_errors.FromRuleError(ruleErr)
	}

	return s.repo.DeleteProject(ctx, projectID)
}
