package client_case

import (
	"context"
	"strings"
	"time"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	client_dto "github.com/Xenn-00/personal-meister/internal/dtos/client-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	client_repo "github.com/Xenn-00/personal-meister/internal/repo/client-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientService struct {
	repo   client_repo.ClientRepoContract
	access *access_rules.Builder
	now    func() time.Time
}

func NewClientService(db *pgxpool.Pool) ClientServiceContract {
	return &ClientService{
		repo:   client_repo.NewClientRepo(db),
		access: access_rules.NewBuilder(),
		now:    time.Now,
	}
}

func toClientResponse(c *entity.ClientEntity) *client_dto.ClientResponse {
	return &client_dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		About:     c.About,
		Country:   c.Country,
		State:     c.State,
		City:      c.City,
		Status:    string(c.Status),
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ensureEmailFree meldet 409, wenn ein anderer Kunde die Adresse schon nutzt.
func (s *ClientService) ensureEmailFree(ctx context.Context, email, excludeID string) *app_errors.AppError {
	taken, err := s.repo.IsEmailTaken(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "client.email_taken", nil)
	}
	return nil
}

func (s *ClientService) CreateClient(ctx context.Context, actor access_rules.Actor, req *client_dto.CreateClientRequest) (*client_dto.ClientResponse, *app_errors.AppError) {
	if ruleErr := s.access.ClientManage(actor, access_rules.ActionCreate); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	clientID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	status := entity.ClientActive
	if req.Status != nil {
		status = entity.ClientStatus(*req.Status)
	}

	now := s.now()
	client := &entity.ClientEntity{
		ID:        clientID.String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		About:     req.About,
		Country:   req.Country,
		State:     req.State,
		City:      req.City,
		Status:    status,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.InsertClient(ctx, client); err != nil {
		return nil, err
	}

	return toClientResponse(client), nil
}

func (s *ClientService) ListClients(ctx context.Context, actor access_rules.Actor, filter client_dto.ClientListFilter) ([]*client_dto.ClientResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	filter.Normalize()

	if ruleErr := s.access.ClientRead(actor); ruleErr != nil {
		return nil, nil, app_errors.FromRuleError(ruleErr)
	}

	clients, err := s.repo.ListClients(ctx, &filter)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.CountClients(ctx, &filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*client_dto.ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, toClientResponse(&clients[i]))
	}

	return responses, dtos.NewPaginationMeta(filter.Page, filter.Limit, total), nil
}

func (s *ClientService) GetClient(ctx context.Context, actor access_rules.Actor, clientID string) (*client_dto.ClientResponse, *app_errors.AppError) {
	if ruleErr := s.access.ClientRead(actor); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	client, err := s.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return toClientResponse(client), nil
}

func (s *ClientService) ClientStats(ctx context.Context, actor access_rules.Actor) (*entity.ClientStats, *app_errors.AppError) {
	if ruleErr := s.access.ClientRead(actor); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	return s.repo.ClientStats(ctx)
}

func (s *ClientService) UpdateClient(ctx context.Context, actor access_rules.Actor, clientID string, req *client_dto.UpdateClientRequest) (*client_dto.ClientResponse, *app_errors.AppError) {
	if ruleErr := s.access.ClientManage(actor, access_rules.ActionUpdate); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	client, err := s.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != client.Email {
			if err := s.ensureEmailFree(ctx, email, client.ID); err != nil {
				return nil, err
			}
			client.Email = email
		}
	}
	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.About != nil {
		client.About = req.About
	}
	if req.Country != nil {
		client.Country = *req.Country
	}
	if req.State != nil {
		client.State = *req.State
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.Status != nil {
		client.Status = entity.ClientStatus(*req.Status)
	}

	if err := s.repo.UpdateClient(ctx, client); err != nil {
		return nil, err
	}

	return toClientResponse(client), nil
}

// DeleteClient lehnt Kunden ab, an denen noch Projekte hängen.
func (s *ClientService) DeleteClient(ctx context.Context, actor access_rules.Actor, clientID string) *app_errors.AppError {
	if ruleErr := s.access.ClientManage(actor, access_rules.ActionDelete); ruleErr != nil {
		return app_errors.FromRuleError(ruleErr)
	}

	inUse, err := s.repo.HasProjects(ctx, clientID)
	if err != nil {
		return err
	}
	if inUse {
		return app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "client.has_projects", nil)
	}

	return s.repo.DeleteClient(ctx, clientID)
}
