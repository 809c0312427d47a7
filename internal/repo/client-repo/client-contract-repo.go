package client_repo

import (
	"context"

	client_dto "github.com/Xenn-00/personal-meister/internal/dtos/client-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
)

type ClientRepoContract interface {
	InsertClient(ctx context.Context, client *entity.ClientEntity) *app_errors.AppError
	GetClientByID(ctx context.Context, clientID string) (*entity.ClientEntity, *app_errors.AppError)
	IsEmailTaken(ctx context.Context, email string, excludeID string) (bool, *app_errors.AppError)
	ListClients(ctx context.Context, filter *client_dto.ClientListFilter) ([]entity.ClientEntity, *app_errors.AppError)
	CountClients(ctx context.Context, filter *client_dto.ClientListFilter) (int, *app_errors.AppError)
	UpdateClient(ctx context.Context, client *entity.ClientEntity) *app_errors.AppError
	HasProjects(ctx context.Context, clientID string) (bool, *app_errors.AppError)
	DeleteClient(ctx context.Context, clientID string) *app_errors.AppError
	ClientStats(ctx context.Context) (*entity.ClientStats, *app_errors.AppError)
}
