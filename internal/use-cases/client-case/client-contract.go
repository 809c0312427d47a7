package client_case

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	client_dto "github.com/Xenn-00/personal-meister/internal/dtos/client-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type ClientServiceContract interface {
	CreateClient(ctx context.Context, actor access_rules.Actor, req *client_dto.CreateClientRequest) (*client_dto.ClientResponse, *app_errors.AppError)
	ListClients(ctx context.Context, actor access_rules.Actor, filter client_dto.ClientListFilter) ([]*client_dto.ClientResponse, *dtos.PaginationMeta, *app_errors.AppError)
	GetClient(ctx context.Context, actor access_rules.Actor, clientID string) (*client_dto.ClientResponse, *app_errors.AppError)
	ClientStats(ctx context.Context, actor access_rules.Actor) (*entity.ClientStats, *app_errors.AppError)
	UpdateClient(ctx context.Context, actor access_rules.Actor, clientID string, req *client_dto.UpdateClientRequest) (*client_dto.ClientResponse, *app_errors.AppError)
	DeleteClient(ctx context.Context, actor access_rules.Actor, clientID string) *app_errors.AppError
}
