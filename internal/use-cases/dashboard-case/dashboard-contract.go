package dashboard_case

import (
	"context"

	dashboard_dto "github.com/Xenn-00/personal-meister/internal/dtos/dashboard-dto"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type DashboardServiceContract interface {
	GetDashboard(ctx context.Context, actor access_rules.Actor) (*dashboard_dto.DashboardResponse, *app_errors.AppError)
}
