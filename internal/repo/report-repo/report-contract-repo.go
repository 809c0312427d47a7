package report_repo

import (
	"context"

	report_dto "github.com/Xenn-00/personal-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type ReportRepoContract interface {
	InsertReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError
	GetReportByID(ctx context.Context, reportID string) (*entity.ReportEntity, *app_errors.AppError)
	FindScopedReport(ctx context.Context, reportID string, scope access_rules.Filter) (*entity.ReportWithEmployee, *app_errors.AppError)
	ListReports(ctx context.Context, scope access_rules.Filter, filter *report_dto.ReportListFilter) ([]entity.ReportWithEmployee, *app_errors.AppError)
	CountReports(ctx context.Context, scope access_rules.Filter, filter *report_dto.ReportListFilter) (int, *app_errors.AppError)
	UpdateReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError
}
