package report_case

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	report_dto "github.com/Xenn-00/personal-meister/internal/dtos/report-dto"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type ReportServiceContract interface {
	CreateReport(ctx context.Context, actor access_rules.Actor, req *report_dto.CreateReportRequest) (*report_dto.ReportResponse, *app_errors.AppError)
	ListReports(ctx context.Context, actor access_rules.Actor, filter report_dto.ReportListFilter) ([]*report_dto.ReportResponse, *dtos.PaginationMeta, *app_errors.AppError)
	GetReport(ctx context.Context, actor access_rules.Actor, reportID string) (*report_dto.ReportResponse, *app_errors.AppError)
	UpdateReport(ctx context.Context, actor access_rules.Actor, reportID string, req *report_dto.UpdateReportRequest) (*report_dto.ReportResponse, *app_errors.AppError)
}
