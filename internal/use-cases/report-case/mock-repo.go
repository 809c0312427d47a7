package report_case

import (
	"context"

	report_dto "github.com/Xenn-00/personal-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	report_repo "github.com/Xenn-00/personal-meister/internal/repo/report-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/stretchr/testify/mock"
)

var _ report_repo.ReportRepoContract = (*MockReportRepo)(nil)

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) InsertReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError {
	args := m.Called(ctx, report)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockReportRepo) GetReportByID(ctx context.Context, reportID string) (*entity.ReportEntity, *app_errors.AppError) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(*entity.ReportEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) FindScopedReport(ctx context.Context, reportID string, scope access_rules.Filter) (*entity.ReportWithEmployee, *app_errors.AppError) {
	args := m.Called(ctx, reportID, scope)
	return args.Get(0).(*entity.ReportWithEmployee), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) ListReports(ctx context.Context, scope access_rules.Filter, filter *report_dto.ReportListFilter) ([]entity.ReportWithEmployee, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]entity.ReportWithEmployee), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) CountReports(ctx context.Context, scope access_rules.Filter, filter *report_dto.ReportListFilter) (int, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) UpdateReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError {
	args := m.Called(ctx, report)
	return args.Get(0).(*app_errors.AppError)
}
