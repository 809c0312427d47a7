package report_case

import (
	"context"
	"time"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	report_dto "github.com/Xenn-00/personal-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	report_repo "github.com/Xenn-00/personal-meister/internal/repo/report-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportService struct {
	repo   report_repo.ReportRepoContract
	access *access_rules.Builder
	now    func() time.Time
}

func NewReportService(db *pgxpool.Pool) ReportServiceContract {
	return &ReportService{
		repo:   report_repo.NewReportRepo(db),
		access: access_rules.NewBuilder(),
		now:    time.Now,
	}
}

func toReportResponse(r *entity.ReportWithEmployee) *report_dto.ReportResponse {
	return &report_dto.ReportResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   r.EmployeeName,
		Report:         r.Report,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		BreakMinutes:   r.BreakMinutes,
		TotalMinutes:   r.TotalMinutes(),
		WorkingMinutes: r.WorkingMinutes(),
		Note:           r.Note,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// validateTimes verlangt Ende nach Start und eine Pause kürzer als die Anwesenheit.
func validateTimes(r *entity.ReportEntity) *app_errors.AppError {
	if !r.EndTime.After(r.StartTime) {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "report.invalid_time_range", nil)
	}
	if r.BreakMinutes >= r.TotalMinutes() {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "report.break_exceeds_duration", nil)
	}
	return nil
}

func (s *ReportService) CreateReport(ctx context.Context, actor access_rules.Actor, req *report_dto.CreateReportRequest) (*report_dto.ReportResponse, *app_errors.AppError) {
	if ruleErr := s.access.ReportCreate(actor, access_rules.Record{EmployeeID: actor.ID}); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	reportID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	now := s.now()
	report := &entity.ReportEntity{
		ID:           reportID.String(),
		EmployeeID:   actor.ID,
		Report:       req.Report,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		Note:         req.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := validateTimes(report); err != nil {
		return nil, err
	}

	if err := s.repo.InsertReport(ctx, report); err != nil {
		return nil, err
	}

	return toReportResponse(&entity.ReportWithEmployee{ReportEntity: *report}), nil
}

func (s *ReportService) ListReports(ctx context.Context, actor access_rules.Actor, filter report_dto.ReportListFilter) ([]*report_dto.ReportResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	filter.Normalize()

	q := access_rules.Query{}
	if filter.EmployeeID != nil {
		q.EmployeeID = *filter.EmployeeID
	}
	scope, ruleErr := s.access.ReportList(actor, q)
	if ruleErr != nil {
		return nil, nil, app_errors.FromRuleError(ruleErr)
	}

	reports, err := s.repo.ListReports(ctx, scope, &filter)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.CountReports(ctx, scope, &filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*report_dto.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, toReportResponse(&reports[i]))
	}

	return responses, dtos.NewPaginationMeta(filter.Page, filter.Limit, total), nil
}

func (s *ReportService) GetReport(ctx context.Context, actor access_rules.Actor, reportID string) (*report_dto.ReportResponse, *app_errors.AppError) {
	scope, ruleErr := s.access.ReportRead(actor)
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	report, err := s.repo.FindScopedReport(ctx, reportID, scope)
	if err != nil {
		return nil, err
	}

	return toReportResponse(report), nil
}

func (s *ReportService) UpdateReport(ctx context.Context, actor access_rules.Actor, reportID string, req *report_dto.UpdateReportRequest) (*report_dto.ReportResponse, *app_errors.AppError) {
	report, err := s.repo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if ruleErr := s.access.ReportUpdate(actor, access_rules.Record{EmployeeID: report.EmployeeID}); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	if req.Report != nil {
		report.Report = *req.Report
	}
	if req.StartTime != nil {
		report.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		report.EndTime = *req.EndTime
	}
	if req.BreakMinutes != nil {
		report.BreakMinutes = *req.BreakMinutes
	}
	if req.Note != nil {
		report.Note = req.Note
	}

	if err := validateTimes(report); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateReport(ctx, report); err != nil {
		return nil, err
	}

	return toReportResponse(&entity.ReportWithEmployee{ReportEntity: *report}), nil
}
