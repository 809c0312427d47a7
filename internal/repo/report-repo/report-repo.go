package report_repo

import (
	"context"

	report_dto "github.com/Xenn-00/personal-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/repo/query"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepo(db *pgxpool.Pool) ReportRepoContract {
	return &ReportRepo{
		db: db,
	}
}

var scopeColumns = map[access_rules.Field]string{
	access_rules.FieldEmployeeID: "r.employee_id",
}

const reportColumns = `r.id, r.employee_id, r.report, r.start_time, r.end_time, r.break_minutes, r.note, r.created_at, r.updated_at`

const reportFrom = ` FROM reports r JOIN users e ON e.id = r.employee_id`

func scanReport(row pgx.Row, r *entity.ReportEntity, extra ...any) error {
	dest := []any{&r.ID, &r.EmployeeID, &r.Report, &r.StartTime, &r.EndTime, &r.BreakMinutes, &r.Note, &r.CreatedAt, &r.UpdatedAt}
	return row.Scan(append(dest, extra...)...)
}

// applyListFilter grenzt nach Arbeitstag ein. ToDate schließt den ganzen Tag ein.
func applyListFilter(w *query.Where, filter *report_dto.ReportListFilter) {
	if filter == nil {
		return
	}
	if filter.FromDate != nil {
		w.Gte("r.start_time", *filter.FromDate)
	}
	if filter.ToDate != nil {
		w.Raw("r.start_time < %s", filter.ToDate.AddDate(0, 0, 1))
	}
}

func listStatement(w *query.Where, filter *report_dto.ReportListFilter) string {
	return `SELECT ` + reportColumns + `, e.name` + reportFrom + w.SQL() + ` ORDER BY r.start_time DESC, r.id DESC` + w.Page(filter.Page, filter.Limit)
}

func (r *ReportRepo) InsertReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError {
	stmt := `
	INSERT INTO reports (id, employee_id, report, start_time, end_time, break_minutes, note, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8);
	`
	if _, err := r.db.Exec(ctx, stmt, report.ID, report.EmployeeID, report.Report, report.StartTime, report.EndTime,
		report.BreakMinutes, report.Note, report.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *ReportRepo) GetReportByID(ctx context.Context, reportID string) (*entity.ReportEntity, *app_errors.AppError) {
	var report entity.ReportEntity
	if err := scanReport(r.db.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports r WHERE r.id = $1;`, reportID), &report); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "report.not_found")
	}

	return &report, nil
}

func (r *ReportRepo) FindScopedReport(ctx context.Context, reportID string, scope access_rules.Filter) (*entity.ReportWithEmployee, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	w.Eq("r.id", reportID)

	var report entity.ReportWithEmployee
	stmt := `SELECT ` + reportColumns + `, e.name` + reportFrom + w.SQL() + ` LIMIT 1;`
	if err := scanReport(r.db.QueryRow(ctx, stmt, w.Args()...), &report.ReportEntity, &report.EmployeeName); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "report.not_found")
	}

	return &report, nil
}

func (r *ReportRepo) ListReports(ctx context.Context, scope access_rules.Filter, filter *report_dto.ReportListFilter) ([]entity.ReportWithEmployee, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	applyListFilter(w, filter)

	rows, err := r.db.Query(ctx, listStatement(w, filter), w.Args()...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.ReportWithEmployee
	for rows.Next() {
		var report entity.ReportWithEmployee
		if err := scanReport(rows, &report.ReportEntity, &report.EmployeeName); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, report)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *ReportRepo) CountReports(ctx context.Context, scope access_rules.Filter, filter *report_dto.ReportListFilter) (int, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	applyListFilter(w, filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reports r`+w.SQL(), w.Args()...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *ReportRepo) UpdateReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError {
	stmt := `
	UPDATE reports
	SET report = $1,
		start_time = $2,
		end_time = $3,
		break_minutes = $4,
		note = $5,
		updated_at = now()
	WHERE id = $6
	RETURNING updated_at;
	`
	if err := r.db.QueryRow(ctx, stmt, report.Report, report.StartTime, report.EndTime, report.BreakMinutes,
		report.Note, report.ID).Scan(&report.UpdatedAt); err != nil {
		return app_errors.MapPgxLookupError(err, "report.not_found")
	}

	return nil
}
