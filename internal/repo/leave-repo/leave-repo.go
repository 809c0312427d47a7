package leave_repo

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	leave_dto "github.com/Xenn-00/personal-meister/internal/dtos/leave-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/repo/query"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LeaveRepo struct {
	db *pgxpool.Pool
}

func NewLeaveRepo(db *pgxpool.Pool) LeaveRepoContract {
	return &LeaveRepo{
		db: db,
	}
}

var scopeColumns = map[access_rules.Field]string{
	access_rules.FieldEmployeeID: "l.employee_id",
}

const leaveColumns = `l.id, l.employee_id, l.from_date, l.to_date, l.reason, l.status, l.is_half_day, l.created_by, l.created_at, l.updated_at`

func scanLeave(row pgx.Row, l *entity.LeaveEntity, extra ...any) error {
	dest := []any{&l.ID, &l.EmployeeID, &l.FromDate, &l.ToDate, &l.Reason, &l.Status, &l.IsHalfDay, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt}
	return row.Scan(append(dest, extra...)...)
}

func applyListFilter(w *query.Where, filter *leave_dto.LeaveListFilter) {
	if filter == nil {
		return
	}
	if filter.Status != nil {
		w.Eq("l.status", *filter.Status)
	}
	if filter.FromDate != nil {
		w.Gte("l.from_date", *filter.FromDate)
	}
	if filter.ToDate != nil {
		w.Lte("l.from_date", *filter.ToDate)
	}
	if filter.Search != nil {
		w.Search(*filter.Search, "l.reason", "e.name")
	}
}

// listStatement sortiert neueste zuerst, l.id bricht Gleichstände.
func listStatement(w *query.Where, filter *leave_dto.LeaveListFilter) string {
	stmt := `SELECT ` + leaveColumns + `, e.name, e.email FROM leaves l JOIN users e ON e.id = l.employee_id` + w.SQL()
	return stmt + ` ORDER BY l.created_at DESC, l.id DESC` + w.Page(filter.Page, filter.Limit)
}

func (r *LeaveRepo) InsertLeave(ctx context.Context, leave *entity.LeaveEntity) *app_errors.AppError {
	stmt := `
	INSERT INTO leaves (id, employee_id, from_date, to_date, reason, status, is_half_day, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9);
	`
	if _, err := r.db.Exec(ctx, stmt, leave.ID, leave.EmployeeID, leave.FromDate, leave.ToDate, leave.Reason,
		leave.Status, leave.IsHalfDay, leave.CreatedBy, leave.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *LeaveRepo) GetLeaveByID(ctx context.Context, leaveID string) (*entity.LeaveEntity, *app_errors.AppError) {
	var leave entity.LeaveEntity
	if err := scanLeave(r.db.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves l WHERE l.id = $1;`, leaveID), &leave); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "leave.not_found")
	}

	return &leave, nil
}

// FindScopedLeave liefert den Antrag nur, wenn er im Sichtbereich liegt.
func (r *LeaveRepo) FindScopedLeave(ctx context.Context, leaveID string, scope access_rules.Filter) (*entity.LeaveWithEmployee, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	w.Eq("l.id", leaveID)

	stmt := `SELECT ` + leaveColumns + `, e.name, e.email FROM leaves l JOIN users e ON e.id = l.employee_id` + w.SQL() + ` LIMIT 1;`

	var leave entity.LeaveWithEmployee
	if err := scanLeave(r.db.QueryRow(ctx, stmt, w.Args()...), &leave.LeaveEntity, &leave.EmployeeName, &leave.EmployeeEmail); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "leave.not_found")
	}

	return &leave, nil
}

func (r *LeaveRepo) ListLeaves(ctx context.Context, scope access_rules.Filter, filter *leave_dto.LeaveListFilter) ([]entity.LeaveWithEmployee, *app_errors.AppError) {
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

	var results []entity.LeaveWithEmployee
	for rows.Next() {
		var leave entity.LeaveWithEmployee
		if err := scanLeave(rows, &leave.LeaveEntity, &leave.EmployeeName, &leave.EmployeeEmail); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, leave)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *LeaveRepo) CountLeaves(ctx context.Context, scope access_rules.Filter, filter *leave_dto.LeaveListFilter) (int, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	applyListFilter(w, filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leaves l JOIN users e ON e.id = l.employee_id`+w.SQL(), w.Args()...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *LeaveRepo) UpdateLeave(ctx context.Context, t tx.Tx, leave *entity.LeaveEntity) *app_errors.AppError {
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	stmt := `
	UPDATE leaves
	SET from_date = $1,
		to_date = $2,
		reason = $3,
		status = $4,
		is_half_day = $5,
		updated_at = now()
	WHERE id = $6
	RETURNING updated_at;
	`
	if err := pgxTx.QueryRow(ctx, stmt, leave.FromDate, leave.ToDate, leave.Reason, leave.Status, leave.IsHalfDay, leave.ID).Scan(&leave.UpdatedAt); err != nil {
		return app_errors.MapPgxLookupError(err, "leave.not_found")
	}

	return nil
}

func (r *LeaveRepo) DeleteLeave(ctx context.Context, leaveID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, leaveID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFoundError("leave.not_found")
	}
	return nil
}

func (r *LeaveRepo) LeaveStats(ctx context.Context, scope access_rules.Filter) (*entity.LeaveStats, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	stmt := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE l.status = 'pending'),
		COUNT(*) FILTER (WHERE l.status = 'approved'),
		COUNT(*) FILTER (WHERE l.status = 'rejected'),
		COUNT(*) FILTER (WHERE l.status = 'cancelled')
	FROM leaves l` + w.SQL()

	var s entity.LeaveStats
	if err := r.db.QueryRow(ctx, stmt, w.Args()...).Scan(&s.Total, &s.Pending, &s.Approved, &s.Rejected, &s.Cancelled); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &s, nil
}
