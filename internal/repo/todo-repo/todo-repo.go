package todo_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/repo/query"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo struct {
	db *pgxpool.Pool
}

func NewTodoRepo(db *pgxpool.Pool) TodoRepoContract {
	return &TodoRepo{
		db: db,
	}
}

var scopeColumns = map[access_rules.Field]string{
	access_rules.FieldEmployeeID:        "t.employee_id",
	access_rules.FieldAssignedBy:        "t.assigned_by",
	access_rules.FieldHiddenForEmployee: "t.is_hidden_for_employee",
}

const todoColumns = `t.id, t.title, t.description, t.due_date, t.priority, t.status, t.employee_id, t.assigned_by,
	t.project_id, t.tags, t.notes, t.is_hidden_for_employee, t.completed_at, t.last_reminder_at, t.created_at, t.updated_at`

const todoJoins = `
	FROM todos t
	JOIN users e ON e.id = t.employee_id
	JOIN users a ON a.id = t.assigned_by
	LEFT JOIN projects p ON p.id = t.project_id`

func scanTodo(row pgx.Row, t *entity.TodoEntity, extra ...any) error {
	dest := []any{&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &t.Status, &t.EmployeeID, &t.AssignedBy,
		&t.ProjectID, &t.Tags, &t.Notes, &t.IsHiddenForEmployee, &t.CompletedAt, &t.LastReminderAt, &t.CreatedAt, &t.UpdatedAt}
	return row.Scan(append(dest, extra...)...)
}

func scanTodoWithNames(row pgx.Row) (entity.TodoWithNames, error) {
	var t entity.TodoWithNames
	err := scanTodo(row, &t.TodoEntity, &t.EmployeeName, &t.EmployeeEmail, &t.AssignedByName, &t.ProjectName)
	return t, err
}

// applyListFilter adds the requested narrowing. The status filter works on the derived status.
func applyListFilter(w *query.Where, filter *todo_dto.TodoListFilter, now time.Time) {
	if filter == nil {
		return
	}
	if filter.Status != nil {
		switch entity.TodoStatus(*filter.Status) {
		case entity.TodoCompleted:
			w.Eq("t.status", entity.TodoCompleted)
		case entity.TodoOverdue:
			w.Raw("t.status <> 'completed' AND t.due_date < %s", now)
		case entity.TodoPending:
			w.Raw("t.status <> 'completed' AND t.due_date >= %s", now)
		}
	}
	if filter.Priority != nil {
		w.Eq("t.priority", *filter.Priority)
	}
	if filter.ProjectID != nil {
		w.Eq("t.project_id", *filter.ProjectID)
	}
	if filter.Search != nil {
		w.Search(*filter.Search, "t.title", "t.description", "t.notes")
	}
}

// listStatement orders by due date, then priority. t.id keeps pages stable on ties.
func listStatement(w *query.Where, filter *todo_dto.TodoListFilter) string {
	q := `SELECT ` + todoColumns + `, e.name, e.email, a.name, p.name` + todoJoins + w.SQL()
	q += ` ORDER BY t.due_date ASC, CASE t.priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC, t.id ASC`
	return q + w.Page(filter.Page, filter.Limit)
}

func (r *TodoRepo) InsertTodo(ctx context.Context, todo *entity.TodoEntity) *app_errors.AppError {
	stmt := `
	INSERT INTO todos (id, title, description, due_date, priority, status, employee_id, assigned_by,
		project_id, tags, notes, is_hidden_for_employee, completed_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14);
	`
	tags := todo.Tags
	if tags == nil {
		tags = []string{}
	}

	if _, err := r.db.Exec(ctx, stmt, todo.ID, todo.Title, todo.Description, todo.DueDate, todo.Priority, todo.Status,
		todo.EmployeeID, todo.AssignedBy, todo.ProjectID, tags, todo.Notes, todo.IsHiddenForEmployee, todo.CompletedAt, todo.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *TodoRepo) GetTodoByID(ctx context.Context, todoID string) (*entity.TodoEntity, *app_errors.AppError) {
	stmt := `SELECT ` + todoColumns + ` FROM todos t WHERE t.id = $1;`

	var todo entity.TodoEntity
	if err := scanTodo(r.db.QueryRow(ctx, stmt, todoID), &todo); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "todo.not_found")
	}

	return &todo, nil
}

func (r *TodoRepo) GetTodosByIDs(ctx context.Context, todoIDs []string) ([]entity.TodoEntity, *app_errors.AppError) {
	stmt := `SELECT ` + todoColumns + ` FROM todos t WHERE t.id = ANY($1::text[]::uuid[]) ORDER BY t.id;`

	rows, err := r.db.Query(ctx, stmt, todoIDs)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.TodoEntity
	for rows.Next() {
		var todo entity.TodoEntity
		if err := scanTodo(rows, &todo); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

// FindScopedTodo loads a todo only if it lies inside scope. Outside scope reads as not found.
func (r *TodoRepo) FindScopedTodo(ctx context.Context, todoID string, scope access_rules.Filter) (*entity.TodoWithNames, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	w.Eq("t.id", todoID)

	q := `SELECT ` + todoColumns + `, e.name, e.email, a.name, p.name` + todoJoins + w.SQL() + ` LIMIT 1;`

	todo, err := scanTodoWithNames(r.db.QueryRow(ctx, q, w.Args()...))
	if err != nil {
		return nil, app_errors.MapPgxLookupError(err, "todo.not_found")
	}

	return &todo, nil
}

func (r *TodoRepo) ListTodos(ctx context.Context, scope access_rules.Filter, filter *todo_dto.TodoListFilter, now time.Time) ([]entity.TodoWithNames, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	applyListFilter(w, filter, now)

	rows, err := r.db.Query(ctx, listStatement(w, filter), w.Args()...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.TodoWithNames
	for rows.Next() {
		todo, err := scanTodoWithNames(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *TodoRepo) CountTodos(ctx context.Context, scope access_rules.Filter, filter *todo_dto.TodoListFilter, now time.Time) (int, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	applyListFilter(w, filter, now)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM todos t`+w.SQL(), w.Args()...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *TodoRepo) UpdateTodo(ctx context.Context, t tx.Tx, todo *entity.TodoEntity) *app_errors.AppError {
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	stmt := `
	UPDATE todos
	SET title = $1,
		description = $2,
		due_date = $3,
		priority = $4,
		status = $5,
		project_id = $6,
		tags = $7,
		notes = $8,
		is_hidden_for_employee = $9,
		completed_at = $10,
		updated_at = now()
	WHERE id = $11
	RETURNING updated_at;
	`
	tags := todo.Tags
	if tags == nil {
		tags = []string{}
	}

	if err := pgxTx.QueryRow(ctx, stmt, todo.Title, todo.Description, todo.DueDate, todo.Priority, todo.Status,
		todo.ProjectID, tags, todo.Notes, todo.IsHiddenForEmployee, todo.CompletedAt, todo.ID).Scan(&todo.UpdatedAt); err != nil {
		return app_errors.MapPgxLookupError(err, "todo.not_found")
	}

	return nil
}

// UpdateStatuses writes every change in one batch inside t.
func (r *TodoRepo) UpdateStatuses(ctx context.Context, t tx.Tx, changes []entity.TodoStatusChange) (int, *app_errors.AppError) {
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return 0, appErr
	}

	batch := &pgx.Batch{}
	for _, c := range changes {
		batch.Queue(`UPDATE todos SET status = $1, completed_at = $2, updated_at = now() WHERE id = $3`, c.Status, c.CompletedAt, c.ID)
	}

	br := pgxTx.SendBatch(ctx, batch)
	updated := 0
	for range changes {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return 0, app_errors.MapPgxError(err)
		}
		updated += int(tag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return updated, nil
}

func (r *TodoRepo) DeleteTodo(ctx context.Context, todoID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, todoID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFoundError("todo.not_found")
	}
	return nil
}

func (r *TodoRepo) TodoStats(ctx context.Context, scope access_rules.Filter, now time.Time) (*entity.TodoStats, *app_errors.AppError) {
	w := query.New()
	nowPh := w.Bind(now)
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	q := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE t.status <> 'completed' AND t.due_date >= ` + nowPh + `),
		COUNT(*) FILTER (WHERE t.status = 'completed'),
		COUNT(*) FILTER (WHERE t.status <> 'completed' AND t.due_date < ` + nowPh + `)
	FROM todos t` + w.SQL()

	var s entity.TodoStats
	if err := r.db.QueryRow(ctx, q, w.Args()...).Scan(&s.Total, &s.Pending, &s.Completed, &s.Overdue); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	s.OverdueCount = s.Overdue

	return &s, nil
}

// ListOverdueToRemind lists past-due open todos that never got a reminder.
func (r *TodoRepo) ListOverdueToRemind(ctx context.Context, now time.Time) ([]entity.TodoReminder, *app_errors.AppError) {
	stmt := `
	SELECT t.id, t.title, t.priority, t.due_date, e.name, e.email, p.name
	FROM todos t
	JOIN users e ON e.id = t.employee_id
	LEFT JOIN projects p ON p.id = t.project_id
	WHERE t.status <> 'completed'
		AND t.due_date < $1
		AND t.last_reminder_at IS NULL
	ORDER BY t.due_date ASC, t.id ASC
	LIMIT 500;
	`

	rows, err := r.db.Query(ctx, stmt, now)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.TodoReminder
	for rows.Next() {
		var rem entity.TodoReminder
		if err := rows.Scan(&rem.ID, &rem.Title, &rem.Priority, &rem.DueDate, &rem.EmployeeName, &rem.EmployeeEmail, &rem.ProjectName); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, rem)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *TodoRepo) MarkReminded(ctx context.Context, t tx.Tx, todoIDs []string) *app_errors.AppError {
	if len(todoIDs) == 0 {
		return nil
	}
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	if _, err := pgxTx.Exec(ctx, `UPDATE todos SET last_reminder_at = now() WHERE id = ANY($1::text[]::uuid[])`, todoIDs); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}
