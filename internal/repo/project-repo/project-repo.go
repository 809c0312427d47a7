package project_repo

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	project_dto "github.com/Xenn-00/personal-meister/internal/dtos/project-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/repo/query"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepo(db *pgxpool.Pool) ProjectRepoContract {
	return &ProjectRepo{
		db: db,
	}
}

var scopeColumns = map[access_rules.Field]string{
	access_rules.FieldTeamMembers: "p.team_members",
}

const projectColumns = `p.id, p.name, p.description, p.technology, p.client_id, COALESCE(c.name, ''), p.team_members, p.status,
	p.start_date, p.end_date, p.created_by, p.created_at, p.updated_at`

const projectFrom = ` FROM projects p LEFT JOIN clients c ON c.id = p.client_id`

func scanProject(row pgx.Row, p *entity.ProjectEntity) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Technology, &p.ClientID, &p.ClientName, &p.TeamMembers, &p.Status,
		&p.StartDate, &p.EndDate, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
}

// listStatement sortiert neueste zuerst, p.id bricht Gleichstände.
func listStatement(w *query.Where, filter *project_dto.ProjectListFilter) string {
	return `SELECT ` + projectColumns + projectFrom + w.SQL() + ` ORDER BY p.created_at DESC, p.id DESC` + w.Page(filter.Page, filter.Limit)
}

func applyListFilter(w *query.Where, filter *project_dto.ProjectListFilter) {
	if filter == nil {
		return
	}
	if filter.Status != nil {
		w.Eq("p.status", *filter.Status)
	}
	if filter.ClientID != nil {
		w.Eq("p.client_id", *filter.ClientID)
	}
	if filter.Search != nil {
		w.Search(*filter.Search, "p.name", "p.description", "p.technology")
	}
}

func (r *ProjectRepo) InsertProject(ctx context.Context, project *entity.ProjectEntity) *app_errors.AppError {
	stmt := `
	INSERT INTO projects (id, name, description, technology, client_id, team_members, status, start_date, end_date, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11);
	`
	if _, err := r.db.Exec(ctx, stmt, project.ID, project.Name, project.Description, project.Technology, project.ClientID,
		project.TeamMembers, project.Status, project.StartDate, project.EndDate, project.CreatedBy, project.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError) {
	var project entity.ProjectEntity
	if err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+projectFrom+` WHERE p.id = $1;`, projectID), &project); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "project.not_found")
	}

	return &project, nil
}

// FindScopedProject liefert ein Projekt nur innerhalb des Sichtbereichs, sonst not found.
func (r *ProjectRepo) FindScopedProject(ctx context.Context, projectID string, scope access_rules.Filter) (*entity.ProjectEntity, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	w.Eq("p.id", projectID)

	var project entity.ProjectEntity
	if err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+projectFrom+w.SQL()+` LIMIT 1;`, w.Args()...), &project); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "project.not_found")
	}

	return &project, nil
}

func (r *ProjectRepo) IsProjectExist(ctx context.Context, projectID string) (bool, *app_errors.AppError) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists); err != nil {
		return false, app_errors.MapPgxError(err)
	}
	return exists, nil
}

func (r *ProjectRepo) ListProjects(ctx context.Context, scope access_rules.Filter, filter *project_dto.ProjectListFilter) ([]entity.ProjectEntity, *app_errors.AppError) {
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

	var results []entity.ProjectEntity
	for rows.Next() {
		var project entity.ProjectEntity
		if err := scanProject(rows, &project); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, project)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *ProjectRepo) CountProjects(ctx context.Context, scope access_rules.Filter, filter *project_dto.ProjectListFilter) (int, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	applyListFilter(w, filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects p`+w.SQL(), w.Args()...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, t tx.Tx, project *entity.ProjectEntity) *app_errors.AppError {
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	stmt := `
	UPDATE projects
	SET name = $1,
		description = $2,
		technology = $3,
		client_id = $4,
		team_members = $5,
		status = $6,
		start_date = $7,
		end_date = $8,
		updated_at = now()
	WHERE id = $9
	RETURNING updated_at;
	`
	if err := pgxTx.QueryRow(ctx, stmt, project.Name, project.Description, project.Technology, project.ClientID,
		project.TeamMembers, project.Status, project.StartDate, project.EndDate, project.ID).Scan(&project.UpdatedAt); err != nil {
		return app_errors.MapPgxLookupError(err, "project.not_found")
	}

	return nil
}

func (r *ProjectRepo) DeleteProject(ctx context.Context, projectID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFoundError("project.not_found")
	}
	return nil
}

func (r *ProjectRepo) ProjectStats(ctx context.Context, scope access_rules.Filter) (*entity.ProjectStats, *app_errors.AppError) {
	w := query.New()
	if err := w.Scope(scope, scopeColumns); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	stmt := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE p.status = 'active'),
		COUNT(*) FILTER (WHERE p.status = 'inactive')
	FROM projects p` + w.SQL()

	var s entity.ProjectStats
	if err := r.db.QueryRow(ctx, stmt, w.Args()...).Scan(&s.Total, &s.Active, &s.Inactive); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &s, nil
}
