package client_repo

import (
	"context"

	client_dto "github.com/Xenn-00/personal-meister/internal/dtos/client-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/repo/query"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepo struct {
	db *pgxpool.Pool
}

func NewClientRepo(db *pgxpool.Pool) ClientRepoContract {
	return &ClientRepo{
		db: db,
	}
}

const clientColumns = `c.id, c.name, c.email, c.about, c.country, c.state, c.city, c.status, c.created_by, c.created_at, c.updated_at`

func scanClient(row pgx.Row, c *entity.ClientEntity) error {
	return row.Scan(&c.ID, &c.Name, &c.Email, &c.About, &c.Country, &c.State, &c.City, &c.Status, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
}

func applyListFilter(w *query.Where, filter *client_dto.ClientListFilter) {
	if filter == nil {
		return
	}
	if filter.Status != nil {
		w.Eq("c.status", *filter.Status)
	}
	if filter.Search != nil {
		w.Search(*filter.Search, "c.name", "c.email", "c.country", "c.state", "c.city")
	}
}

func listStatement(w *query.Where, filter *client_dto.ClientListFilter) string {
	return `SELECT ` + clientColumns + ` FROM clients c` + w.SQL() + ` ORDER BY c.created_at DESC, c.id DESC` + w.Page(filter.Page, filter.Limit)
}

func (r *ClientRepo) InsertClient(ctx context.Context, client *entity.ClientEntity) *app_errors.AppError {
	stmt := `
	INSERT INTO clients (id, name, email, about, country, state, city, status, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10);
	`
	if _, err := r.db.Exec(ctx, stmt, client.ID, client.Name, client.Email, client.About, client.Country,
		client.State, client.City, client.Status, client.CreatedBy, client.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *ClientRepo) GetClientByID(ctx context.Context, clientID string) (*entity.ClientEntity, *app_errors.AppError) {
	var client entity.ClientEntity
	if err := scanClient(r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients c WHERE c.id = $1;`, clientID), &client); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "client.not_found")
	}

	return &client, nil
}

// IsEmailTaken prüft die Eindeutigkeit der E-Mail, optional ohne den Kunden excludeID.
func (r *ClientRepo) IsEmailTaken(ctx context.Context, email string, excludeID string) (bool, *app_errors.AppError) {
	w := query.New().Eq("c.email", email)
	if excludeID != "" {
		w.Raw("c.id <> %s", excludeID)
	}

	var taken bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients c`+w.SQL()+`)`, w.Args()...).Scan(&taken); err != nil {
		return false, app_errors.MapPgxError(err)
	}
	return taken, nil
}

func (r *ClientRepo) ListClients(ctx context.Context, filter *client_dto.ClientListFilter) ([]entity.ClientEntity, *app_errors.AppError) {
	w := query.New()
	applyListFilter(w, filter)

	rows, err := r.db.Query(ctx, listStatement(w, filter), w.Args()...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.ClientEntity
	for rows.Next() {
		var client entity.ClientEntity
		if err := scanClient(rows, &client); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, client)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *ClientRepo) CountClients(ctx context.Context, filter *client_dto.ClientListFilter) (int, *app_errors.AppError) {
	w := query.New()
	applyListFilter(w, filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients c`+w.SQL(), w.Args()...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *ClientRepo) UpdateClient(ctx context.Context, client *entity.ClientEntity) *app_errors.AppError {
	stmt := `
	UPDATE clients
	SET name = $1,
		email = $2,
		about = $3,
		country = $4,
		state = $5,
		city = $6,
		status = $7,
		updated_at = now()
	WHERE id = $8
	RETURNING updated_at;
	`
	if err := r.db.QueryRow(ctx, stmt, client.Name, client.Email, client.About, client.Country,
		client.State, client.City, client.Status, client.ID).Scan(&client.UpdatedAt); err != nil {
		return app_errors.MapPgxLookupError(err, "client.not_found")
	}

	return nil
}

func (r *ClientRepo) HasProjects(ctx context.Context, clientID string) (bool, *app_errors.AppError) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE client_id = $1)`, clientID).Scan(&exists); err != nil {
		return false, app_errors.MapPgxError(err)
	}
	return exists, nil
}

func (r *ClientRepo) DeleteClient(ctx context.Context, clientID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, clientID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFoundError("client.not_found")
	}
	return nil
}

func (r *ClientRepo) ClientStats(ctx context.Context) (*entity.ClientStats, *app_errors.AppError) {
	stmt := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'active'),
		COUNT(*) FILTER (WHERE status = 'inactive')
	FROM clients`

	var s entity.ClientStats
	if err := r.db.QueryRow(ctx, stmt).Scan(&s.Total, &s.Active, &s.Inactive); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &s, nil
}
