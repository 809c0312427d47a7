package user_repo

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) UserRepoContract {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	stmt := `
		SELECT id, email, name, role, position, is_active, created_by, created_at, updated_at FROM users WHERE id = $1 LIMIT 1
	`

	var u entity.UserEntity
	if err := r.db.QueryRow(ctx, stmt, userID).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Position, &u.IsActive,
		&u.CreatedBy, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "user.not_found")
	}
	return &u, nil
}

// ListEmployees liefert alle aktiven Mitarbeiter, sortiert nach Name.
func (r *UserRepo) ListEmployees(ctx context.Context) ([]entity.UserOption, *app_errors.AppError) {
	stmt := `
		SELECT id, name, email, position FROM users
		WHERE role = 'employee' AND is_active = TRUE
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	employees := []entity.UserOption{}
	for rows.Next() {
		var u entity.UserOption
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Position); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		employees = append(employees, u)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return employees, nil
}

func (r *UserRepo) CountRoles(ctx context.Context) (*entity.RoleCounts, *app_errors.AppError) {
	stmt := `
		SELECT
			COUNT(*) FILTER (WHERE role IN ('admin', 'super_admin')),
			COUNT(*) FILTER (WHERE role = 'employee')
		FROM users
		WHERE is_active = TRUE
	`
	var c entity.RoleCounts
	if err := r.db.QueryRow(ctx, stmt).Scan(&c.Admins, &c.Employees); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return &c, nil
}

// ExistingIDs prüft, welche der IDs zu aktiven Benutzern gehören.
func (r *UserRepo) ExistingIDs(ctx context.Context, userIDs []string) (map[string]bool, *app_errors.AppError) {
	found := make(map[string]bool, len(userIDs))
	if len(userIDs) == 0 {
		return found, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id::text FROM users WHERE id::text = ANY($1) AND is_active = TRUE`, userIDs)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		found[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return found, nil
}

// SetUserActive (de)aktiviert einen Benutzer innerhalb der Transaktion.
func (r *UserRepo) SetUserActive(ctx context.Context, t tx.Tx, userID string, active bool) *app_errors.AppError {
	pgxTx, txErr := tx.Unwrap(t)
	if txErr != nil {
		return txErr
	}

	tag, err := pgxTx.Exec(ctx, `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1`, userID, active)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFoundError("user.not_found")
	}
	return nil
}
