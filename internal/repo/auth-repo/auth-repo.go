package auth_repo

import (
	"context"

	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/repo/query"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepo struct {
	db *pgxpool.Pool
}

func NewAuthRepo(db *pgxpool.Pool) AuthRepoContract {
	return &AuthRepo{
		db: db,
	}
}

// CountUsers zählt Benutzer, optional gefiltert nach E-Mail und Rolle.
func (r *AuthRepo) CountUsers(ctx context.Context, filter entity.UserCountFilter) (int64, *app_errors.AppError) {
	w := query.New()
	if filter.Email != nil {
		w.Eq("email", *filter.Email)
	}
	if filter.Role != nil {
		w.Eq("role", *filter.Role)
	}

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+w.SQL(), w.Args()...).Scan(&count); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return count, nil
}

// SaveUsers speichert einen neuen Benutzer und gibt dessen ID zurück.
// Eine bereits vergebene E-Mail endet als Konflikt (23505).
func (r *AuthRepo) SaveUsers(ctx context.Context, model entity.UserEntity) (string, *app_errors.AppError) {
	stmt := `
	INSERT INTO users (id, email, password_hash, name, role, position, is_active, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
	RETURNING id;
	`

	var id string
	if err := r.db.QueryRow(ctx, stmt, model.ID, model.Email, model.PasswordHash, model.Name, model.Role,
		model.Position, model.CreatedBy).Scan(&id); err != nil {
		return "", app_errors.MapPgxError(err)
	}

	return id, nil
}

// FindByEmail sucht einen Benutzer anhand der E-Mail-Adresse.
// Bei Nichtexistenz kommt user.not_found (404) zurück.
func (r *AuthRepo) FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	stmt := `
		SELECT id, email, name, role, password_hash, is_active FROM users WHERE email = $1 LIMIT 1
	`

	var u entity.UserEntity
	if err := r.db.QueryRow(ctx, stmt, email).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.IsActive); err != nil {
		return nil, app_errors.MapPgxLookupError(err, "user.not_found")
	}

	return &u, nil
}

func (r *AuthRepo) IsUserActive(ctx context.Context, userID string) (bool, *app_errors.AppError) {
	var isActive bool
	if err := r.db.QueryRow(ctx, `SELECT is_active FROM users WHERE id = $1`, userID).Scan(&isActive); err != nil {
		return false, app_errors.MapPgxLookupError(err, "user.not_found")
	}

	return isActive, nil
}
