package user_case

import (
	"context"
	"fmt"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/cache"
	"github.com/Xenn-00/personal-meister/internal/abstraction/session"
	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	user_dto "github.com/Xenn-00/personal-meister/internal/dtos/user-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	auth_repo "github.com/Xenn-00/personal-meister/internal/repo/auth-repo"
	user_repo "github.com/Xenn-00/personal-meister/internal/repo/user-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const profileTTL = 15 * time.Minute

type UserService struct {
	repo      user_repo.UserRepoContract
	authRepo  auth_repo.AuthRepoContract
	txManager tx.TxManager
	cache     cache.Cache
	sessions  session.Store
}

func NewUserService(db *pgxpool.Pool, redis *redis.Client) UserServiceContract {
	return &UserService{
		repo:      user_repo.NewUserRepo(db),
		authRepo:  auth_repo.NewAuthRepo(db),
		txManager: tx.NewPgxTxManager(db),
		cache:     cache.NewRedisCache(redis),
		sessions:  session.NewRedisStore(redis),
	}
}

func profileKey(userID string) string {
	return fmt.Sprintf("user_profile:%s", userID)
}

func forbidden(key string) *app_errors.AppError {
	return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, key, nil)
}

// CreateEmployee legt ein neues Konto an. Admins dürfen nur Mitarbeiter anlegen,
// Super-Admins jede Rolle.
func (s *UserService) CreateEmployee(ctx context.Context, actor access_rules.Actor, req *user_dto.CreateEmployeeRequest) (*user_dto.UserProfileResponse, *app_errors.AppError) {
	switch actor.Role {
	case access_rules.SuperAdmin:
	case access_rules.Admin:
		if req.Role != string(entity.RoleEmployee) {
			return nil, forbidden("user.admin_only_employees")
		}
	default:
		return nil, forbidden("forbidden")
	}

	count, err := s.authRepo.CountUsers(ctx, entity.UserCountFilter{Email: &req.Email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "user.email_taken", nil)
	}

	hashed, hashErr := utils.GenerateHash(req.Password)
	if hashErr != nil {
		log.Error().Err(hashErr).Msg("An Error occured when trying to generate password hash")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", hashErr)
	}

	userID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	createdBy := actor.ID
	user := entity.UserEntity{
		ID:           userID.String(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         entity.UserRole(req.Role),
		Position:     req.Position,
		PasswordHash: hashed,
		IsActive:     true,
		CreatedBy:    &createdBy,
	}

	savedID, err := s.authRepo.SaveUsers(ctx, user)
	if err != nil {
		return nil, err
	}

	return &user_dto.UserProfileResponse{
		ID:       savedID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     string(user.Role),
		Position: user.Position,
		IsActive: true,
	}, nil
}

// ListEmployees ist die Auswahlliste für Zuweisungen.
func (s *UserService) ListEmployees(ctx context.Context, actor access_rules.Actor) ([]entity.UserOption, *app_errors.AppError) {
	if actor.Role == access_rules.Employee {
		return nil, forbidden("forbidden")
	}
	return s.repo.ListEmployees(ctx)
}

// GetProfile liefert das eigene Profil oder, für Admins, jedes Profil.
// Mitarbeiter sehen bei fremden Profilen nur Name, Rolle und Position.
func (s *UserService) GetProfile(ctx context.Context, actor access_rules.Actor, userID string) (*user_dto.UserProfileResponse, *app_errors.AppError) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if actor.Role == access_rules.Employee && actor.ID != userID {
		return &user_dto.UserProfileResponse{
			ID:       profile.ID,
			Name:     profile.Name,
			Role:     profile.Role,
			Position: profile.Position,
			IsActive: profile.IsActive,
		}, nil
	}

	return profile, nil
}

func (s *UserService) loadProfile(ctx context.Context, userID string) (*user_dto.UserProfileResponse, *app_errors.AppError) {
	// Redis dient nur als Cache, NICHT als Source of Truth
	var cached user_dto.UserProfileResponse
	if found, err := s.cache.Get(ctx, profileKey(userID), &cached); err == nil && found {
		return &cached, nil
	}

	user, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &user_dto.UserProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		Position:  user.Position,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if err := s.cache.Set(ctx, profileKey(userID), profile, profileTTL); err != nil {
		log.Warn().Err(err.Err).Msg("Fehler beim Einstellen der Redis-Cache")
	}

	return profile, nil
}

// SetEmployeeActive (de)aktiviert ein Konto. Beim Deaktivieren enden alle Sitzungen.
func (s *UserService) SetEmployeeActive(ctx context.Context, actor access_rules.Actor, userID string, active bool) *app_errors.AppError {
	if actor.Role == access_rules.Employee {
		return forbidden("forbidden")
	}
	if actor.ID == userID {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "user.cannot_change_self", nil)
	}

	user, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if actor.Role == access_rules.Admin && user.Role != entity.RoleEmployee {
		return forbidden("user.admin_only_employees")
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer t.Rollback(ctx)

	if err := s.repo.SetUserActive(ctx, t, userID, active); err != nil {
		return err
	}

	if err := t.Commit(ctx); err != nil {
		return err
	}

	if err := s.cache.Del(ctx, profileKey(userID)); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Löschen der Cache")
	}

	if !active {
		if err := s.sessions.DeleteAllByUser(ctx, userID); err != nil {
			return err
		}
	}

	return nil
}
