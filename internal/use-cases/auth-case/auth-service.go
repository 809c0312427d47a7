package auth_case

import (
	"context"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/session"
	auth_dto "github.com/Xenn-00/personal-meister/internal/dtos/auth-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	auth_repo "github.com/Xenn-00/personal-meister/internal/repo/auth-repo"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type AuthService struct {
	repo     auth_repo.AuthRepoContract
	sessions session.Store
	paseto   *utils.PasetoMaker
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(db *pgxpool.Pool, redis *redis.Client, paseto *utils.PasetoMaker, tokenTTL time.Duration) AuthServiceContract {
	return &AuthService{
		repo:     auth_repo.NewAuthRepo(db),
		sessions: session.NewRedisStore(redis),
		paseto:   paseto,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func unauthorized(err error) *app_errors.AppError {
	return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", err)
}

// RegisterUser legt den ersten Super-Admin an. Sobald ein Benutzer existiert,
// laufen neue Konten nur noch über die Mitarbeiterverwaltung.
func (s *AuthService) RegisterUser(ctx context.Context, req auth_dto.RegisterUserRequest) (*auth_dto.RegisterUserResponse, *app_errors.AppError) {
	count, err := s.repo.CountUsers(ctx, entity.UserCountFilter{})
	if err != nil {
		return nil, err
	}

	if count > 0 {
		log.Debug().Msg("Bootstrap bereits erfolgt")
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "auth.already_bootstrapped", nil)
	}

	// Passwort hashen
	hashed, hashErr := utils.GenerateHash(req.Password)
	if hashErr != nil {
		log.Error().Err(hashErr).Msg("An Error occured when trying to generate password hash")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", hashErr)
	}

	idUser, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("An Error occured when trying to generate uuid v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	newUser := entity.UserEntity{
		ID:           idUser.String(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         entity.RoleSuperAdmin,
		PasswordHash: hashed,
	}

	newUserID, err := s.repo.SaveUsers(ctx, newUser)
	if err != nil {
		return nil, err
	}

	return &auth_dto.RegisterUserResponse{
		UserID: newUserID,
		Role:   string(entity.RoleSuperAdmin),
	}, nil
}

// LoginUser prüft E-Mail und Passwort, erzeugt ein Paseto-Token mit Rolle und
// legt die Sitzung in Redis ab (TTL = Token-Laufzeit).
func (s *AuthService) LoginUser(ctx context.Context, req auth_dto.LoginUserRequest, loginMeta auth_dto.LoginMetadata) (*auth_dto.LoginUserResponse, *app_errors.AppError) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Unbekannte E-Mail und falsches Passwort sehen gleich aus
		if err.Type == app_errors.ErrNotFound {
			return nil, unauthorized(nil)
		}
		return nil, err
	}

	if !utils.VerifyHash(user.PasswordHash, req.Password) {
		log.Debug().Str("user_id", user.ID).Msg("Falsches Passwort")
		return nil, unauthorized(nil)
	}

	if !user.IsActive {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "auth.user_inactive", nil)
	}

	sessionID, sessionErr := uuid.NewV7()
	if sessionErr != nil {
		log.Err(sessionErr).Msg("An Error occured when trying to generate uuid v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", sessionErr)
	}

	token, expiresAt, pasetoErr := s.paseto.CreateToken(user.ID, string(user.Role), user.Email, sessionID.String(), s.tokenTTL)
	if pasetoErr != nil {
		log.Error().Err(pasetoErr).Msg("Fehler beim Erstellen der Paseto-Token")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", pasetoErr)
	}

	if loginMeta.Device == "" {
		loginMeta.Device = "Unknown Device"
	}

	current := &session.Session{
		JTI:       sessionID.String(),
		UserID:    user.ID,
		Role:      string(user.Role),
		Token:     token,
		Device:    loginMeta.Device,
		UserAgent: loginMeta.UserAgent,
		IP:        loginMeta.IP,
		LoginAt:   s.now(),
	}
	if err := s.sessions.Save(ctx, current, s.tokenTTL); err != nil {
		return nil, err
	}

	return &auth_dto.LoginUserResponse{
		UserID:    user.ID,
		Role:      string(user.Role),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ResolveSession prüft, ob das Token noch zu einer aktiven Sitzung gehört.
// Deaktivierte Benutzer verlieren dabei sofort alle Sitzungen.
func (s *AuthService) ResolveSession(ctx context.Context, jti, token string) (*session.Session, *app_errors.AppError) {
	current, err := s.sessions.Get(ctx, jti)
	if err != nil {
		return nil, err
	}
	if current == nil || current.Token != token {
		return nil, unauthorized(nil)
	}

	active, err := s.repo.IsUserActive(ctx, current.UserID)
	if err != nil {
		if err.Type == app_errors.ErrNotFound {
			return nil, unauthorized(nil)
		}
		return nil, err
	}
	if !active {
		if err := s.sessions.DeleteAllByUser(ctx, current.UserID); err != nil {
			log.Warn().Err(err).Str("user_id", current.UserID).Msg("Sessions eines inaktiven Benutzers nicht gelöscht")
		}
		return nil, unauthorized(nil)
	}

	return current, nil
}

// LogoutUser beendet die Sitzung mit der gegebenen JTI.
func (s *AuthService) LogoutUser(ctx context.Context, sessionID string) *app_errors.AppError {
	current, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if current == nil {
		// Session bereits beendet / ungültig
		return unauthorized(nil)
	}

	return s.sessions.Delete(ctx, current.UserID, current.JTI)
}

// ListAllUserDevices ruft alle aktiven Geräte/Sessions eines Benutzers ab.
func (s *AuthService) ListAllUserDevices(ctx context.Context, userID string) ([]auth_dto.ListAllUserDevicesResponse, *app_errors.AppError) {
	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	devices := make([]auth_dto.ListAllUserDevicesResponse, 0, len(sessions))
	for _, current := range sessions {
		devices = append(devices, auth_dto.ListAllUserDevicesResponse{
			Key:       current.JTI,
			Device:    current.Device,
			IP:        current.IP,
			UserAgent: current.UserAgent,
			LoginAt:   current.LoginAt,
		})
	}

	return devices, nil
}

func (s *AuthService) LogoutAllDevices(ctx context.Context, userID string) *app_errors.AppError {
	return s.sessions.DeleteAllByUser(ctx, userID)
}
