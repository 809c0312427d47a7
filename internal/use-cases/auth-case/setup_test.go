package auth_case

import (
	"testing"
	"time"

	"github.com/Xenn-00/personal-meister/internal/entity"
	use_cases "github.com/Xenn-00/personal-meister/internal/use-cases"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*AuthService, *use_cases.MockAuthRepo, *use_cases.MockSessionStore) {
	t.Helper()

	maker, err := utils.NewPasetoMaker(utils.GenerateSymmetricKey())
	require.NoError(t, err)

	repo := new(use_cases.MockAuthRepo)
	sessions := new(use_cases.MockSessionStore)
	return &AuthService{
		repo:     repo,
		sessions: sessions,
		paseto:   maker,
		tokenTTL: 15 * time.Minute,
		now:      func() time.Time { return fixedNow },
	}, repo, sessions
}

func activeUser(t *testing.T, password string) *entity.UserEntity {
	t.Helper()

	hash, err := utils.GenerateHash(password)
	require.NoError(t, err)
	return &entity.UserEntity{
		ID:           "user-1",
		Email:        "anna@example.com",
		Name:         "Anna",
		Role:         entity.RoleAdmin,
		PasswordHash: hash,
		IsActive:     true,
	}
}
