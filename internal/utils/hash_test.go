package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHash(t *testing.T) {
	hash, err := GenerateHash("geheim123")
	require.NoError(t, err)

	assert.NotEqual(t, "geheim123", hash)
	assert.True(t, VerifyHash(hash, "geheim123"))
	assert.False(t, VerifyHash(hash, "falsch"))
}

func TestPasetoRoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(GenerateSymmetricKey())
	require.NoError(t, err)

	token, exp, err := maker.CreateToken("user-1", "admin", "a@example.com", "jti-1", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	payload, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, "admin", payload.Role)
	assert.Equal(t, "jti-1", payload.JTI)
	assert.Equal(t, "a@example.com", payload.Email)
}

func TestPasetoRejectsForeignKey(t *testing.T) {
	a, err := NewPasetoMaker(GenerateSymmetricKey())
	require.NoError(t, err)
	b, err := NewPasetoMaker(GenerateSymmetricKey())
	require.NoError(t, err)

	token, _, err := a.CreateToken("user-1", "employee", "e@example.com", "jti-1", time.Hour)
	require.NoError(t, err)

	_, err = b.VerifyToken(token)
	assert.Error(t, err)
}
