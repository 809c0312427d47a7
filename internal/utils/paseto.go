package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

const (
	tokenAudience = "personal-meister"
	tokenIssuer   = "PM-service"
)

// PasetoMaker verarbeitet lokale PASETO-Operationen der Version 4 (symmetrisch).
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
}

func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
	}, nil
}

// GenerateSymmetricKey generiert einen neuen symmetrischen V4-Schlüssel. Nur einmal nötig, wenn kein hexKey vorhanden ist.
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// CreateToken erstellt ein lokales V4 Token (encrypted) mit Rolle und Session-ID.
func (m *PasetoMaker) CreateToken(userID, role, email, sessionID string, duration time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(duration)

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(exp)
	token.SetAudience(tokenAudience)
	token.SetIssuer(tokenIssuer)
	token.SetSubject(userID)

	token.SetString("role", role)
	token.SetString("email", email)
	token.SetJti(sessionID)

	return token.V4Encrypt(m.symmetricKey, nil), exp, nil
}

type PayloadPaseto struct {
	UserID    string
	Role      string
	Email     string
	JTI       string
	ExpiresAt time.Time
}

// VerifyToken entschlüsselt und prüft das lokale V4 Token.
func (m *PasetoMaker) VerifyToken(tokenString string) (*PayloadPaseto, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.IssuedBy(tokenIssuer))
	parser.AddRule(paseto.ValidAt(time.Now()))

	parsed, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("token decryption/verification failed: %w", err)
	}

	payload := &PayloadPaseto{}
	if payload.UserID, err = parsed.GetSubject(); err != nil {
		return nil, err
	}
	if payload.Role, err = parsed.GetString("role"); err != nil {
		return nil, err
	}
	if payload.JTI, err = parsed.GetJti(); err != nil {
		return nil, err
	}
	payload.Email, _ = parsed.GetString("email")
	payload.ExpiresAt, _ = parsed.GetExpiration()

	return payload, nil
}
