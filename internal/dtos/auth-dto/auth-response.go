package auth_dto

import "time"

// RegisterUserResponse repräsentiert die Daten, die nach der Registrierung zurückgegeben werden.
type RegisterUserResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// LoginUserResponse repräsentiert die Daten, die nach der Anmeldung eines Benutzers zurückgegeben werden.
type LoginUserResponse struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ListAllUserDevicesResponse struct {
	Key       string    `json:"key"`
	Device    string    `json:"device"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	LoginAt   time.Time `json:"login_at"`
}
