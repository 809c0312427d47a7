package entity

import "time"

// UserEntity repräsentiert die Benutzerdaten in der Datenbank.
type UserEntity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	Position     *string   `json:"position"`
	IsActive     bool      `json:"is_active"`
	CreatedBy    *string   `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserCountFilter repräsentiert die Filterkriterien für die Zählung von Benutzern.
type UserCountFilter struct {
	Email *string
	Role  *UserRole
}

// UserOption ist ein Eintrag der Mitarbeiter-Auswahlliste.
type UserOption struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Position *string `json:"position"`
}

type UserRole string

const (
	RoleEmployee   UserRole = "employee"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

func (u UserRole) IsValid() bool {
	switch u {
	case RoleEmployee, RoleAdmin, RoleSuperAdmin:
		return true
	}

	return false
}

type RoleCounts struct {
	Admins    int `json:"admins"`
	Employees int `json:"employees"`
}
