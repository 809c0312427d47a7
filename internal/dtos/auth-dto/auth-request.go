package auth_dto

// RegisterUserRequest legt den ersten Super-Admin an, solange noch kein Benutzer existiert.
type RegisterUserRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required,min=3"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginUserRequest repräsentiert die Daten, die für die Anmeldung eines Benutzers benötigt werden
type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginMetadata struct {
	UserAgent string
	Device    string
	IP        string
}
