package entity

import "time"

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientActive, ClientInactive:
		return true
	}
	return false
}

type ClientEntity struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	About     *string      `json:"about"`
	Country   string       `json:"country"`
	State     string       `json:"state"`
	City      string       `json:"city"`
	Status    ClientStatus `json:"status"`
	CreatedBy string       `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type ClientStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
