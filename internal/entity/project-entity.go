package entity

import (
	"time"
)

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectInactive ProjectStatus = "inactive"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectInactive:
		return true
	}
	return false
}

type ProjectEntity struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Technology  string        `json:"technology"`
	ClientID    string        `json:"client_id"`
	ClientName  string        `json:"client_name"`
	TeamMembers []string      `json:"team_members"`
	Status      ProjectStatus `json:"status"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	CreatedBy   string        `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// DurationDays is the project length in whole days, counted to today while the project is open.
func (p ProjectEntity) DurationDays(now time.Time) int {
	end := now
	if p.EndDate != nil {
		end = *p.EndDate
	}
	return int(end.Sub(p.StartDate).Hours() / 24)
}

type ProjectStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
