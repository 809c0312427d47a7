package project_dto

import (
	"time"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	"github.com/Xenn-00/personal-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required,min=3,max=100"`
	Description string     `json:"description" validate:"required,max=1000"`
	Technology  string     `json:"technology" validate:"required,max=200"`
	ClientID    string     `json:"client_id" validate:"required,uuid"`
	TeamMembers []string   `json:"team_members" validate:"required,min=1,dive,uuid"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,projectStatus"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type UpdateProjectRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Technology  *string    `json:"technology,omitempty" validate:"omitempty,max=200"`
	ClientID    *string    `json:"client_id,omitempty" validate:"omitempty,uuid"`
	TeamMembers []string   `json:"team_members,omitempty" validate:"omitempty,min=1,dive,uuid"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,projectStatus"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type ProjectListFilter struct {
	Status   *string `query:"status" validate:"omitempty,projectStatus"`
	ClientID *string `query:"client_id" validate:"omitempty,uuid"`
	Search   *string `query:"search" validate:"omitempty,max=100"`
	dtos.PageQuery
}

type ParamProjectID struct {
	ID string `params:"project_id" validate:"required,uuid"`
}

func IsValidProjectStatus(fl validator.FieldLevel) bool {
	return entity.ProjectStatus(fl.Field().String()).IsValid()
}
