package todo_dto

import (
	"time"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	"github.com/Xenn-00/personal-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateTodoRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	Priority    *string   `json:"priority,omitempty" validate:"omitempty,todoPriority"`
	EmployeeID  string    `json:"employee_id" validate:"required,uuid"`
	ProjectID   *string   `json:"project_id,omitempty" validate:"omitempty,uuid"`
	Tags        []string  `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Notes       *string   `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// UpdateTodoRequest ändert nur gesetzte Felder. employee_id und assigned_by sind unveränderlich.
// clear_project löst die Projektzuordnung, project_id darf dann nicht gesetzt sein.
type UpdateTodoRequest struct {
	Title               *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	Priority            *string    `json:"priority,omitempty" validate:"omitempty,todoPriority"`
	ProjectID           *string    `json:"project_id,omitempty" validate:"omitempty,uuid"`
	ClearProject        bool       `json:"clear_project,omitempty" validate:"excluded_with=ProjectID"`
	Tags                []string   `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Notes               *string    `json:"notes,omitempty" validate:"omitempty,max=500"`
	IsHiddenForEmployee *bool      `json:"is_hidden_for_employee,omitempty"`
}

type UpdateTodoStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BulkTodoStatusRequest struct {
	TodoIDs []string `json:"todo_ids" validate:"required,min=1,max=100,dive,uuid"`
	Status  string   `json:"status" validate:"required"`
}

type TodoListFilter struct {
	Status     *string `query:"status" validate:"omitempty,todoStatus"`
	Priority   *string `query:"priority" validate:"omitempty,todoPriority"`
	EmployeeID *string `query:"employee_id" validate:"omitempty,uuid"`
	ProjectID  *string `query:"project_id" validate:"omitempty,uuid"`
	Search     *string `query:"search" validate:"omitempty,max=100"`
	dtos.PageQuery
}

type ParamTodoID struct {
	ID string `params:"todo_id" validate:"required,uuid"`
}

func IsValidTodoStatus(fl validator.FieldLevel) bool {
	return entity.TodoStatus(fl.Field().String()).Valid()
}

func IsValidTodoPriority(fl validator.FieldLevel) bool {
	return entity.TodoPriority(fl.Field().String()).Valid()
}
