package user_dto

import (
	"github.com/Xenn-00/personal-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

type ParamGetUserByID struct {
	ID string `params:"id" validate:"required,uuid"`
}

type CreateEmployeeRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,min=3,max=100"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,role"`
	Position *string `json:"position,omitempty" validate:"omitempty,max=100"`
}

func IsValidRole(fl validator.FieldLevel) bool {
	return entity.UserRole(fl.Field().String()).IsValid()
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
