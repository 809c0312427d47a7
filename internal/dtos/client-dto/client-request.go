package client_dto

import (
	"github.com/Xenn-00/personal-meister/internal/dtos"
	"github.com/Xenn-00/personal-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateClientRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	About   *string `json:"about,omitempty" validate:"omitempty,max=500"`
	Country string  `json:"country" validate:"required,max=50"`
	State   string  `json:"state" validate:"required,max=50"`
	City    string  `json:"city" validate:"required,max=50"`
	Status  *string `json:"status,omitempty" validate:"omitempty,clientStatus"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	About   *string `json:"about,omitempty" validate:"omitempty,max=500"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=50"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=50"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=50"`
	Status  *string `json:"status,omitempty" validate:"omitempty,clientStatus"`
}

type ClientListFilter struct {
	Status *string `query:"status" validate:"omitempty,clientStatus"`
	Search *string `query:"search" validate:"omitempty,max=100"`
	dtos.PageQuery
}

type ParamClientID struct {
	ID string `params:"client_id" validate:"required,uuid"`
}

func IsValidClientStatus(fl validator.FieldLevel) bool {
	return entity.ClientStatus(fl.Field().String()).IsValid()
}
