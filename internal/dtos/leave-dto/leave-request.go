package leave_dto

import (
	"time"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	"github.com/Xenn-00/personal-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

// CreateLeaveRequest: ohne employee_id gilt der Antrag für den Aufrufer selbst.
type CreateLeaveRequest struct {
	EmployeeID string    `json:"employee_id,omitempty" validate:"omitempty,uuid"`
	FromDate   time.Time `json:"from_date" validate:"required"`
	ToDate     time.Time `json:"to_date" validate:"required,gtefield=FromDate"`
	Reason     string    `json:"reason" validate:"required,max=500"`
	IsHalfDay  bool      `json:"is_half_day"`
}

type UpdateLeaveRequest struct {
	FromDate  *time.Time `json:"from_date,omitempty"`
	ToDate    *time.Time `json:"to_date,omitempty"`
	Reason    *string    `json:"reason,omitempty" validate:"omitempty,min=1,max=500"`
	Status    *string    `json:"status,omitempty" validate:"omitempty,leaveStatus"`
	IsHalfDay *bool      `json:"is_half_day,omitempty"`
}

// ChangesContent reports whether the request touches anything besides the status.
func (r *UpdateLeaveRequest) ChangesContent() bool {
	return r.FromDate != nil || r.ToDate != nil || r.Reason != nil || r.IsHalfDay != nil
}

// LeaveListFilter filtert nach from_date im Bereich [FromDate, ToDate].
type LeaveListFilter struct {
	Status     *string    `query:"status" validate:"omitempty,leaveStatus"`
	EmployeeID *string    `query:"employee_id" validate:"omitempty,uuid"`
	Search     *string    `query:"search" validate:"omitempty,max=100"`
	FromDate   *time.Time `query:"from_date"`
	ToDate     *time.Time `query:"to_date"`
	dtos.PageQuery
}

type ParamLeaveID struct {
	ID string `params:"leave_id" validate:"required,uuid"`
}

func IsValidLeaveStatus(fl validator.FieldLevel) bool {
	return entity.LeaveStatus(fl.Field().String()).IsValid()
}
