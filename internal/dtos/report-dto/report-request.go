package report_dto

import (
	"time"

	"github.com/Xenn-00/personal-meister/internal/dtos"
)

type CreateReportRequest struct {
	Report       string    `json:"report" validate:"required,max=5000"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	BreakMinutes int       `json:"break_minutes" validate:"min=0,max=1440"`
	Note         *string   `json:"note,omitempty" validate:"omitempty,max=1000"`
}

type UpdateReportRequest struct {
	Report       *string    `json:"report,omitempty" validate:"omitempty,min=1,max=5000"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	BreakMinutes *int       `json:"break_minutes,omitempty" validate:"omitempty,min=0,max=1440"`
	Note         *string    `json:"note,omitempty" validate:"omitempty,max=1000"`
}

// ReportListFilter filtert nach Arbeitstag, FromDate und ToDate zählen inklusive.
type ReportListFilter struct {
	EmployeeID *string    `query:"employee_id" validate:"omitempty,uuid"`
	FromDate   *time.Time `query:"from_date"`
	ToDate     *time.Time `query:"to_date"`
	dtos.PageQuery
}

type ParamReportID struct {
	ID string `params:"report_id" validate:"required,uuid"`
}
