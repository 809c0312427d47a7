package report_dto

import "time"

type ReportResponse struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   string    `json:"employee_name,omitempty"`
	Report         string    `json:"report"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	BreakMinutes   int       `json:"break_minutes"`
	TotalMinutes   int       `json:"total_minutes"`
	WorkingMinutes int       `json:"working_minutes"`
	Note           *string   `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
