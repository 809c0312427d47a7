package leave_dto

import "time"

type LeaveResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	FromDate     time.Time `json:"from_date"`
	ToDate       time.Time `json:"to_date"`
	DurationDays int       `json:"duration_days"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	IsHalfDay    bool      `json:"is_half_day"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
