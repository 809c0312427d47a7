package entity

import "time"

// ReportEntity is an employee's daily work report.
type ReportEntity struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	Report       string    `json:"report"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	BreakMinutes int       `json:"break_minutes"`
	Note         *string   `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TotalMinutes is the span between start and end, breaks included.
func (r ReportEntity) TotalMinutes() int {
	return int(r.EndTime.Sub(r.StartTime).Minutes())
}

func (r ReportEntity) WorkingMinutes() int {
	return r.TotalMinutes() - r.BreakMinutes
}

type ReportWithEmployee struct {
	ReportEntity
	EmployeeName string `json:"employee_name"`
}
