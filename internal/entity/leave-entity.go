package entity

import "time"

type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
)

func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected, LeaveCancelled:
		return true
	}
	return false
}

type LeaveEntity struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employee_id"`
	FromDate   time.Time   `json:"from_date"`
	ToDate     time.Time   `json:"to_date"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	IsHalfDay  bool        `json:"is_half_day"`
	CreatedBy  string      `json:"created_by"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// DurationDays counts both the first and the last day.
func (l LeaveEntity) DurationDays() int {
	diff := l.ToDate.Sub(l.FromDate)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days + 1
}

type LeaveWithEmployee struct {
	LeaveEntity
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
}

type LeaveStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
}
