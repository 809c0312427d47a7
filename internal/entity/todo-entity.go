package entity

import "time"

type TodoStatus string

const (
	TodoPending   TodoStatus = "pending"
	TodoCompleted TodoStatus = "completed"
	TodoOverdue   TodoStatus = "overdue"
)

func (s TodoStatus) Valid() bool {
	switch s {
	case TodoPending, TodoCompleted, TodoOverdue:
		return true
	}
	return false
}

type TodoPriority string

const (
	PriorityLow    TodoPriority = "low"
	PriorityMedium TodoPriority = "medium"
	PriorityHigh   TodoPriority = "high"
)

func (p TodoPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Color is the UI badge for the priority.
func (p TodoPriority) Color() string {
	switch p {
	case PriorityHigh:
		return "danger"
	case PriorityMedium:
		return "warning"
	case PriorityLow:
		return "success"
	}
	return "secondary"
}

type TodoEntity struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         *string      `json:"description"`
	DueDate             time.Time    `json:"due_date"`
	Priority            TodoPriority `json:"priority"`
	Status              TodoStatus   `json:"status"`
	EmployeeID          string       `json:"employee_id"`
	AssignedBy          string       `json:"assigned_by"`
	ProjectID           *string      `json:"project_id"`
	Tags                []string     `json:"tags"`
	Notes               *string      `json:"notes"`
	IsHiddenForEmployee bool         `json:"is_hidden_for_employee"`
	CompletedAt         *time.Time   `json:"completed_at"`
	LastReminderAt      *time.Time   `json:"last_reminder_at"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// TodoWithNames joins the todo with the display names the list views need.
type TodoWithNames struct {
	TodoEntity
	EmployeeName   string  `json:"employee_name"`
	EmployeeEmail  string  `json:"employee_email"`
	AssignedByName string  `json:"assigned_by_name"`
	ProjectName    *string `json:"project_name"`
}

// TodoStatusChange is one row of a status write, already decided by the lifecycle engine.
type TodoStatusChange struct {
	ID          string
	Status      TodoStatus
	CompletedAt *time.Time
}

type TodoStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Completed    int `json:"completed"`
	Overdue      int `json:"overdue"`
	OverdueCount int `json:"overdue_count"`
}

type TodoReminder struct {
	ID            string
	Title         string
	Priority      TodoPriority
	DueDate       time.Time
	EmployeeName  string
	EmployeeEmail string
	ProjectName   *string
}
