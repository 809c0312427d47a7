package todo_dto

import "time"

type TodoResponse struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         *string    `json:"description,omitempty"`
	DueDate             time.Time  `json:"due_date"`
	Priority            string     `json:"priority"`
	PriorityColor       string     `json:"priority_color"`
	Status              string     `json:"status"`
	IsOverdue           bool       `json:"is_overdue"`
	DaysRemaining       int        `json:"days_remaining"`
	EmployeeID          string     `json:"employee_id"`
	EmployeeName        string     `json:"employee_name,omitempty"`
	AssignedBy          string     `json:"assigned_by"`
	AssignedByName      string     `json:"assigned_by_name,omitempty"`
	ProjectID           *string    `json:"project_id,omitempty"`
	ProjectName         *string    `json:"project_name,omitempty"`
	Tags                []string   `json:"tags"`
	Notes               *string    `json:"notes,omitempty"`
	IsHiddenForEmployee bool       `json:"is_hidden_for_employee"`
	CompletedAt         *time.Time `json:"completed_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type BulkTodoStatusResponse struct {
	Updated int    `json:"updated"`
	Status  string `json:"status"`
}
