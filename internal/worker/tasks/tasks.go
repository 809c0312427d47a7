package worker_task

import "time"

const (
	QueueEmail   = "email"
	QueueDefault = "default"
	QueueLow     = "low"
)

const TaskTodoAssignedEmail = "email:todo_assigned"

const TaskLeaveStatusChangedEmail = "email:leave_status_changed"

const TaskOverdueTodoReminders = "low:overdue_todo_reminders"

type TodoAssignedPayload struct {
	TodoID     string    `json:"todo_id"`
	Title      string    `json:"title"`
	Priority   string    `json:"priority"`
	DueDate    time.Time `json:"due_date"`
	EmployeeID string    `json:"employee_id"`
	AssignedBy string    `json:"assigned_by"`
}

type LeaveStatusChangedPayload struct {
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	FromDate   time.Time `json:"from_date"`
	ToDate     time.Time `json:"to_date"`
	ChangedBy  string    `json:"changed_by"`
}
