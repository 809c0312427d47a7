package todo_case

import (
	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	todo_lifecycle "github.com/Xenn-00/personal-meister/internal/rules/todo-lifecycle"
)

func stateOf(t *entity.TodoEntity) todo_lifecycle.State {
	return todo_lifecycle.State{Status: t.Status, DueDate: t.DueDate, CompletedAt: t.CompletedAt}
}

func applyState(t *entity.TodoEntity, s todo_lifecycle.State) {
	t.Status = s.Status
	t.DueDate = s.DueDate
	t.CompletedAt = s.CompletedAt
}

func recordOf(t *entity.TodoEntity) access_rules.Record {
	return access_rules.Record{
		EmployeeID:        t.EmployeeID,
		AssignedBy:        t.AssignedBy,
		HiddenForEmployee: t.IsHiddenForEmployee,
	}
}

// toTodoResponse liefert den beobachteten Status, nicht den gespeicherten.
func toTodoResponse(engine *todo_lifecycle.Engine, t *entity.TodoWithNames) *todo_dto.TodoResponse {
	observed := engine.Observe(stateOf(&t.TodoEntity))

	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	return &todo_dto.TodoResponse{
		ID:                  t.ID,
		Title:               t.Title,
		Description:         t.Description,
		DueDate:             t.DueDate,
		Priority:            string(t.Priority),
		PriorityColor:       t.Priority.Color(),
		Status:              string(observed.Status),
		IsOverdue:           observed.Status == entity.TodoOverdue,
		DaysRemaining:       engine.DaysRemaining(observed),
		EmployeeID:          t.EmployeeID,
		EmployeeName:        t.EmployeeName,
		AssignedBy:          t.AssignedBy,
		AssignedByName:      t.AssignedByName,
		ProjectID:           t.ProjectID,
		ProjectName:         t.ProjectName,
		Tags:                tags,
		Notes:               t.Notes,
		IsHiddenForEmployee: t.IsHiddenForEmployee,
		CompletedAt:         observed.CompletedAt,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

// uniqueIDs entfernt Duplikate und behält die Reihenfolge.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
