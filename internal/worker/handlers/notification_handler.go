package worker_handler

import (
	"context"
	"fmt"

	worker_task "github.com/Xenn-00/personal-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// TodoAssigned benachrichtigt einen Mitarbeiter über eine neu zugewiesene Aufgabe.
func (wh *WorkerHander) TodoAssigned() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.TodoAssignedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Fehler beim Unmarshal des Task-Payloads.")
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		employee, err := wh.ur.FindByUserID(ctx, p.EmployeeID)
		if err != nil {
			log.Error().Err(err).Str("employee_id", p.EmployeeID).Msg("Worker handler: Mitarbeiter konnte nicht geladen werden")
			return err
		}
		if !employee.IsActive {
			return nil
		}

		assignedBy := "Personal Meister"
		if assigner, err := wh.ur.FindByUserID(ctx, p.AssignedBy); err == nil {
			assignedBy = assigner.Name
		}

		if err := wh.mailer.SendTodoAssigned(ctx, employee.Email, employee.Name, assignedBy, &p); err != nil {
			log.Error().Err(err).Str("todo_id", p.TodoID).Msg("Worker handler: E-Mail konnte nicht gesendet werden.")
			return err
		}

		return nil
	}
}

// LeaveStatusChanged informiert den Antragsteller über einen geänderten Urlaubsstatus.
func (wh *WorkerHander) LeaveStatusChanged() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.LeaveStatusChangedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Fehler beim Unmarshal des Task-Payloads.")
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		employee, err := wh.ur.FindByUserID(ctx, p.EmployeeID)
		if err != nil {
			log.Error().Err(err).Str("employee_id", p.EmployeeID).Msg("Worker handler: Mitarbeiter konnte nicht geladen werden")
			return err
		}

		if err := wh.mailer.SendLeaveStatusChanged(ctx, employee.Email, employee.Name, &p); err != nil {
			log.Error().Err(err).Str("leave_id", p.LeaveID).Msg("Worker handler: E-Mail konnte nicht gesendet werden.")
			return err
		}

		return nil
	}
}
