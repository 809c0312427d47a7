package worker_handler

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// OverdueTodoReminders erinnert an offene Aufgaben, deren Fälligkeit überschritten ist.
// Der Status wird dabei nicht geändert, überfällig wird beim Lesen abgeleitet.
func (wh *WorkerHander) OverdueTodoReminders() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		todos, err := wh.tr.ListOverdueToRemind(ctx, wh.now())
		if err != nil {
			log.Error().Err(err).Msg("Worker handler: Fehler beim Laden überfälliger Aufgaben")
			return err
		}
		if len(todos) == 0 {
			return nil
		}

		// Senden zuerst, nur erfolgreich benachrichtigte Aufgaben werden markiert.
		reminded := make([]string, 0, len(todos))
		for i := range todos {
			if err := wh.mailer.SendTodoOverdueReminder(ctx, &todos[i]); err != nil {
				log.Error().Err(err).Str("todo_id", todos[i].ID).Msg("Worker handler: E-Mail konnte nicht gesendet werden.")
				continue
			}
			reminded = append(reminded, todos[i].ID)
		}
		if len(reminded) == 0 {
			return nil
		}

		tx, txErr := wh.txManager.Begin(ctx)
		if txErr != nil {
			log.Error().Err(txErr).Msg("Worker handler: Failed to open db transaction")
			return txErr
		}
		defer tx.Rollback(ctx)

		if err := wh.tr.MarkReminded(ctx, tx, reminded); err != nil {
			log.Error().Err(err).Msg("Worker handler: last_reminder_at konnte nicht gesetzt werden")
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error when initiating commit transaction")
			return err
		}

		log.Info().Int("reminded", len(reminded)).Int("overdue", len(todos)).Msg("Worker handler: Überfälligkeitserinnerungen versendet")
		return nil
	}
}
