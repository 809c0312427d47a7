package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Xenn-00/personal-meister/internal/config"
	"github.com/Xenn-00/personal-meister/internal/entity"
	worker_task "github.com/Xenn-00/personal-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const dateLayout = "02 Jan 2006 15:04 MST"

type Mailer interface {
	SendTodoAssigned(ctx context.Context, to, employeeName, assignedByName string, todo *worker_task.TodoAssignedPayload) error
	SendLeaveStatusChanged(ctx context.Context, to, employeeName string, leave *worker_task.LeaveStatusChangedPayload) error
	SendTodoOverdueReminder(ctx context.Context, todo *entity.TodoReminder) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
	client       *http.Client
}

func NewMailer(cfg *config.AppConfig) Mailer {
	client := &http.Client{Timeout: 10 * time.Second}
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
			client:       client,
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
		client:       client,
	}
}

type message struct {
	to       string
	fromName string
	subject  string
	text     string
	category string
}

// send schickt eine Nachricht über die Mailtrap Send-API.
func (m *MailService) send(ctx context.Context, msg message) error {
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  msg.fromName,
		},
		"to": []map[string]string{
			{
				"email": msg.to,
			},
		},
		"subject":  msg.subject,
		"text":     msg.text,
		"category": msg.category,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Mailer: Fehler beim Serialisieren des Payloads.")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("category", msg.category).Msg("Mailer: keine Antwort vom Server.")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	return nil
}

func (m *MailService) SendTodoAssigned(ctx context.Context, to, employeeName, assignedByName string, todo *worker_task.TodoAssignedPayload) error {
	return m.send(ctx, message{
		to:       to,
		fromName: "Personal Meister - Neue Aufgabe",
		subject:  fmt.Sprintf("New todo assigned: %s", todo.Title),
		text: fmt.Sprintf(`Hi %s,

%s assigned a new todo to you.

Todo    : %s
Priority: %s
Due at  : %s

Personal Meister`, employeeName, assignedByName, todo.Title, todo.Priority, todo.DueDate.Format(dateLayout)),
		category: "Todo Assignment",
	})
}

func (m *MailService) SendLeaveStatusChanged(ctx context.Context, to, employeeName string, leave *worker_task.LeaveStatusChangedPayload) error {
	return m.send(ctx, message{
		to:       to,
		fromName: "Personal Meister - Urlaubsantrag",
		subject:  fmt.Sprintf("Your leave request is now %s", leave.Status),
		text: fmt.Sprintf(`Hi %s,

the status of your leave request changed.

From  : %s
To    : %s
Status: %s

Personal Meister`, employeeName, leave.FromDate.Format(dateLayout), leave.ToDate.Format(dateLayout), leave.Status),
		category: "Leave Status",
	})
}

func (m *MailService) SendTodoOverdueReminder(ctx context.Context, todo *entity.TodoReminder) error {
	project := "-"
	if todo.ProjectName != nil {
		project = *todo.ProjectName
	}
	return m.send(ctx, message{
		to:       todo.EmployeeEmail,
		fromName: "Personal Meister - Überfälligkeitsbenachrichtigung",
		subject:  fmt.Sprintf("Todo overdue: %s", todo.Title),
		text: fmt.Sprintf(`Hi %s,

this todo passed its due date and is still open.

Project : %s
Todo    : %s
Priority: %s
Due at  : %s

Please complete it or talk to whoever assigned it if you are blocked.

Personal Meister`, todo.EmployeeName, project, todo.Title, todo.Priority, todo.DueDate.Format(dateLayout)),
		category: "Todo Overdue",
	})
}
