package queue

import (
	worker_task "github.com/Xenn-00/personal-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type TaskQueueClient interface {
	EnqueueTodoAssigned(payload *worker_task.TodoAssignedPayload) error
	EnqueueLeaveStatusChanged(payload *worker_task.LeaveStatusChangedPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueTodoAssigned(payload *worker_task.TodoAssignedPayload) error {
	return q.enqueue(worker_task.TaskTodoAssignedEmail, payload, asynq.Queue(worker_task.QueueEmail), asynq.MaxRetry(5))
}

func (q *TaskQueue) EnqueueLeaveStatusChanged(payload *worker_task.LeaveStatusChangedPayload) error {
	return q.enqueue(worker_task.TaskLeaveStatusChangedEmail, payload, asynq.Queue(worker_task.QueueEmail), asynq.MaxRetry(5))
}

func (q *TaskQueue) enqueue(typename string, payload any, opts ...asynq.Option) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	info, err := q.client.Enqueue(asynq.NewTask(typename, p, opts...))
	if err != nil {
		return err
	}
	log.Debug().Str("task", typename).Str("task_id", info.ID).Str("queue", info.Queue).Msg("task enqueued")
	return nil
}
