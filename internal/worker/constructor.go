package worker

import (
	"context"
	"time"

	worker_task "github.com/Xenn-00/personal-meister/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxRetryDelay = 10 * time.Minute

// NewWorkerServer teilt die Concurrency nach Queue-Gewicht auf: Mails zuerst, Cron-Jobs zuletzt.
func NewWorkerServer(redis *redis.Client) *asynq.Server {
	return asynq.NewServer(
		redisOpt(redis),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				worker_task.QueueEmail:   6,
				worker_task.QueueDefault: 3,
				worker_task.QueueLow:     1,
			},
			RetryDelayFunc: retryDelay,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				log.Error().
					Err(err).
					Str("task", task.Type()).
					Int("retry", retried).
					Int("max_retry", maxRetry).
					Msg("task failed")
			}),
		},
	)
}

// retryDelay verdoppelt die Wartezeit pro Versuch, begrenzt auf maxRetryDelay.
func retryDelay(n int, _ error, _ *asynq.Task) time.Duration {
	if n > 10 {
		return maxRetryDelay
	}
	d := time.Duration(1<<n) * time.Second
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}

func NewScheduler(redis *redis.Client) *asynq.Scheduler {
	return asynq.NewScheduler(
		redisOpt(redis),
		&asynq.SchedulerOpts{
			Location: time.Local,
			LogLevel: asynq.WarnLevel,
			PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
				if err != nil {
					log.Error().Err(err).Msg("scheduler: enqueue failed")
					return
				}
				log.Debug().Str("task", info.Type).Str("queue", info.Queue).Msg("scheduler: task enqueued")
			},
		},
	)
}

func redisOpt(redis *redis.Client) asynq.RedisClientOpt {
	opts := redis.Options()
	return asynq.RedisClientOpt{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}
}
