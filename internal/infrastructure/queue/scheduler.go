package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"voidspace-backend/internal/shared"
	"voidspace-backend/pkg/logger"
)

// Scheduler registers recurring maintenance tasks on the worker queues.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, redisPassword string, redisDB int) *Scheduler {
	return &Scheduler{
		scheduler: asynq.NewScheduler(
			asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword, DB: redisDB},
			&asynq.SchedulerOpts{
				Location: time.UTC,
				LogLevel: asynq.InfoLevel,
			},
		),
	}
}

// RegisterMaintenanceJobs wires the cron entries.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	return s.registerResetRateLimitWindowsJob()
}

// Expired comment rate-limit windows are reset hourly so the counters table
// does not accumulate stale rows. Submission correctness does not depend on
// this job; submit_comment checks window age itself.
func (s *Scheduler) registerResetRateLimitWindowsJob() error {
	payload, err := json.Marshal(shared.ResetRateLimitWindowsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeResetRateLimitWindows, payload)

	_, err = s.scheduler.Register(
		"0 * * * *", // hourly
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register ResetRateLimitWindows job", err)
		return err
	}

	logger.Info("Registered ResetRateLimitWindows: hourly", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
