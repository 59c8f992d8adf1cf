package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"musings-backend/internal/shared"
	"musings-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, redisPassword string, redisDB int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterJobs wires every recurring job.
func (s *Scheduler) RegisterJobs() error {
	return s.registerBackfillVideoThumbnailsJob()
}

// Videos created without a resolvable thumbnail get one derived from their
// YouTube URL once a day.
func (s *Scheduler) registerBackfillVideoThumbnailsJob() error {
	task := asynq.NewTask(shared.TypeBackfillVideoThumbnails, nil)

	_, err := s.scheduler.Register(
		"0 3 * * *", // Daily at 3 AM
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register BackfillVideoThumbnails job", err)
		return fmt.Errorf("register backfill job: %w", err)
	}

	return nil
}

func (s *Scheduler) Run() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
