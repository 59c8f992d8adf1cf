package main

import (
	"context"
	"os"

	"github.com/hibiken/asynq"

	"musings-backend/internal/shared"
	"musings-backend/pkg/container"
	"musings-backend/pkg/logger"
)

type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(c *container.Container, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				shared.QueueMail:    10,
				shared.QueueDefault: 5,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("Task failed", err)
			}),
		},
	)

	go func() {
		logger.Info("Worker starting", nil)
		if err := srv.Run(mux); err != nil {
			logger.Error("Worker failed", err)
			os.Exit(1)
		}
	}()

	return &asynqServer{Server: srv}
}

func (s *asynqServer) Shutdown() {
	logger.Info("Worker draining in-flight tasks", nil)
	s.Server.Shutdown()
}
