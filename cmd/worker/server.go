package main

import (
	"github.com/hibiken/asynq"

	"voidspace-backend/internal/config"
	"voidspace-backend/internal/shared"
)

// WorkerServer wraps the asynq server with our queue priorities.
type WorkerServer struct {
	server *asynq.Server
}

func NewWorkerServer(cfg *config.Config) *WorkerServer {
	return &WorkerServer{
		server: asynq.NewServer(
			asynq.RedisClientOpt{
				Addr:     cfg.Redis.Host,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			},
			asynq.Config{
				Concurrency: 10,
				Queues: map[string]int{
					shared.QueueHigh:    20,
					shared.QueueDefault: 10,
					shared.QueueLow:     5,
				},
			},
		),
	}
}

func (s *WorkerServer) Start(mux *asynq.ServeMux) error {
	return s.server.Start(mux)
}

func (s *WorkerServer) Shutdown() {
	s.server.Shutdown()
}
