package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/config"
	"voidspace-backend/internal/infrastructure/database"
	"voidspace-backend/internal/infrastructure/email"
	"voidspace-backend/internal/infrastructure/queue"
	"voidspace-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Connect(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	cancel()
	defer db.Close()

	emailService := email.NewSMTPEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.From,
	)

	srv := NewWorkerServer(cfg)
	mux := BuildHandlerRegistry(cfg, db, emailService).Mux()

	scheduler := queue.NewScheduler(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := scheduler.RegisterMaintenanceJobs(); err != nil {
		log.Fatal().Err(err).Msg("Failed to register maintenance jobs")
	}

	go func() {
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("Scheduler failed")
		}
	}()

	go func() {
		log.Info().Msg("Worker starting")
		if err := srv.Start(mux); err != nil {
			log.Fatal().Err(err).Msg("Worker failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down worker")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("Worker stopped")
}
