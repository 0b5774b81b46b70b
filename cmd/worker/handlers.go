package main

import (
	"github.com/hibiken/asynq"

	"voidspace-backend/internal/config"
	commentJob "voidspace-backend/internal/domains/comment/job"
	commentRepo "voidspace-backend/internal/domains/comment/repository"
	newsletterJob "voidspace-backend/internal/domains/newsletter/job"
	"voidspace-backend/internal/infrastructure/database"
	"voidspace-backend/internal/infrastructure/email"
	"voidspace-backend/internal/shared"
)

// HandlerRegistry maps task types to their handlers.
type HandlerRegistry struct {
	sendApprovedEmail     *commentJob.SendApprovedEmailHandler
	resetRateLimitWindows *commentJob.ResetRateLimitWindowsHandler
	sendWelcomeEmail      *newsletterJob.SendWelcomeEmailHandler
}

func BuildHandlerRegistry(cfg *config.Config, db *database.PostgresDB, emailService email.EmailService) *HandlerRegistry {
	comments := commentRepo.NewPostgresCommentRepository(db.Pool)

	return &HandlerRegistry{
		sendApprovedEmail:     commentJob.NewSendApprovedEmailHandler(emailService, cfg.App.BaseURL),
		resetRateLimitWindows: commentJob.NewResetRateLimitWindowsHandler(comments),
		sendWelcomeEmail:      newsletterJob.NewSendWelcomeEmailHandler(emailService, cfg.App.BaseURL),
	}
}

func (r *HandlerRegistry) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(shared.TypeSendCommentApprovedEmail, r.sendApprovedEmail)
	mux.Handle(shared.TypeResetRateLimitWindows, r.resetRateLimitWindows)
	mux.Handle(shared.TypeSendWelcomeEmail, r.sendWelcomeEmail)
	return mux
}
