package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/domains/comment/repository"
)

// ResetRateLimitWindowsHandler is the hourly cleanup of expired submission
// counters. Scheduled by the asynq scheduler.
type ResetRateLimitWindowsHandler struct {
	repo repository.CommentRepository
}

func NewResetRateLimitWindowsHandler(repo repository.CommentRepository) *ResetRateLimitWindowsHandler {
	return &ResetRateLimitWindowsHandler{repo: repo}
}

func (h *ResetRateLimitWindowsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	reset, err := h.repo.ResetExpiredRateLimitWindows(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to reset rate limit windows")
		return err
	}

	if reset > 0 {
		log.Info().Int("windows_reset", reset).Msg("Expired rate limit windows reset")
	}

	return nil
}
