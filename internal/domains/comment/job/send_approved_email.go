package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/infrastructure/email"
	"voidspace-backend/internal/shared"
)

// SendApprovedEmailHandler delivers the "your comment is live" notification.
// Runs in the worker, after the approval has long been committed; a failure
// here is retried by asynq but never touches moderation state.
type SendApprovedEmailHandler struct {
	emailService email.EmailService
	baseURL      string
}

func NewSendApprovedEmailHandler(emailService email.EmailService, baseURL string) *SendApprovedEmailHandler {
	return &SendApprovedEmailHandler{
		emailService: emailService,
		baseURL:      baseURL,
	}
}

func (h *SendApprovedEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.CommentApprovedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal CommentApproved payload")
		return asynq.SkipRetry
	}

	rendered := email.GenerateCommentApprovedEmail(
		payload.GuestName,
		payload.PostTitle,
		payload.PostSlug,
		payload.Content,
		h.baseURL,
	)

	msg := email.Message{
		To:      payload.Email,
		Subject: fmt.Sprintf("Your comment on %q was approved", payload.PostTitle),
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	}

	if err := h.emailService.Send(ctx, msg); err != nil {
		return fmt.Errorf("send approval notification: %w", err)
	}

	log.Info().
		Str("email", payload.Email).
		Str("post_slug", payload.PostSlug).
		Msg("Approval notification sent")

	return nil
}
