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

// SendWelcomeEmailHandler delivers the newsletter welcome message to a
// freshly subscribed (or reactivated) address.
type SendWelcomeEmailHandler struct {
	emailService email.EmailService
	baseURL      string
}

func NewSendWelcomeEmailHandler(emailService email.EmailService, baseURL string) *SendWelcomeEmailHandler {
	return &SendWelcomeEmailHandler{
		emailService: emailService,
		baseURL:      baseURL,
	}
}

func (h *SendWelcomeEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.WelcomeEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal WelcomeEmail payload")
		return asynq.SkipRetry
	}

	rendered := email.GenerateWelcomeEmail(payload.Email, h.baseURL)

	err := h.emailService.Send(ctx, email.Message{
		To:      payload.Email,
		Subject: "Welcome to the Void",
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}

	log.Info().Str("email", payload.Email).Msg("Welcome email sent")
	return nil
}
