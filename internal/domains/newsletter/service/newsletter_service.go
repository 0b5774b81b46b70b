package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/domains/newsletter/model"
	"voidspace-backend/internal/domains/newsletter/repository"
	postrepo "voidspace-backend/internal/domains/post/repository"
	"voidspace-backend/internal/infrastructure/email"
	"voidspace-backend/internal/infrastructure/queue"
	"voidspace-backend/internal/shared"
)

// campaignSendTimeout bounds each individual delivery so one stuck
// subscriber cannot stall the whole fanout.
const campaignSendTimeout = 15 * time.Second

type newsletterService struct {
	repo         repository.NewsletterRepository
	posts        postrepo.PostRepository
	emailService email.EmailService
	enqueuer     queue.Enqueuer
	siteName     string
	baseURL      string
}

func NewNewsletterService(
	repo repository.NewsletterRepository,
	posts postrepo.PostRepository,
	emailService email.EmailService,
	enqueuer queue.Enqueuer,
	siteName string,
	baseURL string,
) NewsletterService {
	return &newsletterService{
		repo:         repo,
		posts:        posts,
		emailService: emailService,
		enqueuer:     enqueuer,
		siteName:     siteName,
		baseURL:      baseURL,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil && existing.IsActive:
		return nil, model.ErrAlreadySubscribed

	case err == nil:
		// Unsubscribed before; bring the original row back instead of
		// inserting a duplicate.
		if err := s.repo.Reactivate(ctx, req.Email); err != nil {
			return nil, err
		}
		s.enqueueWelcome(ctx, req.Email)
		return &model.SubscribeResponse{
			Message: "Welcome back! Your subscription has been reactivated.",
		}, nil

	case errors.Is(err, model.ErrSubscriberNotFound):
		if err := s.repo.Create(ctx, req.Email); err != nil {
			return nil, err
		}
		s.enqueueWelcome(ctx, req.Email)
		return &model.SubscribeResponse{
			Message: "Successfully subscribed to the newsletter!",
		}, nil

	default:
		return nil, err
	}
}

// enqueueWelcome fires the welcome email as a queued side effect. The
// subscription is already committed; a failed enqueue is logged only.
func (s *newsletterService) enqueueWelcome(ctx context.Context, subscriberEmail string) {
	payload := shared.WelcomeEmailPayload{Email: subscriberEmail}

	err := s.enqueuer.Enqueue(ctx, shared.TypeSendWelcomeEmail, payload,
		asynq.Queue(shared.QueueDefault))
	if err != nil {
		log.Error().Err(err).Str("email", subscriberEmail).Msg("Failed to enqueue welcome email")
	}
}

func (s *newsletterService) Unsubscribe(ctx context.Context, req *model.UnsubscribeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.repo.Unsubscribe(ctx, req.Email)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrSubscriberNotFound
	}

	return nil
}

// SendCampaign mails a published post to every active subscriber,
// synchronously, one delivery at a time. Individual failures are
// recorded and do not abort the rest of the fanout.
func (s *newsletterService) SendCampaign(ctx context.Context, req *model.SendCampaignRequest) (*model.CampaignResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.posts.GetBySlug(ctx, req.PostSlug)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	publishedAt := post.CreatedAt
	if post.PublishedAt != nil {
		publishedAt = *post.PublishedAt
	}
	campaignPost := email.NewsletterPost{
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		Slug:        post.Slug,
		Author:      s.siteName,
		PublishedAt: publishedAt.Format("January 2, 2006"),
	}
	subject := fmt.Sprintf("New post: %s", post.Title)

	result := &model.CampaignResult{Total: len(subscribers)}
	for _, sub := range subscribers {
		rendered := email.GenerateNewsletterEmail(sub.Email, campaignPost, s.baseURL)

		sendCtx, cancel := context.WithTimeout(ctx, campaignSendTimeout)
		err := s.emailService.Send(sendCtx, email.Message{
			To:      sub.Email,
			Subject: subject,
			HTML:    rendered.HTML,
			Text:    rendered.Text,
		})
		cancel()

		if err != nil {
			log.Error().Err(err).Str("email", sub.Email).Str("slug", post.Slug).Msg("Campaign send failed")
			result.Failed++
			result.FailedEmails = append(result.FailedEmails, sub.Email)
			continue
		}
		result.Successful++
	}

	log.Info().
		Str("slug", post.Slug).
		Int("total", result.Total).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Msg("Newsletter campaign finished")

	return result, nil
}

func (s *newsletterService) Stats(ctx context.Context) (*model.Stats, error) {
	return s.repo.Stats(ctx)
}
