package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/config"
	"voidspace-backend/internal/domains/comment/model"
	"voidspace-backend/internal/domains/comment/repository"
	"voidspace-backend/internal/infrastructure/queue"
	"voidspace-backend/internal/shared"
	"voidspace-backend/pkg/cache"
)

const (
	approvedCacheKeyPrefix = "comments:approved:"
	approvedCacheTTL       = time.Minute
)

type commentService struct {
	repo      repository.CommentRepository
	enqueuer  queue.Enqueuer
	cache     cache.Cache
	rateLimit config.RateLimitConfig
}

func NewCommentService(
	repo repository.CommentRepository,
	enqueuer queue.Enqueuer,
	c cache.Cache,
	rateLimit config.RateLimitConfig,
) CommentService {
	return &commentService{
		repo:      repo,
		enqueuer:  enqueuer,
		cache:     c,
		rateLimit: rateLimit,
	}
}

func (s *commentService) Submit(ctx context.Context, req *model.SubmitCommentRequest, submitterIP string) (*model.SubmitCommentResponse, error) {
	// Validation runs before any store call; the store never sees raw input.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := repository.SubmitParams{
		PostSlug:               req.PostSlug,
		GuestName:              req.GuestName,
		Content:                req.Content,
		RateLimitMax:           s.rateLimit.MaxComments,
		RateLimitWindowMinutes: s.rateLimit.WindowMinutes,
	}
	if req.GuestEmail != "" {
		params.GuestEmail = &req.GuestEmail
	}
	if submitterIP != "" {
		params.SubmitterIP = &submitterIP
	}

	id, err := s.repo.Submit(ctx, params)
	if err != nil {
		return nil, err
	}

	return &model.SubmitCommentResponse{
		CommentID: id,
		Message:   "Comment submitted successfully! It will appear after moderation.",
	}, nil
}

func (s *commentService) ListApprovedByPostSlug(ctx context.Context, slug string) ([]model.PublicComment, error) {
	cacheKey := approvedCacheKeyPrefix + slug

	var cached []model.PublicComment
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Approved comments cache read failed")
	} else if found {
		return cached, nil
	}

	comments, err := s.repo.ListApprovedByPostSlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, comments, approvedCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Approved comments cache write failed")
	}

	return comments, nil
}

func (s *commentService) ListPending(ctx context.Context) ([]model.PendingComment, error) {
	return s.repo.ListPending(ctx)
}

func (s *commentService) ListAll(ctx context.Context) ([]model.AdminComment, error) {
	return s.repo.ListAll(ctx)
}

// Approve commits the state transition, then fires the commenter
// notification as a queued side effect. The transition is the source of
// truth: a failed enqueue (or a failed delivery later in the worker) is
// logged and never turns a committed approval into an error response.
func (s *commentService) Approve(ctx context.Context, id uuid.UUID) error {
	result, err := s.repo.Approve(ctx, id)
	if err != nil {
		return err
	}

	s.invalidateApprovedCache(ctx, result.PostSlug)

	if result.GuestEmail == nil || *result.GuestEmail == "" {
		return nil
	}

	payload := shared.CommentApprovedPayload{
		Email:     *result.GuestEmail,
		GuestName: result.GuestName,
		Content:   result.Content,
		PostTitle: result.PostTitle,
		PostSlug:  result.PostSlug,
	}

	err = s.enqueuer.Enqueue(ctx, shared.TypeSendCommentApprovedEmail, payload,
		asynq.Queue(shared.QueueDefault))
	if err != nil {
		log.Error().Err(err).
			Str("comment_id", id.String()).
			Msg("Failed to enqueue approval notification")
	}

	return nil
}

func (s *commentService) Reject(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reject(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// The deleted comment may have been on the public path; drop every
	// per-post entry rather than tracking which slug it belonged to.
	if err := s.cache.DeletePattern(ctx, approvedCacheKeyPrefix+"*"); err != nil {
		log.Warn().Err(err).Msg("Approved comments cache invalidation failed")
	}

	return nil
}

func (s *commentService) invalidateApprovedCache(ctx context.Context, slug string) {
	if err := s.cache.Delete(ctx, approvedCacheKeyPrefix+slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Approved comments cache invalidation failed")
	}
}
