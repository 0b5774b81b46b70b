package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/domains/post/model"
	"voidspace-backend/internal/domains/post/repository"
	"voidspace-backend/internal/shared/utils"
	"voidspace-backend/pkg/cache"
)

const (
	postListCacheKey   = "posts:published"
	postCacheKeyPrefix = "posts:slug:"
	tagCountsCacheKey  = "posts:tags"
	postCacheTTL       = 5 * time.Minute
)

type postService struct {
	repo  repository.PostRepository
	cache cache.Cache
}

func NewPostService(repo repository.PostRepository, c cache.Cache) PostService {
	return &postService{
		repo:  repo,
		cache: c,
	}
}

func (s *postService) ListPublished(ctx context.Context) ([]model.Post, error) {
	var cached []model.Post
	if found, err := s.cache.Get(ctx, postListCacheKey, &cached); err != nil {
		log.Warn().Err(err).Msg("Post list cache read failed")
	} else if found {
		return cached, nil
	}

	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, postListCacheKey, posts, postCacheTTL); err != nil {
		log.Warn().Err(err).Msg("Post list cache write failed")
	}

	return posts, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	cacheKey := postCacheKeyPrefix + slug

	var cached model.Post
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Post cache read failed")
	} else if found {
		return &cached, nil
	}

	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, post, postCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Post cache write failed")
	}

	return post, nil
}

func (s *postService) ListByTag(ctx context.Context, tag string) ([]model.Post, error) {
	return s.repo.ListByTag(ctx, tag)
}

func (s *postService) GetTagCounts(ctx context.Context) ([]model.TagCount, error) {
	var cached []model.TagCount
	if found, err := s.cache.Get(ctx, tagCountsCacheKey, &cached); err != nil {
		log.Warn().Err(err).Msg("Tag counts cache read failed")
	} else if found {
		return cached, nil
	}

	counts, err := s.repo.GetTagCounts(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, tagCountsCacheKey, counts, postCacheTTL); err != nil {
		log.Warn().Err(err).Msg("Tag counts cache write failed")
	}

	return counts, nil
}

func (s *postService) Publish(ctx context.Context, req *model.PublishPostRequest) (*model.PublishPostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &model.Post{
		ID:          uuid.New(),
		Slug:        utils.GenerateSlug(req.Title),
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		BannerImage: req.BannerImage,
		Category:    req.Category,
		Tags:        req.Tags,
		ReadingTime: utils.EstimateReadingTime(req.Content),
		IsPublished: true,
		IsDraft:     false,
		PublishedAt: &now,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateListCaches(ctx)

	log.Info().
		Str("post_id", post.ID.String()).
		Str("slug", post.Slug).
		Msg("Post published")

	return &model.PublishPostResponse{ID: post.ID, Slug: post.Slug}, nil
}

func (s *postService) IncrementViews(ctx context.Context, slug string) (int, error) {
	views, err := s.repo.IncrementViews(ctx, slug)
	if err != nil {
		return 0, err
	}

	s.invalidatePostCache(ctx, slug)
	return views, nil
}

func (s *postService) IncrementResonates(ctx context.Context, slug string) (int, error) {
	resonates, err := s.repo.IncrementResonates(ctx, slug)
	if err != nil {
		return 0, err
	}

	s.invalidatePostCache(ctx, slug)
	return resonates, nil
}

// invalidatePostCache drops the cached copy after a counter bump so
// reads do not serve stale numbers for the whole TTL.
func (s *postService) invalidatePostCache(ctx context.Context, slug string) {
	if err := s.cache.Delete(ctx, postCacheKeyPrefix+slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Post cache invalidation failed")
	}
}

func (s *postService) invalidateListCaches(ctx context.Context) {
	if err := s.cache.Delete(ctx, postListCacheKey, tagCountsCacheKey); err != nil {
		log.Warn().Err(err).Msg("Post list cache invalidation failed")
	}
}
