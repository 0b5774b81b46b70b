package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/config"
	infraCache "voidspace-backend/internal/infrastructure/cache"
	"voidspace-backend/internal/infrastructure/database"
	"voidspace-backend/internal/infrastructure/email"
	"voidspace-backend/internal/infrastructure/queue"
	"voidspace-backend/pkg/cache"

	commentHandler "voidspace-backend/internal/domains/comment/handler"
	commentRepo "voidspace-backend/internal/domains/comment/repository"
	commentService "voidspace-backend/internal/domains/comment/service"
	newsletterHandler "voidspace-backend/internal/domains/newsletter/handler"
	newsletterRepo "voidspace-backend/internal/domains/newsletter/repository"
	newsletterService "voidspace-backend/internal/domains/newsletter/service"
	postHandler "voidspace-backend/internal/domains/post/handler"
	postRepo "voidspace-backend/internal/domains/post/repository"
	postService "voidspace-backend/internal/domains/post/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton, built once at startup in dependency order:
// config -> infrastructure -> repositories -> services -> handlers.
type Container struct {
	Config       *config.Config
	DB           *database.PostgresDB
	Cache        cache.Cache
	Queue        *queue.Client
	EmailService email.EmailService

	CommentRepo    commentRepo.CommentRepository
	PostRepo       postRepo.PostRepository
	NewsletterRepo newsletterRepo.NewsletterRepository

	CommentService    commentService.CommentService
	PostService       postService.PostService
	NewsletterService newsletterService.NewsletterService

	CommentHandler    *commentHandler.CommentHandler
	PostHandler       *postHandler.PostHandler
	NewsletterHandler *newsletterHandler.NewsletterHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// ----------------------------------------
	// Infrastructure
	// ----------------------------------------
	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(context.Background()); err != nil {
		// The cache is an accelerator, not a dependency; every read path
		// falls through to Postgres when Redis is down.
		log.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
	}

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.EmailService = email.NewSMTPEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.From,
	)

	// ----------------------------------------
	// Repositories
	// ----------------------------------------
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(db.Pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(db.Pool)
	c.NewsletterRepo = newsletterRepo.NewPostgresNewsletterRepository(db.Pool)

	// ----------------------------------------
	// Services
	// ----------------------------------------
	c.CommentService = commentService.NewCommentService(
		c.CommentRepo,
		c.Queue,
		c.Cache,
		cfg.RateLimit,
	)
	c.PostService = postService.NewPostService(c.PostRepo, c.Cache)
	c.NewsletterService = newsletterService.NewNewsletterService(
		c.NewsletterRepo,
		c.PostRepo,
		c.EmailService,
		c.Queue,
		cfg.App.Name,
		cfg.App.BaseURL,
	)

	// ----------------------------------------
	// Handlers
	// ----------------------------------------
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService)

	log.Info().Msg("Container initialized")
	return c, nil
}

// Cleanup releases held connections; called during graceful shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close queue client")
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close Redis client")
			}
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("Container cleanup completed")
}
