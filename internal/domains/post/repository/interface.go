package repository

import (
	"context"

	"voidspace-backend/internal/domains/post/model"
)

type PostRepository interface {
	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]model.Post, error)

	// GetBySlug returns one published post, model.ErrPostNotFound otherwise.
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)

	// ListByTag returns published posts carrying the tag, newest first.
	ListByTag(ctx context.Context, tag string) ([]model.Post, error)

	// GetTagCounts returns distinct tags with published-post counts.
	GetTagCounts(ctx context.Context) ([]model.TagCount, error)

	// Create inserts a new post row. model.ErrSlugTaken on slug collision.
	Create(ctx context.Context, post *model.Post) error

	// IncrementViews bumps the view counter atomically and returns the
	// new value. model.ErrPostNotFound for unknown slugs.
	IncrementViews(ctx context.Context, slug string) (int, error)

	// IncrementResonates bumps the resonate counter atomically and
	// returns the new value. model.ErrPostNotFound for unknown slugs.
	IncrementResonates(ctx context.Context, slug string) (int, error)
}
