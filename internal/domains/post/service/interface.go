package service

import (
	"context"

	"voidspace-backend/internal/domains/post/model"
)

type PostService interface {
	ListPublished(ctx context.Context) ([]model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	ListByTag(ctx context.Context, tag string) ([]model.Post, error)
	GetTagCounts(ctx context.Context) ([]model.TagCount, error)
	Publish(ctx context.Context, req *model.PublishPostRequest) (*model.PublishPostResponse, error)
	IncrementViews(ctx context.Context, slug string) (int, error)
	IncrementResonates(ctx context.Context, slug string) (int, error)
}
