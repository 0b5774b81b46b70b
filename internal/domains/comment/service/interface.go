package service

import (
	"context"

	"github.com/google/uuid"

	"voidspace-backend/internal/domains/comment/model"
)

type CommentService interface {
	// Submit validates and persists a new pending comment.
	Submit(ctx context.Context, req *model.SubmitCommentRequest, submitterIP string) (*model.SubmitCommentResponse, error)

	// ListApprovedByPostSlug is the public read path.
	ListApprovedByPostSlug(ctx context.Context, slug string) ([]model.PublicComment, error)

	// Admin operations. Authorization happens in middleware before these
	// are reached.
	ListPending(ctx context.Context) ([]model.PendingComment, error)
	ListAll(ctx context.Context) ([]model.AdminComment, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
