package repository

import (
	"context"

	"github.com/google/uuid"

	"voidspace-backend/internal/domains/comment/model"
)

// SubmitParams is everything the atomic submit operation needs. The rate
// limit policy travels with the call so the database function can enforce
// check-and-insert in one statement.
type SubmitParams struct {
	PostSlug    string
	GuestName   string
	GuestEmail  *string
	Content     string
	SubmitterIP *string

	RateLimitMax           int
	RateLimitWindowMinutes int
}

// CommentRepository is the comment store. Every mutation is a single atomic
// database call; no caller ever holds state across two of them.
type CommentRepository interface {
	// Submit inserts a new pending comment.
	// Returns model.ErrPostNotFound if the slug does not resolve and
	// model.ErrRateLimited if the origin exceeded the submission policy.
	Submit(ctx context.Context, params SubmitParams) (uuid.UUID, error)

	// ListPending returns all pending comments for the moderation queue.
	ListPending(ctx context.Context) ([]model.PendingComment, error)

	// ListAll returns every comment regardless of state.
	ListAll(ctx context.Context) ([]model.AdminComment, error)

	// ListApprovedByPostSlug returns approved comments for one post,
	// oldest first, stripped of submitter data.
	ListApprovedByPostSlug(ctx context.Context, slug string) ([]model.PublicComment, error)

	// Approve transitions a pending comment to approved and returns the
	// data needed for the commenter notification. Returns
	// model.ErrCommentNotFound if the id is unknown or not pending.
	Approve(ctx context.Context, id uuid.UUID) (*model.ApprovalResult, error)

	// Reject transitions a pending comment to rejected. Same not-found
	// semantics as Approve.
	Reject(ctx context.Context, id uuid.UUID) error

	// Delete removes a comment permanently, from any state. Returns
	// model.ErrCommentNotFound only if the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ResetExpiredRateLimitWindows zeroes counters whose window has
	// passed. Maintenance only; returns the number of rows reset.
	ResetExpiredRateLimitWindows(ctx context.Context) (int, error)
}
