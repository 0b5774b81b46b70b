package repository

import (
	"context"

	"voidspace-backend/internal/domains/newsletter/model"
)

type NewsletterRepository interface {
	// GetByEmail returns the subscriber row regardless of active state.
	// model.ErrSubscriberNotFound when the email was never subscribed.
	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)

	// Create inserts a fresh active subscription.
	Create(ctx context.Context, email string) error

	// Reactivate flips an unsubscribed row back to active with a new
	// subscription timestamp.
	Reactivate(ctx context.Context, email string) error

	// Unsubscribe deactivates an active subscription. Returns false when
	// no active row matched.
	Unsubscribe(ctx context.Context, email string) (bool, error)

	// ListActive returns every active subscriber.
	ListActive(ctx context.Context) ([]model.Subscriber, error)

	// Stats returns subscriber base totals.
	Stats(ctx context.Context) (*model.Stats, error)
}
