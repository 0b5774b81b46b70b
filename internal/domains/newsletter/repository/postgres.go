package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"voidspace-backend/internal/domains/newsletter/model"
)

type postgresNewsletterRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresNewsletterRepository(pool *pgxpool.Pool) NewsletterRepository {
	return &postgresNewsletterRepository{pool: pool}
}

func (r *postgresNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	query := `
		SELECT email, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers
		WHERE email = $1
	`

	sub := &model.Subscriber{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&sub.Email,
		&sub.IsActive,
		&sub.SubscribedAt,
		&sub.UnsubscribedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("get subscriber: %w", err)
	}

	return sub, nil
}

func (r *postgresNewsletterRepository) Create(ctx context.Context, email string) error {
	query := `
		INSERT INTO newsletter_subscribers (email, is_active, subscribed_at)
		VALUES ($1, true, NOW())
	`

	if _, err := r.pool.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

func (r *postgresNewsletterRepository) Reactivate(ctx context.Context, email string) error {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = true, subscribed_at = NOW(), unsubscribed_at = NULL
		WHERE email = $1
	`

	if _, err := r.pool.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("reactivate subscriber: %w", err)
	}
	return nil
}

func (r *postgresNewsletterRepository) Unsubscribe(ctx context.Context, email string) (bool, error) {
	query := `SELECT unsubscribe_newsletter($1)`

	var found bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&found); err != nil {
		return false, fmt.Errorf("unsubscribe: %w", err)
	}

	return found, nil
}

func (r *postgresNewsletterRepository) ListActive(ctx context.Context) ([]model.Subscriber, error) {
	query := `
		SELECT email, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers
		WHERE is_active = true
		ORDER BY subscribed_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active subscribers: %w", err)
	}
	defer rows.Close()

	var subs []model.Subscriber
	for rows.Next() {
		var sub model.Subscriber
		err := rows.Scan(&sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func (r *postgresNewsletterRepository) Stats(ctx context.Context) (*model.Stats, error) {
	query := `SELECT * FROM get_newsletter_stats()`

	stats := &model.Stats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalSubscribers,
		&stats.ActiveSubscribers,
		&stats.Unsubscribed,
	)
	if err != nil {
		return nil, fmt.Errorf("newsletter stats: %w", err)
	}

	return stats, nil
}
