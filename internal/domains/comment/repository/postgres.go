package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"voidspace-backend/internal/domains/comment/model"
)

// SQLSTATEs raised by the comment database functions (see migrations).
const (
	sqlstatePostNotFound = "VS404"
	sqlstateRateLimited  = "VS429"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

// Submit delegates to the submit_comment function, which resolves the slug,
// enforces the rate limit and inserts the pending row in one transaction.
// Two concurrent submissions from a limited origin cannot both pass: the
// function locks the origin's counter row before checking.
func (r *postgresCommentRepository) Submit(ctx context.Context, p SubmitParams) (uuid.UUID, error) {
	query := `SELECT submit_comment($1, $2, $3, $4, $5, $6, $7)`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		p.PostSlug,
		p.GuestName,
		p.GuestEmail,
		p.Content,
		p.SubmitterIP,
		p.RateLimitMax,
		p.RateLimitWindowMinutes,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case sqlstatePostNotFound:
				return uuid.Nil, model.ErrPostNotFound
			case sqlstateRateLimited:
				return uuid.Nil, model.ErrRateLimited
			}
		}
		return uuid.Nil, fmt.Errorf("submit comment: %w", err)
	}

	return id, nil
}

func (r *postgresCommentRepository) ListPending(ctx context.Context) ([]model.PendingComment, error) {
	query := `SELECT * FROM get_pending_comments()`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending comments: %w", err)
	}
	defer rows.Close()

	var comments []model.PendingComment
	for rows.Next() {
		var c model.PendingComment
		err := rows.Scan(
			&c.ID,
			&c.GuestName,
			&c.GuestEmail,
			&c.Content,
			&c.SubmitterIP,
			&c.CreatedAt,
			&c.PostTitle,
			&c.PostSlug,
		)
		if err != nil {
			return nil, fmt.Errorf("scan pending comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending comments: %w", err)
	}

	return comments, nil
}

func (r *postgresCommentRepository) ListAll(ctx context.Context) ([]model.AdminComment, error) {
	query := `SELECT * FROM get_all_comments()`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all comments: %w", err)
	}
	defer rows.Close()

	var comments []model.AdminComment
	for rows.Next() {
		var c model.AdminComment
		err := rows.Scan(
			&c.ID,
			&c.GuestName,
			&c.GuestEmail,
			&c.Content,
			&c.SubmitterIP,
			&c.IsApproved,
			&c.IsRejected,
			&c.CreatedAt,
			&c.ModeratedAt,
			&c.PostTitle,
			&c.PostSlug,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list all comments: %w", err)
	}

	return comments, nil
}

func (r *postgresCommentRepository) ListApprovedByPostSlug(ctx context.Context, slug string) ([]model.PublicComment, error) {
	query := `SELECT * FROM get_approved_comments_by_post_slug($1)`

	rows, err := r.pool.Query(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("list approved comments: %w", err)
	}
	defer rows.Close()

	var comments []model.PublicComment
	for rows.Next() {
		var c model.PublicComment
		if err := rows.Scan(&c.ID, &c.GuestName, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan approved comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list approved comments: %w", err)
	}

	return comments, nil
}

// Approve delegates to approve_comment, which locks the row, verifies it is
// still pending and flips the flag in one statement. Concurrent approvals of
// the same id therefore produce exactly one success.
func (r *postgresCommentRepository) Approve(ctx context.Context, id uuid.UUID) (*model.ApprovalResult, error) {
	query := `SELECT * FROM approve_comment($1)`

	var found bool
	res := &model.ApprovalResult{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&found,
		&res.GuestName,
		&res.GuestEmail,
		&res.Content,
		&res.PostTitle,
		&res.PostSlug,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("approve comment: %w", err)
	}

	if !found {
		return nil, model.ErrCommentNotFound
	}

	return res, nil
}

func (r *postgresCommentRepository) Reject(ctx context.Context, id uuid.UUID) error {
	query := `SELECT reject_comment($1)`

	var ok bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return fmt.Errorf("reject comment: %w", err)
	}

	if !ok {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `SELECT delete_comment($1)`

	var ok bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if !ok {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *postgresCommentRepository) ResetExpiredRateLimitWindows(ctx context.Context) (int, error) {
	query := `
		UPDATE comment_rate_limits
		SET current_count = 0, window_start = NOW()
		WHERE window_start + (window_minutes || ' minutes')::INTERVAL < NOW()
		AND current_count > 0
	`

	result, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("reset expired windows: %w", err)
	}

	return int(result.RowsAffected()), nil
}
