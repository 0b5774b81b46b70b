package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"voidspace-backend/internal/domains/post/model"
)

const postColumns = `
	id, slug, title, excerpt, content, banner_image, category, tags,
	reading_time, is_published, is_draft, views, resonates,
	created_at, updated_at, published_at
`

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	var tags []string

	err := row.Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.BannerImage,
		&post.Category,
		pq.Array(&tags),
		&post.ReadingTime,
		&post.IsPublished,
		&post.IsDraft,
		&post.Views,
		&post.Resonates,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.PublishedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Tags = tags
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post, nil
}

func (r *postgresPostRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]model.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}

	return posts, rows.Err()
}

func (r *postgresPostRepository) ListPublished(ctx context.Context) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM blog_posts
		WHERE is_published = true
		ORDER BY published_at DESC
	`

	posts, err := r.queryPosts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return posts, nil
}

func (r *postgresPostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM blog_posts
		WHERE slug = $1 AND is_published = true
	`

	post, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post by slug: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepository) ListByTag(ctx context.Context, tag string) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM blog_posts
		WHERE is_published = true AND $1 = ANY(tags)
		ORDER BY published_at DESC
	`

	posts, err := r.queryPosts(ctx, query, tag)
	if err != nil {
		return nil, fmt.Errorf("list posts by tag: %w", err)
	}
	return posts, nil
}

func (r *postgresPostRepository) GetTagCounts(ctx context.Context) ([]model.TagCount, error) {
	query := `SELECT * FROM get_unique_tags_with_counts()`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get tag counts: %w", err)
	}
	defer rows.Close()

	var counts []model.TagCount
	for rows.Next() {
		var tc model.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan tag count: %w", err)
		}
		counts = append(counts, tc)
	}

	return counts, rows.Err()
}

func (r *postgresPostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO blog_posts (
			id, slug, title, excerpt, content, banner_image, category, tags,
			reading_time, is_published, is_draft, published_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		post.ID,
		post.Slug,
		post.Title,
		post.Excerpt,
		post.Content,
		post.BannerImage,
		post.Category,
		pq.Array(post.Tags),
		post.ReadingTime,
		post.IsPublished,
		post.IsDraft,
		post.PublishedAt,
	).Scan(&post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *postgresPostRepository) IncrementViews(ctx context.Context, slug string) (int, error) {
	query := `SELECT increment_post_views($1)`

	var views *int
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&views); err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}
	if views == nil {
		return 0, model.ErrPostNotFound
	}

	return *views, nil
}

func (r *postgresPostRepository) IncrementResonates(ctx context.Context, slug string) (int, error) {
	query := `SELECT increment_post_resonates($1)`

	var resonates *int
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&resonates); err != nil {
		return 0, fmt.Errorf("increment resonates: %w", err)
	}
	if resonates == nil {
		return 0, model.ErrPostNotFound
	}

	return *resonates, nil
}
