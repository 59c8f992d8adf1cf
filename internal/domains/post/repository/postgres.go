package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"musings-backend/internal/domains/post"
)

// Raw SQL with pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

const postColumns = `
	id, title, excerpt, content, author, category, tags, featured, read_time,
	image_url, video_url, video_title, video_description,
	published_at, created_at, updated_at`

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Author, &p.Category,
		pq.Array(&p.Tags), &p.Featured, &p.ReadTime,
		&p.ImageURL, &p.VideoURL, &p.VideoTitle, &p.VideoDescription,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return posts, nil
}

// Unpublished rows sort after published ones; their relative order is
// whatever the database returns.
func (r *postgresRepository) GetAll(ctx context.Context) ([]post.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM posts
		ORDER BY published_at DESC NULLS LAST`, postColumns)
	return r.queryPosts(ctx, query)
}

func (r *postgresRepository) GetFeatured(ctx context.Context, limit int) ([]post.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM posts
		WHERE featured = true
		ORDER BY published_at DESC NULLS LAST
		LIMIT $1`, postColumns)
	return r.queryPosts(ctx, query, limit)
}

func (r *postgresRepository) GetRecent(ctx context.Context, limit int) ([]post.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM posts
		ORDER BY published_at DESC NULLS LAST
		LIMIT $1`, postColumns)
	return r.queryPosts(ctx, query, limit)
}

func (r *postgresRepository) GetByCategory(ctx context.Context, category string) ([]post.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM posts
		WHERE category = $1
		ORDER BY published_at DESC NULLS LAST`, postColumns)
	return r.queryPosts(ctx, query, category)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	const query = `
		INSERT INTO posts (
			id, title, excerpt, content, author, category, tags, featured,
			read_time, image_url, video_url, video_title, video_description,
			published_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Excerpt, p.Content, p.Author, p.Category,
		pq.Array(p.Tags), p.Featured, p.ReadTime,
		p.ImageURL, p.VideoURL, p.VideoTitle, p.VideoDescription,
		p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	const query = `
		UPDATE posts SET
			title = $2, excerpt = $3, content = $4, author = $5, category = $6,
			tags = $7, featured = $8,
			image_url = $9, video_url = $10, video_title = $11, video_description = $12,
			published_at = $13, updated_at = $14
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Excerpt, p.Content, p.Author, p.Category,
		pq.Array(p.Tags), p.Featured,
		p.ImageURL, p.VideoURL, p.VideoTitle, p.VideoDescription,
		p.PublishedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}
