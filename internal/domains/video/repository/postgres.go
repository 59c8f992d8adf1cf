package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"musings-backend/internal/domains/video"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) video.Repository {
	return &postgresRepository{pool: pool}
}

const videoColumns = `
	id, title, description, youtube_url, thumbnail_url, category, tags,
	published_at, created_at`

func scanVideo(row pgx.Row) (*video.Video, error) {
	var v video.Video
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.YouTubeURL, &v.ThumbnailURL,
		&v.Category, pq.Array(&v.Tags), &v.PublishedAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *postgresRepository) queryVideos(ctx context.Context, query string, args ...interface{}) ([]video.Video, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}
	defer rows.Close()

	videos := make([]video.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return videos, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]video.Video, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM videos
		ORDER BY published_at DESC NULLS LAST`, videoColumns)
	return r.queryVideos(ctx, query)
}

func (r *postgresRepository) GetLatest(ctx context.Context, limit int) ([]video.Video, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM videos
		ORDER BY published_at DESC NULLS LAST
		LIMIT $1`, videoColumns)
	return r.queryVideos(ctx, query, limit)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	query := fmt.Sprintf(`SELECT %s FROM videos WHERE id = $1`, videoColumns)

	v, err := scanVideo(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, video.ErrVideoNotFound
		}
		return nil, fmt.Errorf("get video: %w", err)
	}
	return v, nil
}

func (r *postgresRepository) Create(ctx context.Context, v *video.Video) error {
	const query = `
		INSERT INTO videos (
			id, title, description, youtube_url, thumbnail_url, category, tags,
			published_at, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Title, v.Description, v.YouTubeURL, v.ThumbnailURL,
		v.Category, pq.Array(v.Tags), v.PublishedAt, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return video.ErrVideoNotFound
	}
	return nil
}

func (r *postgresRepository) GetMissingThumbnails(ctx context.Context) ([]video.Video, error) {
	query := fmt.Sprintf(`SELECT %s FROM videos WHERE thumbnail_url = ''`, videoColumns)
	return r.queryVideos(ctx, query)
}

func (r *postgresRepository) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE videos SET thumbnail_url = $2 WHERE id = $1`, id, thumbnailURL)
	if err != nil {
		return fmt.Errorf("update thumbnail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return video.ErrVideoNotFound
	}
	return nil
}
