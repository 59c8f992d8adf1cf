package video

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for videos. List methods return rows
// ordered by published_at descending (nulls last).
type Repository interface {
	GetAll(ctx context.Context) ([]Video, error)
	GetLatest(ctx context.Context, limit int) ([]Video, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Video, error)
	Create(ctx context.Context, v *Video) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used by the nightly thumbnail backfill job.
	GetMissingThumbnails(ctx context.Context) ([]Video, error)
	UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error
}
