package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for posts. Every list method returns
// rows ordered by published_at descending (nulls last).
type Repository interface {
	GetAll(ctx context.Context) ([]Post, error)
	GetFeatured(ctx context.Context, limit int) ([]Post, error)
	GetRecent(ctx context.Context, limit int) ([]Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetByCategory(ctx context.Context, category string) ([]Post, error)

	Create(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}
