package post

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for posts.
type Service interface {
	ListAll(ctx context.Context, category, searchTerm string) ([]PostDTO, error)
	ListFeatured(ctx context.Context) ([]PostDTO, error)
	ListRecent(ctx context.Context) ([]PostDTO, error)
	ListByCategory(ctx context.Context, category string) ([]PostDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PostDTO, error)

	Create(ctx context.Context, req CreatePostReq) (*PostDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePostReq) (*PostDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
