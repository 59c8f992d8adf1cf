package video

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for videos.
type Service interface {
	ListAll(ctx context.Context, category, searchTerm string) ([]VideoDTO, error)
	ListLatest(ctx context.Context) ([]VideoDTO, error)
	Create(ctx context.Context, req CreateVideoReq) (*VideoDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// BackfillThumbnails derives missing thumbnail URLs; returns how many
	// rows were fixed.
	BackfillThumbnails(ctx context.Context) (int, error)
}
