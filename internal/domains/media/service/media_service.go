package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"musings-backend/internal/domains/media"
	"musings-backend/internal/infrastructure/storage"
	"musings-backend/pkg/logger"
)

type mediaService struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

func NewMediaService(s *storage.MinIOStorage, p *storage.ImageProcessor) media.Service {
	return &mediaService{storage: s, processor: p}
}

// UploadImage accepts a JPEG/PNG, re-encodes it to a bounded-width JPEG and
// stores it under a fresh key so uploads never collide.
func (s *mediaService) UploadImage(ctx context.Context, data []byte) (string, error) {
	if err := s.processor.ValidateImage(data); err != nil {
		return "", fmt.Errorf("%w: %v", media.ErrInvalidImage, err)
	}

	normalized, err := s.processor.Normalize(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", media.ErrInvalidImage, err)
	}

	key := fmt.Sprintf("images/%s.jpg", uuid.New())
	url, err := s.storage.Upload(ctx, key, normalized, "image/jpeg")
	if err != nil {
		logger.Error("Failed to store image", err)
		return "", fmt.Errorf("store image: %w", err)
	}
	return url, nil
}
