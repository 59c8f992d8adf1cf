package job

import (
	"context"

	"github.com/hibiken/asynq"

	"musings-backend/internal/domains/video"
	"musings-backend/pkg/logger"
)

type BackfillThumbnailsHandler struct {
	service video.Service
}

func NewBackfillThumbnailsHandler(service video.Service) *BackfillThumbnailsHandler {
	return &BackfillThumbnailsHandler{service: service}
}

// ProcessTask derives thumbnail URLs for videos saved without one. Scheduled
// nightly; safe to run repeatedly.
func (h *BackfillThumbnailsHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	fixed, err := h.service.BackfillThumbnails(ctx)
	if err != nil {
		logger.Error("Thumbnail backfill failed", err)
		return err
	}

	logger.Info("Thumbnail backfill completed", map[string]interface{}{"fixed": fixed})
	return nil
}
