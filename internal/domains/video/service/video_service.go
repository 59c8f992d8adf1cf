package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"musings-backend/internal/domains/video"
	"musings-backend/internal/shared/utils"
	"musings-backend/pkg/cache"
	"musings-backend/pkg/logger"
	"musings-backend/pkg/youtube"
)

const (
	latestLimit = 3

	cacheTTL       = 5 * time.Minute
	cacheKeyLatest = "videos:latest"
	cacheKeyPrefix = "videos:*"
)

type videoService struct {
	repo             video.Repository
	cache            cache.Cache
	thumbnailQuality youtube.ThumbnailQuality
}

func NewVideoService(repo video.Repository, c cache.Cache, quality youtube.ThumbnailQuality) video.Service {
	return &videoService{
		repo:             repo,
		cache:            c,
		thumbnailQuality: quality,
	}
}

// ============================================
// READ PATHS
// ============================================

// ListAll returns the full ordered collection filtered in memory, matching
// the post listing behavior.
func (s *videoService) ListAll(ctx context.Context, category, searchTerm string) ([]video.VideoDTO, error) {
	items, err := s.getAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := video.Filter(items, category, searchTerm)
	return toDTOs(filtered), nil
}

func (s *videoService) ListLatest(ctx context.Context) ([]video.VideoDTO, error) {
	var cached []video.VideoDTO
	if found, err := s.cache.Get(ctx, cacheKeyLatest, &cached); err == nil && found {
		return cached, nil
	}

	items, err := s.repo.GetLatest(ctx, latestLimit)
	if err != nil {
		return nil, fmt.Errorf("list latest videos: %w", err)
	}

	dtos := toDTOs(items)
	if err := s.cache.Set(ctx, cacheKeyLatest, dtos, cacheTTL); err != nil {
		logger.Warn("Failed to cache latest videos", map[string]interface{}{"error": err.Error()})
	}
	return dtos, nil
}

func (s *videoService) getAll(ctx context.Context) ([]video.Video, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return items, nil
}

// ============================================
// WRITE PATHS
// ============================================

// Create normalizes the admin form: tags are comma-split, the publish time
// is set on save, and a missing thumbnail is derived from the YouTube URL.
// A URL that carries no recognizable video id and no explicit thumbnail is
// rejected.
func (s *videoService) Create(ctx context.Context, req video.CreateVideoReq) (*video.VideoDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	thumbnail := req.ThumbnailURL
	if thumbnail == "" {
		id, ok := youtube.ExtractVideoID(req.YouTubeURL)
		if !ok {
			return nil, video.ErrInvalidVideoURL
		}
		thumbnail = youtube.ThumbnailURL(id, s.thumbnailQuality)
	}

	now := time.Now()
	v := &video.Video{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		YouTubeURL:   req.YouTubeURL,
		ThumbnailURL: thumbnail,
		Category:     req.Category,
		Tags:         utils.SplitTags(req.Tags),
		PublishedAt:  &now,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	dto := toDTO(v)
	return &dto, nil
}

func (s *videoService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// BackfillThumbnails fills in thumbnail URLs for rows saved without one.
// Rows whose stored URL yields no video id are skipped, not failed; the job
// reports how many rows it fixed.
func (s *videoService) BackfillThumbnails(ctx context.Context) (int, error) {
	items, err := s.repo.GetMissingThumbnails(ctx)
	if err != nil {
		return 0, fmt.Errorf("list videos missing thumbnails: %w", err)
	}

	fixed := 0
	for i := range items {
		id, ok := youtube.ExtractVideoID(items[i].YouTubeURL)
		if !ok {
			logger.Warn("Skipping video with unrecognizable URL", map[string]interface{}{
				"video_id": items[i].ID.String(),
			})
			continue
		}

		url := youtube.ThumbnailURL(id, s.thumbnailQuality)
		if err := s.repo.UpdateThumbnail(ctx, items[i].ID, url); err != nil {
			return fixed, fmt.Errorf("backfill thumbnail for %s: %w", items[i].ID, err)
		}
		fixed++
	}

	if fixed > 0 {
		s.invalidateCache(ctx)
	}
	return fixed, nil
}

// ============================================
// HELPERS
// ============================================

func (s *videoService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, cacheKeyPrefix); err != nil {
		logger.Warn("Failed to invalidate video cache", map[string]interface{}{"error": err.Error()})
	}
}

func toDTO(v *video.Video) video.VideoDTO {
	dto := v.ToDTO()
	if id, ok := youtube.ExtractVideoID(v.YouTubeURL); ok {
		embed := youtube.EmbedURL(id)
		dto.EmbedURL = &embed
	}
	return dto
}

func toDTOs(items []video.Video) []video.VideoDTO {
	dtos := make([]video.VideoDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toDTO(&items[i]))
	}
	return dtos
}
