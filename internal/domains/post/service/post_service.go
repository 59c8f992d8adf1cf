package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"musings-backend/internal/domains/post"
	"musings-backend/internal/shared/utils"
	"musings-backend/pkg/cache"
	"musings-backend/pkg/logger"
	"musings-backend/pkg/youtube"
)

const (
	featuredLimit = 2
	recentLimit   = 5

	cacheTTL          = 5 * time.Minute
	cacheKeyFeatured  = "posts:featured"
	cacheKeyRecent    = "posts:recent"
	cacheKeyDetailFmt = "posts:detail:%s"
	cacheKeyPattern   = "posts:*"
)

type postService struct {
	repo          post.Repository
	cache         cache.Cache
	defaultAuthor string
}

func NewPostService(repo post.Repository, c cache.Cache) post.Service {
	return &postService{
		repo:          repo,
		cache:         c,
		defaultAuthor: "Melissa",
	}
}

// ============================================
// READ PATHS
// ============================================

// ListAll fetches the full ordered collection and applies the in-memory
// category/search filter. The corpus is small; pushing the text filter into
// SQL is a scaling concern, not a correctness one.
func (s *postService) ListAll(ctx context.Context, category, searchTerm string) ([]post.PostDTO, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	filtered := post.Filter(items, category, searchTerm)
	return s.toDTOs(filtered), nil
}

func (s *postService) ListFeatured(ctx context.Context) ([]post.PostDTO, error) {
	var cached []post.PostDTO
	if found, err := s.cache.Get(ctx, cacheKeyFeatured, &cached); err == nil && found {
		return cached, nil
	}

	items, err := s.repo.GetFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, fmt.Errorf("list featured posts: %w", err)
	}

	dtos := s.toDTOs(items)
	if err := s.cache.Set(ctx, cacheKeyFeatured, dtos, cacheTTL); err != nil {
		logger.Warn("Failed to cache featured posts", map[string]interface{}{"error": err.Error()})
	}
	return dtos, nil
}

func (s *postService) ListRecent(ctx context.Context) ([]post.PostDTO, error) {
	var cached []post.PostDTO
	if found, err := s.cache.Get(ctx, cacheKeyRecent, &cached); err == nil && found {
		return cached, nil
	}

	items, err := s.repo.GetRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}

	dtos := s.toDTOs(items)
	if err := s.cache.Set(ctx, cacheKeyRecent, dtos, cacheTTL); err != nil {
		logger.Warn("Failed to cache recent posts", map[string]interface{}{"error": err.Error()})
	}
	return dtos, nil
}

func (s *postService) ListByCategory(ctx context.Context, category string) ([]post.PostDTO, error) {
	items, err := s.repo.GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	return s.toDTOs(items), nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.PostDTO, error) {
	cacheKey := fmt.Sprintf(cacheKeyDetailFmt, id)

	var cached post.PostDTO
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := s.toDTO(p)
	if err := s.cache.Set(ctx, cacheKey, dto, cacheTTL); err != nil {
		logger.Warn("Failed to cache post detail", map[string]interface{}{"error": err.Error()})
	}
	return &dto, nil
}

// ============================================
// WRITE PATHS
// ============================================

// Create normalizes the authoring form the way the admin UI always has:
// comma-separated tags are split, read time is derived from the word count,
// the author defaults, and the post is published immediately.
func (s *postService) Create(ctx context.Context, req post.CreatePostReq) (*post.PostDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author := req.Author
	if author == "" {
		author = s.defaultAuthor
	}

	now := time.Now()
	p := &post.Post{
		ID:               uuid.New(),
		Title:            req.Title,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		Author:           author,
		Category:         req.Category,
		Tags:             utils.SplitTags(req.Tags),
		Featured:         req.Featured,
		ReadTime:         utils.EstimateReadTime(req.Content),
		ImageURL:         optional(req.ImageURL),
		VideoURL:         optional(req.VideoURL),
		VideoTitle:       optional(req.VideoTitle),
		VideoDescription: optional(req.VideoDescription),
		PublishedAt:      &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	dto := s.toDTO(p)
	return &dto, nil
}

// Update applies a partial update. updated_at is always refreshed; read_time
// is intentionally left stale (the source never recomputed it on edit).
func (s *postService) Update(ctx context.Context, id uuid.UUID, req post.UpdatePostReq) (*post.PostDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Author != nil {
		p.Author = *req.Author
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Tags != nil {
		p.Tags = utils.SplitTags(*req.Tags)
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.ImageURL != nil {
		p.ImageURL = optional(*req.ImageURL)
	}
	if req.VideoURL != nil {
		p.VideoURL = optional(*req.VideoURL)
	}
	if req.VideoTitle != nil {
		p.VideoTitle = optional(*req.VideoTitle)
	}
	if req.VideoDescription != nil {
		p.VideoDescription = optional(*req.VideoDescription)
	}
	if req.PublishedAt != nil {
		p.PublishedAt = req.PublishedAt
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	dto := s.toDTO(p)
	return &dto, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// ============================================
// HELPERS
// ============================================

func (s *postService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, cacheKeyPattern); err != nil {
		logger.Warn("Failed to invalidate post cache", map[string]interface{}{"error": err.Error()})
	}
}

func (s *postService) toDTO(p *post.Post) post.PostDTO {
	dto := p.ToDTO()
	if p.VideoURL != nil {
		if id, ok := youtube.ExtractVideoID(*p.VideoURL); ok {
			embed := youtube.EmbedURL(id)
			dto.EmbedURL = &embed
		}
	}
	return dto
}

func (s *postService) toDTOs(items []post.Post) []post.PostDTO {
	dtos := make([]post.PostDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, s.toDTO(&items[i]))
	}
	return dtos
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
