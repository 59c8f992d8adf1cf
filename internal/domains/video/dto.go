package video

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateVideoReq is the admin form payload. ThumbnailURL is optional; when
// absent it is derived from the YouTube URL.
type CreateVideoReq struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	YouTubeURL   string `json:"youtube_url" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category" binding:"required"`
	Tags         string `json:"tags"`
}

func (r CreateVideoReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.YouTubeURL,
			validation.Required.Error("youtube_url is required"),
			is.URL.Error("youtube_url must be a valid URL"),
		),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
	)
}

// VideoDTO is the JSON shape the frontends consume.
type VideoDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	YouTubeURL   string   `json:"youtube_url"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`

	// EmbedURL is present when the stored URL carries a recognizable id.
	EmbedURL *string `json:"embed_url,omitempty"`

	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (v *Video) ToDTO() VideoDTO {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return VideoDTO{
		ID:           v.ID.String(),
		Title:        v.Title,
		Description:  v.Description,
		YouTubeURL:   v.YouTubeURL,
		ThumbnailURL: v.ThumbnailURL,
		Category:     v.Category,
		Tags:         tags,
		PublishedAt:  v.PublishedAt,
		CreatedAt:    v.CreatedAt,
	}
}
