package video

import (
	"time"

	"github.com/google/uuid"
)

// Video is a YouTube entry curated through the admin area.
type Video struct {
	ID          uuid.UUID
	Title       string
	Description string
	YouTubeURL  string

	// ThumbnailURL is derived from the extracted video id when the form
	// does not supply one.
	ThumbnailURL string

	Category string
	Tags     []string

	PublishedAt *time.Time
	CreatedAt   time.Time
}
