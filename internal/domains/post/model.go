package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published or draft blog entry. Documents are created through the
// admin authoring flow and read by every public surface.
type Post struct {
	ID      uuid.UUID
	Title   string
	Excerpt string
	Content string // markdown
	Author  string

	// Category is a slug from the static registry. Any string is accepted;
	// unknown slugs only affect how the label is displayed.
	Category string

	// Tags keep insertion order for display and are not deduplicated.
	Tags []string

	Featured bool

	// ReadTime is derived once at creation (ceil(words/200), min 1) and is
	// deliberately never recomputed on edit.
	ReadTime int

	ImageURL         *string
	VideoURL         *string
	VideoTitle       *string
	VideoDescription *string

	// PublishedAt is the sort key for every list view (descending).
	// nil means unpublished.
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublished reports whether the post has a publish timestamp.
func (p *Post) IsPublished() bool {
	return p.PublishedAt != nil
}
