package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePostReq is the admin authoring payload. Tags arrive as the raw
// comma-separated form value; the service normalizes them.
type CreatePostReq struct {
	Title    string `json:"title" binding:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author"`
	Category string `json:"category" binding:"required"`
	Tags     string `json:"tags"`
	Featured bool   `json:"featured"`

	ImageURL         string `json:"image_url"`
	VideoURL         string `json:"video_url"`
	VideoTitle       string `json:"video_title"`
	VideoDescription string `json:"video_description"`
}

func (r CreatePostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Excerpt, validation.Length(0, 1000)),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
	)
}

// UpdatePostReq is a partial update: only non-nil fields are applied.
// updated_at is always refreshed; read_time is never touched.
type UpdatePostReq struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	Category *string `json:"category"`
	Tags     *string `json:"tags"`
	Featured *bool   `json:"featured"`

	ImageURL         *string `json:"image_url"`
	VideoURL         *string `json:"video_url"`
	VideoTitle       *string `json:"video_title"`
	VideoDescription *string `json:"video_description"`

	PublishedAt *time.Time `json:"published_at"`
}

func (r UpdatePostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.Category, validation.NilOrNotEmpty),
	)
}

// PostDTO is the JSON shape the frontends consume.
type PostDTO struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
	ReadTime int      `json:"read_time"`

	ImageURL         *string `json:"image_url,omitempty"`
	VideoURL         *string `json:"video_url,omitempty"`
	VideoTitle       *string `json:"video_title,omitempty"`
	VideoDescription *string `json:"video_description,omitempty"`

	// EmbedURL is derived from VideoURL when it carries a recognizable
	// YouTube id; absent otherwise.
	EmbedURL *string `json:"embed_url,omitempty"`

	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToDTO converts the entity without the derived embed URL; the service fills
// that in where it applies.
func (p *Post) ToDTO() PostDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostDTO{
		ID:               p.ID.String(),
		Title:            p.Title,
		Excerpt:          p.Excerpt,
		Content:          p.Content,
		Author:           p.Author,
		Category:         p.Category,
		Tags:             tags,
		Featured:         p.Featured,
		ReadTime:         p.ReadTime,
		ImageURL:         p.ImageURL,
		VideoURL:         p.VideoURL,
		VideoTitle:       p.VideoTitle,
		VideoDescription: p.VideoDescription,
		PublishedAt:      p.PublishedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
