package media

import "context"

// Service handles post-image uploads from the authoring form.
type Service interface {
	// UploadImage validates, normalizes and stores the image, returning the
	// public URL to paste into a post's image field.
	UploadImage(ctx context.Context, data []byte) (string, error)
}
