// Package youtube extracts video identifiers from the handful of YouTube URL
// shapes the site accepts, and builds thumbnail/embed URLs from them.
//
// This is deliberately not a general URL parser: a URL that does not match one
// of the known shapes yields no id, even if it is a well-formed video link.
package youtube

import "regexp"

// Video ids are always exactly 11 characters.
const idLength = 11

// Accepted shapes: youtu.be/<id>, /v/<id>, /u/<w>/<id>, /embed/<id>,
// watch?v=<id>, and a trailing &v=<id>.
var idPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// ThumbnailQuality selects which still YouTube serves for a video.
type ThumbnailQuality string

const (
	ThumbnailHQ     ThumbnailQuality = "hqdefault"
	ThumbnailMaxRes ThumbnailQuality = "maxresdefault"
)

// ExtractVideoID returns the 11-character video id embedded in url.
// ok is false when the URL does not match any accepted shape, or when the
// candidate token has the wrong length.
func ExtractVideoID(url string) (id string, ok bool) {
	match := idPattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	if len(match[2]) != idLength {
		return "", false
	}
	return match[2], true
}

// ThumbnailURL builds the img.youtube.com still URL for a video id.
func ThumbnailURL(id string, quality ThumbnailQuality) string {
	return "https://img.youtube.com/vi/" + id + "/" + string(quality) + ".jpg"
}

// EmbedURL builds the iframe-playable URL for a video id.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
