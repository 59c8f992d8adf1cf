package video

import "errors"

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrInvalidVideoURL = errors.New("url is not a recognizable youtube video")
)
