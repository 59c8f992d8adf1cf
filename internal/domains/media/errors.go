package media

import "errors"

var ErrInvalidImage = errors.New("invalid image upload")
