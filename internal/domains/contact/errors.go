package contact

import "errors"

// ErrDeliveryUnavailable means the message could not be queued. The form
// keeps the visitor's input so they can retry.
var ErrDeliveryUnavailable = errors.New("message delivery is temporarily unavailable")
