package shared

// Asynq task types and queue names shared by the API (producer) and the
// worker (consumer).
const (
	TypeSendContactMessage      = "contact:send_message"
	TypeBackfillVideoThumbnails = "video:backfill_thumbnails"

	QueueDefault = "default"
	QueueMail    = "mail"
)

// ContactMessagePayload is the task payload for a contact-form submission.
type ContactMessagePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
