package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"musings-backend/internal/infrastructure/email"
	"musings-backend/internal/shared"
	"musings-backend/pkg/logger"
)

type SendMessageHandler struct {
	email   email.EmailService
	ownerTo string
}

// NewSendMessageHandler delivers queued contact-form submissions to the site
// owner's inbox.
func NewSendMessageHandler(svc email.EmailService, ownerTo string) *SendMessageHandler {
	return &SendMessageHandler{email: svc, ownerTo: ownerTo}
}

func (h *SendMessageHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.ContactMessagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal contact payload: %v: %w", err, asynq.SkipRetry)
	}

	err := h.email.SendContactMessage(ctx, h.ownerTo, email.ContactMessageData{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	})
	if err != nil {
		return err
	}

	logger.Info("Contact message delivered", map[string]interface{}{"from": payload.Email})
	return nil
}
