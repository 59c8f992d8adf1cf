package service

import (
	"context"

	"musings-backend/internal/domains/contact"
	"musings-backend/internal/shared"
	"musings-backend/pkg/logger"
)

// Enqueuer is the slice of the queue client this service needs.
type Enqueuer interface {
	EnqueueContactMessage(payload shared.ContactMessagePayload) error
}

type contactService struct {
	queue Enqueuer
}

func NewContactService(q Enqueuer) contact.Service {
	return &contactService{queue: q}
}

// SendMessage queues the submission for SMTP delivery by the worker. The API
// never talks to the mail server directly.
func (s *contactService) SendMessage(ctx context.Context, req contact.SendMessageReq) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.queue.EnqueueContactMessage(shared.ContactMessagePayload{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		logger.Error("Failed to enqueue contact message", err)
		return contact.ErrDeliveryUnavailable
	}
	return nil
}
