package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musings-backend/internal/domains/contact"
	"musings-backend/internal/shared"
)

type fakeEnqueuer struct {
	payloads []shared.ContactMessagePayload
	err      error
}

func (f *fakeEnqueuer) EnqueueContactMessage(payload shared.ContactMessagePayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func TestSendMessageEnqueues(t *testing.T) {
	q := &fakeEnqueuer{}
	svc := NewContactService(q)

	err := svc.SendMessage(context.Background(), contact.SendMessageReq{
		Name:    "A Reader",
		Email:   "reader@example.com",
		Message: "Loved the last post.",
	})
	require.NoError(t, err)

	require.Len(t, q.payloads, 1)
	assert.Equal(t, "reader@example.com", q.payloads[0].Email)
}

func TestSendMessageValidation(t *testing.T) {
	q := &fakeEnqueuer{}
	svc := NewContactService(q)

	err := svc.SendMessage(context.Background(), contact.SendMessageReq{
		Name:    "A Reader",
		Email:   "not-an-email",
		Message: "hi",
	})
	assert.Error(t, err)
	assert.Empty(t, q.payloads, "invalid submissions never reach the queue")
}

func TestSendMessageQueueDown(t *testing.T) {
	q := &fakeEnqueuer{err: errors.New("redis: connection refused")}
	svc := NewContactService(q)

	err := svc.SendMessage(context.Background(), contact.SendMessageReq{
		Name:    "A Reader",
		Email:   "reader@example.com",
		Message: "hello",
	})
	assert.ErrorIs(t, err, contact.ErrDeliveryUnavailable)
}
