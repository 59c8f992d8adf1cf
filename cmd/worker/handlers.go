package main

import (
	"github.com/hibiken/asynq"

	contactJob "musings-backend/internal/domains/contact/job"
	videoJob "musings-backend/internal/domains/video/job"
	"musings-backend/internal/infrastructure/email"
	"musings-backend/internal/shared"
	"musings-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	sendContactMessage *contactJob.SendMessageHandler
	backfillThumbnails *videoJob.BackfillThumbnailsHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	emailSvc := email.NewSMTPEmailService(c.Config.SMTP)

	return &HandlerRegistry{
		sendContactMessage: contactJob.NewSendMessageHandler(emailSvc, c.Config.Contact.RecipientEmail),
		backfillThumbnails: videoJob.NewBackfillThumbnailsHandler(c.VideoService),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeSendContactMessage, h.sendContactMessage)
	mux.Handle(shared.TypeBackfillVideoThumbnails, h.backfillThumbnails)
}
