package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"musings-backend/internal/domains/contact"
	"musings-backend/internal/shared/response"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// SendMessage - POST /v1/contact
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req contact.SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid contact payload", err)
		return
	}

	if err := h.service.SendMessage(c.Request.Context(), req); err != nil {
		if errors.Is(err, contact.ErrDeliveryUnavailable) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to send message")
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"sent": true})
}
