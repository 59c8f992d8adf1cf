package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"musings-backend/internal/domains/media"
	"musings-backend/internal/shared/response"
	"musings-backend/pkg/logger"
)

const maxUploadBytes = 6 * 1024 * 1024

type MediaHandler struct {
	service media.Service
}

func NewMediaHandler(service media.Service) *MediaHandler {
	return &MediaHandler{service: service}
}

// UploadImage - POST /v1/admin/uploads (admin)
// Multipart form with a single "image" file field.
func (h *MediaHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "missing image file")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "image too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		response.BadRequest(c, "cannot read image file")
		return
	}

	url, err := h.service.UploadImage(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, media.ErrInvalidImage) {
			response.ErrorResponse(c, http.StatusUnprocessableEntity, "INVALID_IMAGE", err.Error())
			return
		}
		logger.Error("Failed to upload image", err)
		response.InternalServerError(c, "failed to upload image")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
