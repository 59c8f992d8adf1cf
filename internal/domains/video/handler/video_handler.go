package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"musings-backend/internal/domains/video"
	"musings-backend/internal/shared/response"
	"musings-backend/pkg/logger"
)

type VideoHandler struct {
	service video.Service
}

func NewVideoHandler(service video.Service) *VideoHandler {
	return &VideoHandler{service: service}
}

// List - GET /v1/videos
// Query params: category ("all" or a slug), search (free text).
func (h *VideoHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	searchTerm := c.Query("search")

	videos, err := h.service.ListAll(c.Request.Context(), category, searchTerm)
	if err != nil {
		logger.Error("Failed to list videos", err)
		response.InternalServerError(c, "failed to load videos")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, videos, &response.Meta{Count: len(videos)})
}

// ListLatest - GET /v1/videos/latest
func (h *VideoHandler) ListLatest(c *gin.Context) {
	videos, err := h.service.ListLatest(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list latest videos", err)
		response.InternalServerError(c, "failed to load latest videos")
		return
	}
	response.Success(c, http.StatusOK, videos)
}

// Create - POST /v1/videos (admin)
func (h *VideoHandler) Create(c *gin.Context) {
	var req video.CreateVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid video payload", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, video.ErrInvalidVideoURL) {
			response.ErrorResponse(c, http.StatusUnprocessableEntity, "INVALID_VIDEO_URL", err.Error())
			return
		}
		logger.Error("Failed to create video", err)
		response.InternalServerError(c, "failed to create video")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Delete - DELETE /v1/videos/:id (admin)
func (h *VideoHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, video.ErrVideoNotFound) {
			response.NotFound(c, "video not found")
			return
		}
		logger.Error("Failed to delete video", err)
		response.InternalServerError(c, "failed to delete video")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
