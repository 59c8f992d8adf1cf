package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"musings-backend/internal/domains/post"
	"musings-backend/internal/shared/response"
	"musings-backend/pkg/logger"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// List - GET /v1/posts
// Query params: category ("all" or a slug), search (free text).
func (h *PostHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	searchTerm := c.Query("search")

	posts, err := h.service.ListAll(c.Request.Context(), category, searchTerm)
	if err != nil {
		logger.Error("Failed to list posts", err)
		response.InternalServerError(c, "failed to load posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{Count: len(posts)})
}

// ListFeatured - GET /v1/posts/featured
func (h *PostHandler) ListFeatured(c *gin.Context) {
	posts, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list featured posts", err)
		response.InternalServerError(c, "failed to load featured posts")
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// ListRecent - GET /v1/posts/recent
func (h *PostHandler) ListRecent(c *gin.Context) {
	posts, err := h.service.ListRecent(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list recent posts", err)
		response.InternalServerError(c, "failed to load recent posts")
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// GetByID - GET /v1/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		logger.Error("Failed to get post", err)
		response.InternalServerError(c, "failed to load post")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// RedirectLegacy - GET /post?id=<id>
// The query-param addressing scheme survives only as a permanent redirect to
// the canonical path form.
func (h *PostHandler) RedirectLegacy(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Redirect(http.StatusMovedPermanently, "/api/v1/posts")
		return
	}
	c.Redirect(http.StatusMovedPermanently, "/api/v1/posts/"+id)
}

// Create - POST /v1/posts (admin)
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid post payload", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create post", err)
		response.InternalServerError(c, "failed to create post")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update - PATCH /v1/posts/:id (admin)
func (h *PostHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req post.UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid post payload", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		logger.Error("Failed to update post", err)
		response.InternalServerError(c, "failed to update post")
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /v1/posts/:id (admin)
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		logger.Error("Failed to delete post", err)
		response.InternalServerError(c, "failed to delete post")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
