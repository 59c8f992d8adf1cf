package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"musings-backend/internal/domains/category"
	"musings-backend/internal/domains/post"
	"musings-backend/internal/shared/response"
	"musings-backend/pkg/logger"
)

type CategoryHandler struct {
	postService post.Service
}

func NewCategoryHandler(postService post.Service) *CategoryHandler {
	return &CategoryHandler{postService: postService}
}

// List - GET /v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, category.All())
}

// Get - GET /v1/categories/:slug
// Unknown slugs resolve to a fallback category rather than a 404.
func (h *CategoryHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, category.Lookup(c.Param("slug")))
}

// ListPosts - GET /v1/categories/:slug/posts
func (h *CategoryHandler) ListPosts(c *gin.Context) {
	slug := c.Param("slug")

	posts, err := h.postService.ListByCategory(c.Request.Context(), slug)
	if err != nil {
		logger.Error("Failed to list posts for category", err)
		response.InternalServerError(c, "failed to load category posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"category": category.Lookup(slug),
		"posts":    posts,
	}, &response.Meta{Count: len(posts)})
}

// RedirectLegacy - GET /category?slug=<slug>
func (h *CategoryHandler) RedirectLegacy(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.Redirect(http.StatusMovedPermanently, "/api/v1/categories")
		return
	}
	c.Redirect(http.StatusMovedPermanently, "/api/v1/categories/"+slug)
}
