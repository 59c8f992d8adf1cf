package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"musings-backend/internal/shared/middleware"
	"musings-backend/pkg/container"
)

// loginRateLimit bounds credential guessing on the sign-in form.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// The query-param addressing of early deployments survives only as
	// permanent redirects to the canonical paths.
	router.GET("/post", c.PostHandler.RedirectLegacy)
	router.GET("/category", c.CategoryHandler.RedirectLegacy)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPostRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupVideoRoutes(v1, c)
		setupContactRoutes(v1, c)
		setupAuthRoutes(v1, c)

		// Static publishing mode exposes no authoring surface at all.
		if !c.Config.App.ReadOnly {
			setupAdminRoutes(v1, c)
		}
	}

	return router
}

func setupPostRoutes(rg *gin.RouterGroup, c *container.Container) {
	posts := rg.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/featured", c.PostHandler.ListFeatured)
		posts.GET("/recent", c.PostHandler.ListRecent)
		posts.GET("/:id", c.PostHandler.GetByID)
	}
}

func setupCategoryRoutes(rg *gin.RouterGroup, c *container.Container) {
	categories := rg.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:slug", c.CategoryHandler.Get)
		categories.GET("/:slug/posts", c.CategoryHandler.ListPosts)
	}
}

func setupVideoRoutes(rg *gin.RouterGroup, c *container.Container) {
	videos := rg.Group("/videos")
	{
		videos.GET("", c.VideoHandler.List)
		videos.GET("/latest", c.VideoHandler.ListLatest)
	}
}

func setupContactRoutes(rg *gin.RouterGroup, c *container.Container) {
	rg.POST("/contact", c.ContactHandler.SendMessage)
}

func setupAuthRoutes(rg *gin.RouterGroup, c *container.Container) {
	loginLimiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Limit(), c.AuthHandler.Login)
		auth.POST("/logout",
			middleware.AuthMiddleware(c.JWTManager, c.Cache),
			c.AuthHandler.Logout,
		)
	}
}

// setupAdminRoutes registers the authoring surface behind the JWT + admin
// role gate. Not called in static publishing mode.
func setupAdminRoutes(rg *gin.RouterGroup, c *container.Container) {
	admin := rg.Group("")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager, c.Cache),
		middleware.AdminMiddleware(),
	)
	{
		admin.POST("/posts", c.PostHandler.Create)
		admin.PATCH("/posts/:id", c.PostHandler.Update)
		admin.DELETE("/posts/:id", c.PostHandler.Delete)

		admin.POST("/videos", c.VideoHandler.Create)
		admin.DELETE("/videos/:id", c.VideoHandler.Delete)

		admin.POST("/admin/uploads", c.MediaHandler.UploadImage)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		overall := "ok"
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
