package container

import (
	"context"
	"fmt"
	"time"

	"musings-backend/internal/config"
	categoryHandler "musings-backend/internal/domains/category/handler"
	contactHandler "musings-backend/internal/domains/contact/handler"
	contactService "musings-backend/internal/domains/contact/service"
	mediaHandler "musings-backend/internal/domains/media/handler"
	mediaService "musings-backend/internal/domains/media/service"
	"musings-backend/internal/domains/post"
	postHandler "musings-backend/internal/domains/post/handler"
	postRepo "musings-backend/internal/domains/post/repository"
	postService "musings-backend/internal/domains/post/service"
	"musings-backend/internal/domains/user"
	userHandler "musings-backend/internal/domains/user/handler"
	userRepo "musings-backend/internal/domains/user/repository"
	userService "musings-backend/internal/domains/user/service"
	"musings-backend/internal/domains/video"
	videoHandler "musings-backend/internal/domains/video/handler"
	videoRepo "musings-backend/internal/domains/video/repository"
	videoService "musings-backend/internal/domains/video/service"
	infraCache "musings-backend/internal/infrastructure/cache"
	"musings-backend/internal/infrastructure/database"
	"musings-backend/internal/infrastructure/queue"
	"musings-backend/internal/infrastructure/storage"
	"musings-backend/pkg/cache"
	"musings-backend/pkg/jwt"
	"musings-backend/pkg/logger"
	"musings-backend/pkg/youtube"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Queue      *queue.Client
	JWTManager *jwt.Manager

	PostRepo  post.Repository
	VideoRepo video.Repository
	UserRepo  user.Repository

	PostService  post.Service
	VideoService video.Service
	UserService  user.Service

	PostHandler     *postHandler.PostHandler
	VideoHandler    *videoHandler.VideoHandler
	CategoryHandler *categoryHandler.CategoryHandler
	AuthHandler     *userHandler.AuthHandler
	ContactHandler  *contactHandler.ContactHandler
	MediaHandler    *mediaHandler.MediaHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
		"read_only":   cfg.App.ReadOnly,
	})

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx, db.Pool); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// Redis being down degrades to uncached reads, it does not stop
		// the site from serving.
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("Redis connection failed, serving uncached", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("connect to object storage: %w", err)
	}
	c.Storage = minioStorage

	c.Queue = queue.NewClient(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.AccessTokenExpiry)
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	c.PostRepo = postRepo.NewPostgresRepository(pool)
	c.VideoRepo = videoRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.PostService = postService.NewPostService(c.PostRepo, c.Cache)
	c.VideoService = videoService.NewVideoService(
		c.VideoRepo,
		c.Cache,
		youtube.ThumbnailQuality(c.Config.YouTube.ThumbnailQuality),
	)
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
		c.Cache,
		c.Config.App.ReadOnly,
	)
}

func (c *Container) initHandlers() {
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.VideoHandler = videoHandler.NewVideoHandler(c.VideoService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.PostService)
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService)
	c.ContactHandler = contactHandler.NewContactHandler(
		contactService.NewContactService(c.Queue),
	)
	c.MediaHandler = mediaHandler.NewMediaHandler(
		mediaService.NewMediaService(c.Storage, storage.NewImageProcessor()),
	)
}

// Cleanup releases long-lived connections during shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("Failed to close queue client", err)
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("Failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
