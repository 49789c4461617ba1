package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"muse-studio/pkg/cache"
	"muse-studio/pkg/config"
	"muse-studio/pkg/database"
	"muse-studio/pkg/jwt"
	"muse-studio/pkg/logger"
	"muse-studio/pkg/middleware"
	"muse-studio/pkg/queue"
	galleryHTTP "muse-studio/services/gallery/internal/controller/http"
	"muse-studio/services/gallery/internal/repo/persistent"
	"muse-studio/services/gallery/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "muse-studio/services/gallery/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without notifications)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
	}, nil
}

func (a *App) Run() error {
	postRepo := persistent.NewPostRepository(a.db)
	likeRepo := persistent.NewLikeRepository(a.db)
	projectRepo := persistent.NewProjectRepository(a.db)
	galleryUseCase := usecase.NewGalleryUseCase(postRepo, likeRepo, projectRepo, a.redisClient, a.queueClient, a.log)
	galleryHandler := galleryHTTP.NewGalleryHandler(galleryUseCase, a.log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Browsing the gallery needs no account. Plays are counted on the
	// public read path.
	{
		api.GET("/posts", galleryHandler.ListPosts)
		api.GET("/posts/:id", galleryHandler.GetPost)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(a.jwtService))
	if a.redisClient != nil {
		protected.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
	}

	{
		protected.POST("/posts", galleryHandler.PublishPost)
		protected.POST("/posts/:id/like", galleryHandler.ToggleLike)
		protected.GET("/posts/:id/liked", galleryHandler.IsLiked)
		protected.DELETE("/posts/:id", galleryHandler.DeletePost)
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Gallery service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down gallery service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Gallery service exited")
	return nil
}
