package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/otaviobrantes/lumen/internal/assistant"
	lumenHTTP "github.com/otaviobrantes/lumen/internal/controller/http"
	"github.com/otaviobrantes/lumen/internal/repo/persistent"
	"github.com/otaviobrantes/lumen/internal/thumbnail"
	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/cache"
	"github.com/otaviobrantes/lumen/pkg/config"
	"github.com/otaviobrantes/lumen/pkg/database"
	"github.com/otaviobrantes/lumen/pkg/jwt"
	"github.com/otaviobrantes/lumen/pkg/logger"
	"github.com/otaviobrantes/lumen/pkg/middleware"
	"github.com/otaviobrantes/lumen/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/otaviobrantes/lumen/docs" // Swagger docs
)

// Run wires every layer together and serves until interrupted.
func Run(cfg *config.Config, log *logger.Logger) error {
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return err
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		return err
	}

	jwtService := jwt.NewService(cfg.JWTSecret)
	frameExtractor := thumbnail.NewExtractor(cfg.FFmpegBinary, cfg.FFprobeBinary)

	// The assistant degrades to a canned apology without a key.
	var chatProvider assistant.Provider
	if cfg.GeminiAPIKey != "" {
		provider, err := assistant.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Warn("Assistant unavailable: %v", err)
		} else {
			chatProvider = provider
		}
	}

	// Repositories
	videoRepo := persistent.NewVideoRepository(db)
	profileRepo := persistent.NewProfileRepository(db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(profileRepo, jwtService, redisClient, log)
	catalogUseCase := usecase.NewCatalogUseCase(videoRepo, log)
	contentUseCase := usecase.NewContentUseCase(videoRepo, s3Client, frameExtractor, redisClient, log)
	teamUseCase := usecase.NewTeamUseCase(profileRepo, redisClient, log)
	dashboardUseCase := usecase.NewDashboardUseCase(videoRepo, profileRepo, redisClient, log)
	assistantUseCase := usecase.NewAssistantUseCase(chatProvider, log)

	// HTTP handlers
	authHandler := lumenHTTP.NewAuthHandler(authUseCase, log)
	catalogHandler := lumenHTTP.NewCatalogHandler(catalogUseCase, authUseCase, log)
	contentHandler := lumenHTTP.NewContentHandler(contentUseCase, dashboardUseCase, log)
	teamHandler := lumenHTTP.NewTeamHandler(teamUseCase, dashboardUseCase, log)
	dashboardHandler := lumenHTTP.NewDashboardHandler(dashboardUseCase, log)
	assistantHandler := lumenHTTP.NewAssistantHandler(assistantUseCase, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	// Public: registration and login.
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
	}

	// Session-gated: the catalog sits behind login.
	session := api.Group("")
	session.Use(middleware.AuthMiddleware(jwtService))
	{
		session.POST("/auth/logout", authHandler.Logout)
		session.GET("/auth/me", authHandler.GetSession)
		session.GET("/videos", catalogHandler.ListVideos)
		session.GET("/videos/:id/playback", catalogHandler.GetPlayback)
		session.GET("/activities", catalogHandler.ListActivities)
		session.POST("/assistant/messages", assistantHandler.SendMessage)
		session.POST("/assistant/session", assistantHandler.StartSession)
	}

	// Staff-gated: content authoring and the dashboard.
	staff := api.Group("/admin")
	staff.Use(middleware.AuthMiddleware(jwtService))
	staff.Use(middleware.RequireStaff())
	{
		staff.GET("/stats", dashboardHandler.GetStats)
		staff.POST("/videos", contentHandler.CreateVideo)
		staff.PUT("/videos/:id", contentHandler.UpdateVideo)
		staff.DELETE("/videos/:id", contentHandler.DeleteVideo)
		staff.POST("/thumbnails/link", contentHandler.LinkThumbnail)
	}

	// Admin-only: team management.
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", teamHandler.ListUsers)
		admin.PUT("/users/:id/role", teamHandler.SetRole)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Lumen starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Lumen exited")
	return nil
}
