package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	internalHTTP "snapboard/internal/controller/http"
	"snapboard/internal/repo/persistent"
	"snapboard/internal/usecase"
	"snapboard/pkg/config"
	"snapboard/pkg/jwt"
	"snapboard/pkg/logger"
	"snapboard/pkg/middleware"
	"snapboard/pkg/session"
	"snapboard/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "snapboard/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, store storage.Store, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	sessions := session.NewStore(redisClient)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, sessions, store, log)
	postUseCase := usecase.NewPostUseCase(postRepo, store, log)
	profileUseCase := usecase.NewProfileUseCase(userRepo, store, log)

	// Initialize HTTP handlers
	authHandler := internalHTTP.NewAuthHandler(authUseCase)
	postHandler := internalHTTP.NewPostHandler(postUseCase, log)
	profileHandler := internalHTTP.NewProfileHandler(profileUseCase, authUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Serve stored media directly when running on local disk
	if local, ok := store.(*storage.LocalStore); ok {
		r.Static("/media", local.BaseDir())
	}

	// Public routes
	r.GET("/", postHandler.ListPosts)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/search", postHandler.SearchPosts)
	r.POST("/search", postHandler.SearchPosts)
	r.GET("/post/:id", postHandler.GetPost)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(jwtService, sessions))
	{
		auth.GET("/logout", authHandler.Logout)
		auth.POST("/post", postHandler.CreatePost)
		auth.GET("/like/:id", postHandler.LikePost)
		auth.GET("/view/:id", postHandler.ViewPost)
		auth.GET("/edit_post/:id", postHandler.GetPostForEdit)
		auth.POST("/edit_post/:id", postHandler.EditPost)
		auth.POST("/delete_post/:id", postHandler.DeletePost)
		auth.GET("/edit_profile", profileHandler.GetProfile)
		auth.POST("/edit_profile", profileHandler.UpdateProfile)
		auth.POST("/change_nickname", profileHandler.ChangeNickname)
		auth.POST("/change_password", profileHandler.ChangePassword)
		auth.POST("/change_avatar", profileHandler.ChangeAvatar)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
