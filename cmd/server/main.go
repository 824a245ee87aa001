package main

import (
	"snapboard/internal/app"
	"snapboard/pkg/cache"
	"snapboard/pkg/config"
	"snapboard/pkg/database"
	"snapboard/pkg/logger"
	"snapboard/pkg/storage"
)

// @title           Snapboard API
// @version         1.0
// @description     Social posting service: users, media-backed posts, likes, views, and search.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	var store storage.Store
	if cfg.StorageBackend == "s3" {
		store, err = storage.NewS3Store(cfg)
	} else {
		store, err = storage.NewLocalStore(cfg.MediaDir)
	}
	if err != nil {
		log.Error("Failed to initialize media storage: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, store, redisClient)
}
