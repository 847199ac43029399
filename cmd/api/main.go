package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joannadeng/49.capstone-project-backend/config"
	"github.com/joannadeng/49.capstone-project-backend/internal/api"
	"github.com/joannadeng/49.capstone-project-backend/internal/database"
	"github.com/joannadeng/49.capstone-project-backend/internal/middleware"
	"github.com/joannadeng/49.capstone-project-backend/internal/router"
	"github.com/joannadeng/49.capstone-project-backend/internal/server"
	"github.com/joannadeng/49.capstone-project-backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Rate limiting degrades gracefully when Redis is unavailable.
	var redisClient *redis.Client
	if redisClient, err = database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.BcryptCost)
	catalog := service.NewMealDBService(cfg.MealDBBaseURL)
	userService := service.NewUserService(db, catalog, cfg.BcryptCost)

	var imageService service.IImageService
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, recipe image uploads disabled: %v", err)
		imageService = nil
	} else {
		imageService = service.NewImageService(db, s3Config)
	}

	var saveLimiter, createLimiter *middleware.RateLimiter
	if redisClient != nil {
		saveLimiter = middleware.NewSaveRecipeRateLimiter(redisClient)
		createLimiter = middleware.NewCreateRecipeRateLimiter(redisClient)
	}

	engine := router.SetupRouter(
		api.NewHealthHandler(db),
		api.NewAuthHandler(authService),
		api.NewUserHandler(userService, authService),
		api.NewRecipeHandler(catalog),
		api.NewImageHandler(imageService),
		authService,
		saveLimiter,
		createLimiter,
		cfg.AllowedOrigins,
	)

	srv := server.New(cfg, engine)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
