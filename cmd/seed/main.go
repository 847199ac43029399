package main

import (
	"context"
	"log"

	"github.com/joannadeng/49.capstone-project-backend/config"
	"github.com/joannadeng/49.capstone-project-backend/internal/database"
	"github.com/joannadeng/49.capstone-project-backend/internal/service"
	"github.com/joannadeng/49.capstone-project-backend/internal/types"
)

// Seeds an admin account and a demo user for local development.
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

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.BcryptCost)

	seeds := []types.CreateUserRequest{
		{
			Username:  "admin",
			Password:  "admin-password",
			FirstName: "Site",
			LastName:  "Admin",
			Email:     "admin@example.com",
			IsAdmin:   true,
		},
		{
			Username:  "demo",
			Password:  "demo-password",
			FirstName: "Demo",
			LastName:  "User",
			Email:     "demo@example.com",
		},
	}

	ctx := context.Background()
	for i := range seeds {
		user, err := authService.Register(ctx, &seeds[i])
		if err != nil {
			log.Printf("Skipping %s: %v", seeds[i].Username, err)
			continue
		}
		log.Printf("Created user %s (admin=%v)", user.Username, user.IsAdmin)
	}
}
