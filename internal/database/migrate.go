package database

import (
	"gorm.io/gorm"

	"github.com/joannadeng/49.capstone-project-backend/internal/models"
)

// Migrate creates or updates the schema for all application tables,
// including the (username, recipe_id) unique index on saved recipes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.SavedRecipe{},
		&models.CreatedRecipe{},
	)
}
