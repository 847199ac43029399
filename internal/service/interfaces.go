package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/joannadeng/49.capstone-project-backend/internal/models"
	"github.com/joannadeng/49.capstone-project-backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.CreateUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IUserService defines the interface for account-store operations
type IUserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*types.UserDetail, error)
	Update(ctx context.Context, username string, req *types.UpdateUserRequest) (*models.User, error)
	Remove(ctx context.Context, username string) error

	SaveRecipe(ctx context.Context, username string, recipeID int) (*models.SavedRecipe, error)
	ListSavedRecipes(ctx context.Context, username string) ([]models.SavedRecipe, error)
	RemoveSavedRecipe(ctx context.Context, username string, id uuid.UUID) error

	CreateRecipe(ctx context.Context, username string, req *types.CreateRecipeRequest) (*models.CreatedRecipe, error)
	GetCreatedRecipe(ctx context.Context, username string, id uuid.UUID) (*models.CreatedRecipe, error)
	ListCreatedRecipes(ctx context.Context, username string) ([]models.CreatedRecipe, error)
	RemoveCreatedRecipe(ctx context.Context, username string, id uuid.UUID) error
}

// IMealDBService defines the interface for the external recipe catalog
type IMealDBService interface {
	GetRandom(ctx context.Context) (*Meal, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListAreas(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int) (*Meal, error)
	FilterByCategory(ctx context.Context, category string) ([]Meal, error)
	FilterByArea(ctx context.Context, area string) ([]Meal, error)
	FilterByIngredient(ctx context.Context, ingredient string) ([]Meal, error)
}

// IImageService defines the interface for recipe image storage
type IImageService interface {
	UploadRecipeImage(ctx context.Context, username string, recipeID uuid.UUID, body io.Reader, contentType string) (string, error)
}
