package types

import (
	"github.com/joannadeng/49.capstone-project-backend/internal/models"
)

// CreateUserRequest represents the request body for the admin user-creation
// endpoint. Field shapes are enforced by binding tags before the store layer
// is reached.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=25"`
	Password  string `json:"password" binding:"required,min=5,max=72"`
	FirstName string `json:"firstName" binding:"required,max=30"`
	LastName  string `json:"lastName" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// RegisterRequest represents the self-registration request body. Unlike
// CreateUserRequest it cannot mint admins.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=25"`
	Password  string `json:"password" binding:"required,min=5,max=72"`
	FirstName string `json:"firstName" binding:"required,max=30"`
	LastName  string `json:"lastName" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is a partial update: every field is independently
// optional, and absent fields are left untouched. The struct doubles as the
// allow-list for the SET-clause builder; anything outside it never reaches
// the store.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=30"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1,max=30"`
	Password  *string `json:"password" binding:"omitempty,min=5,max=72"`
	Email     *string `json:"email" binding:"omitempty,email"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// CreateRecipeRequest represents the request body for authoring a recipe
type CreateRecipeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Ingredient  string `json:"ingredient" binding:"required"`
	Instruction string `json:"instruction" binding:"required"`
}

// UserDetail is the aggregate returned for a single-user lookup: the base
// profile plus both child collections. Empty collections marshal as [],
// never null.
type UserDetail struct {
	models.User
	SavedRecipes   []models.SavedRecipe   `json:"savedRecipes"`
	CreatedRecipes []models.CreatedRecipe `json:"createdRecipes"`
}
