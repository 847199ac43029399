package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account record. The username is the immutable primary key; the
// password hash never appears in any JSON projection.
type User struct {
	Username     string    `gorm:"primaryKey;size:25" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// SavedRecipe is a snapshot of an external-catalog recipe saved by a user.
// Name, category and area are captured at save time and never refreshed.
// The (username, recipe_id) unique index makes duplicate saves a no-op at
// the store level, so concurrent saves of the same recipe cannot race.
type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username  string    `gorm:"size:25;not null;uniqueIndex:idx_saved_user_recipe" json:"username"`
	RecipeID  int       `gorm:"not null;uniqueIndex:idx_saved_user_recipe" json:"recipeId"`
	Name      string    `gorm:"not null" json:"name"`
	Category  string    `json:"category"`
	Area      string    `json:"area"`
	CreatedAt time.Time `json:"-"`
}

func (s *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// CreatedRecipe is a recipe authored by a user. Its id is assigned by this
// store and is unrelated to the external catalog's ids.
type CreatedRecipe struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username    string    `gorm:"size:25;not null;index" json:"username"`
	Name        string    `gorm:"not null" json:"name"`
	Ingredient  string    `gorm:"type:text;not null" json:"ingredient"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
	ImageURL    string    `gorm:"size:255" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (c *CreatedRecipe) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
