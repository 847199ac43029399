package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joannadeng/49.capstone-project-backend/internal/database"
	"github.com/joannadeng/49.capstone-project-backend/internal/models"
	"github.com/joannadeng/49.capstone-project-backend/internal/types"
)

// userUpdateCols maps the externally visible field names of a partial user
// update to their column names.
var userUpdateCols = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

// UserService is the account store: user CRUD plus the saved- and
// created-recipe collections owned by each user. Route guards decide who may
// call these; delete operations additionally re-check ownership in the WHERE
// clause so the store cannot be misused to cross account boundaries.
type UserService struct {
	db         *gorm.DB
	catalog    IMealDBService
	bcryptCost int
}

var _ IUserService = (*UserService)(nil)

func NewUserService(db *gorm.DB, catalog IMealDBService, bcryptCost int) *UserService {
	return &UserService{
		db:         db,
		catalog:    catalog,
		bcryptCost: bcryptCost,
	}
}

// List returns all users ordered by username.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns a user's profile together with their saved and created
// recipes. Absent child rows yield empty lists, not an error.
func (s *UserService) Get(ctx context.Context, username string) (*types.UserDetail, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	detail := &types.UserDetail{
		User:           user,
		SavedRecipes:   []models.SavedRecipe{},
		CreatedRecipes: []models.CreatedRecipe{},
	}

	if err := s.db.WithContext(ctx).Where("username = ?", username).Find(&detail.SavedRecipes).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("username = ?", username).Find(&detail.CreatedRecipes).Error; err != nil {
		return nil, err
	}

	return detail, nil
}

// Update applies a partial update. A password field is hashed before it
// reaches the builder; an empty update fails without touching the row. The
// returned record never carries the password hash in any projection.
func (s *UserService) Update(ctx context.Context, username string, req *types.UpdateUserRequest) (*models.User, error) {
	fields := make([]database.Field, 0, 5)
	if req.FirstName != nil {
		fields = append(fields, database.Field{Name: "firstName", Value: *req.FirstName})
	}
	if req.LastName != nil {
		fields = append(fields, database.Field{Name: "lastName", Value: *req.LastName})
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		fields = append(fields, database.Field{Name: "password_hash", Value: string(hashed)})
	}
	if req.Email != nil {
		fields = append(fields, database.Field{Name: "email", Value: *req.Email})
	}
	if req.IsAdmin != nil {
		fields = append(fields, database.Field{Name: "isAdmin", Value: *req.IsAdmin})
	}

	setClause, values, err := database.BuildSetClause(fields, userUpdateCols)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Exec(
		"UPDATE users SET "+setClause+" WHERE username = ?",
		append(values, username)...,
	)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Remove deletes a user and cascades to their saved and created recipes.
func (s *UserService) Remove(ctx context.Context, username string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).Delete(&models.SavedRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("username = ?", username).Delete(&models.CreatedRecipe{}).Error; err != nil {
			return err
		}

		res := tx.Where("username = ?", username).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

// SaveRecipe snapshots a catalog recipe into the user's saved list. Saving a
// recipe that is already saved is a no-op returning a nil entry: the unique
// (username, recipe_id) index plus ON CONFLICT DO NOTHING make that hold
// under concurrent saves as well.
func (s *UserService) SaveRecipe(ctx context.Context, username string, recipeID int) (*models.SavedRecipe, error) {
	if err := s.checkUser(ctx, username); err != nil {
		return nil, err
	}

	recipe, err := s.catalog.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	entry := models.SavedRecipe{
		Username: username,
		RecipeID: recipeID,
		Name:     recipe.Name,
		Category: recipe.Category,
		Area:     recipe.Area,
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Already saved.
		return nil, nil
	}

	return &entry, nil
}

// ListSavedRecipes returns the user's saved recipes.
func (s *UserService) ListSavedRecipes(ctx context.Context, username string) ([]models.SavedRecipe, error) {
	if err := s.checkUser(ctx, username); err != nil {
		return nil, err
	}

	recipes := []models.SavedRecipe{}
	if err := s.db.WithContext(ctx).Where("username = ?", username).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// RemoveSavedRecipe deletes one saved entry by id, scoped to its owner. A
// missing row and a row owned by someone else are indistinguishable.
func (s *UserService) RemoveSavedRecipe(ctx context.Context, username string, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ? AND username = ?", id, username).Delete(&models.SavedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSavedRecipeNotFound
	}
	return nil
}

// CreateRecipe stores a user-authored recipe.
func (s *UserService) CreateRecipe(ctx context.Context, username string, req *types.CreateRecipeRequest) (*models.CreatedRecipe, error) {
	if err := s.checkUser(ctx, username); err != nil {
		return nil, err
	}

	recipe := models.CreatedRecipe{
		Username:    username,
		Name:        req.Name,
		Ingredient:  req.Ingredient,
		Instruction: req.Instruction,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetCreatedRecipe returns one created recipe by id, scoped to its owner.
func (s *UserService) GetCreatedRecipe(ctx context.Context, username string, id uuid.UUID) (*models.CreatedRecipe, error) {
	if err := s.checkUser(ctx, username); err != nil {
		return nil, err
	}

	var recipe models.CreatedRecipe
	if err := s.db.WithContext(ctx).Where("id = ? AND username = ?", id, username).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatedRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ListCreatedRecipes returns the user's created recipes.
func (s *UserService) ListCreatedRecipes(ctx context.Context, username string) ([]models.CreatedRecipe, error) {
	if err := s.checkUser(ctx, username); err != nil {
		return nil, err
	}

	recipes := []models.CreatedRecipe{}
	if err := s.db.WithContext(ctx).Where("username = ?", username).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// RemoveCreatedRecipe deletes one created recipe by id, scoped to its owner.
func (s *UserService) RemoveCreatedRecipe(ctx context.Context, username string, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ? AND username = ?", id, username).Delete(&models.CreatedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCreatedRecipeNotFound
	}
	return nil
}

func (s *UserService) checkUser(ctx context.Context, username string) error {
	var user models.User
	err := s.db.WithContext(ctx).Select("username").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
