package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/joannadeng/49.capstone-project-backend/internal/database"
	"github.com/joannadeng/49.capstone-project-backend/internal/models"
	"github.com/joannadeng/49.capstone-project-backend/internal/testhelpers"
	"github.com/joannadeng/49.capstone-project-backend/internal/types"
)

// stubCatalog serves canned catalog lookups so user tests never touch the
// network.
type stubCatalog struct {
	meals map[int]Meal
}

var _ IMealDBService = (*stubCatalog)(nil)

func (s *stubCatalog) GetByID(ctx context.Context, id int) (*Meal, error) {
	m, ok := s.meals[id]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return &m, nil
}

func (s *stubCatalog) GetRandom(ctx context.Context) (*Meal, error) {
	for _, m := range s.meals {
		return &m, nil
	}
	return nil, ErrRecipeNotFound
}

func (s *stubCatalog) ListCategories(ctx context.Context) ([]string, error) { return nil, nil }
func (s *stubCatalog) ListAreas(ctx context.Context) ([]string, error)      { return nil, nil }
func (s *stubCatalog) FilterByCategory(ctx context.Context, category string) ([]Meal, error) {
	return nil, ErrRecipeNotFound
}
func (s *stubCatalog) FilterByArea(ctx context.Context, area string) ([]Meal, error) {
	return nil, ErrRecipeNotFound
}
func (s *stubCatalog) FilterByIngredient(ctx context.Context, ingredient string) ([]Meal, error) {
	return nil, ErrRecipeNotFound
}

func newTestUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)
	catalog := &stubCatalog{meals: map[int]Meal{
		52772: {ID: 52772, Name: "Teriyaki Chicken Casserole", Category: "Chicken", Area: "Japanese"},
		52804: {ID: 52804, Name: "Poutine", Category: "Miscellaneous", Area: "Canadian"},
	}}
	return NewUserService(db, catalog, bcrypt.MinCost), db
}

func createUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Email:        username + "@example.com",
		IsAdmin:      isAdmin,
	}
	require.NoError(t, db.Create(&user).Error)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserList(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "bob", false)
	createUser(t, db, "alice", false)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUserGet(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)
	_, err := svc.SaveRecipe(ctx, "alice", 52772)
	require.NoError(t, err)

	detail, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Username)
	require.Len(t, detail.SavedRecipes, 1)
	assert.Equal(t, 52772, detail.SavedRecipes[0].RecipeID)
	assert.NotNil(t, detail.CreatedRecipes)
	assert.Empty(t, detail.CreatedRecipes)
}

func TestUserGetEmptyCollectionsMarshalAsArrays(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)

	detail, err := svc.Get(ctx, "alice")
	require.NoError(t, err)

	body, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"savedRecipes":[]`)
	assert.Contains(t, string(body), `"createdRecipes":[]`)
}

func TestUserGetNotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdate(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	createUser(t, svc.db, "alice", false)

	user, err := svc.Update(ctx, "alice", &types.UpdateUserRequest{
		FirstName: strPtr("Alicia"),
		IsAdmin:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.FirstName)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "User", user.LastName)
}

func TestUserUpdatePasswordIsHashed(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)

	user, err := svc.Update(ctx, "alice", &types.UpdateUserRequest{
		Password: strPtr("new-password"),
	})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "new-password", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")))

	// The hash must not appear in the serialized response.
	body, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "passwordHash")
	assert.NotContains(t, string(body), stored.PasswordHash)
}

func TestUserUpdateEmptyFails(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)

	_, err := svc.Update(ctx, "alice", &types.UpdateUserRequest{})
	assert.ErrorIs(t, err, database.ErrNoFields)

	var stored models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.Equal(t, "Test", stored.FirstName)
}

func TestUserUpdateNotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Update(context.Background(), "nobody", &types.UpdateUserRequest{
		FirstName: strPtr("Nobody"),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRemoveCascades(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)
	_, err := svc.SaveRecipe(ctx, "alice", 52772)
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, "alice", &types.CreateRecipeRequest{
		Name:        "Toast",
		Ingredient:  "bread, butter",
		Instruction: "toast the bread, then butter it",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "alice"))

	var saved, created int64
	require.NoError(t, db.Model(&models.SavedRecipe{}).Where("username = ?", "alice").Count(&saved).Error)
	require.NoError(t, db.Model(&models.CreatedRecipe{}).Where("username = ?", "alice").Count(&created).Error)
	assert.Zero(t, saved)
	assert.Zero(t, created)

	assert.ErrorIs(t, svc.Remove(ctx, "alice"), ErrUserNotFound)
}

func TestSaveRecipe(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)

	entry, err := svc.SaveRecipe(ctx, "alice", 52772)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Teriyaki Chicken Casserole", entry.Name)
	assert.Equal(t, "Japanese", entry.Area)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestSaveRecipeTwiceIsIdempotent(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)

	first, err := svc.SaveRecipe(ctx, "alice", 52772)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.SaveRecipe(ctx, "alice", 52772)
	require.NoError(t, err)
	assert.Nil(t, second)

	var count int64
	require.NoError(t, db.Model(&models.SavedRecipe{}).Where("username = ?", "alice").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSaveRecipeUnknownCatalogID(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)

	_, err := svc.SaveRecipe(ctx, "alice", 99999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestSaveRecipeUnknownUser(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.SaveRecipe(context.Background(), "nobody", 52772)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveSavedRecipeOwnerScoped(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)
	createUser(t, db, "bob", false)

	entry, err := svc.SaveRecipe(ctx, "alice", 52772)
	require.NoError(t, err)

	// Another user cannot delete it, even with a valid id.
	err = svc.RemoveSavedRecipe(ctx, "bob", entry.ID)
	assert.ErrorIs(t, err, ErrSavedRecipeNotFound)

	var count int64
	require.NoError(t, db.Model(&models.SavedRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, svc.RemoveSavedRecipe(ctx, "alice", entry.ID))
	assert.ErrorIs(t, svc.RemoveSavedRecipe(ctx, "alice", entry.ID), ErrSavedRecipeNotFound)
}

func TestCreateRecipe(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)

	recipe, err := svc.CreateRecipe(ctx, "alice", &types.CreateRecipeRequest{
		Name:        "Toast",
		Ingredient:  "bread, butter",
		Instruction: "toast the bread, then butter it",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, "alice", recipe.Username)
	assert.Equal(t, "Toast", recipe.Name)
}

func TestGetCreatedRecipeOwnerScoped(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)
	createUser(t, db, "bob", false)

	recipe, err := svc.CreateRecipe(ctx, "alice", &types.CreateRecipeRequest{
		Name:        "Toast",
		Ingredient:  "bread",
		Instruction: "toast it",
	})
	require.NoError(t, err)

	got, err := svc.GetCreatedRecipe(ctx, "alice", recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, got.ID)

	_, err = svc.GetCreatedRecipe(ctx, "bob", recipe.ID)
	assert.ErrorIs(t, err, ErrCreatedRecipeNotFound)
}

func TestRemoveCreatedRecipeOwnerScoped(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)
	createUser(t, db, "bob", false)

	aliceRecipe, err := svc.CreateRecipe(ctx, "alice", &types.CreateRecipeRequest{
		Name:        "Toast",
		Ingredient:  "bread",
		Instruction: "toast it",
	})
	require.NoError(t, err)
	bobRecipe, err := svc.CreateRecipe(ctx, "bob", &types.CreateRecipeRequest{
		Name:        "Soup",
		Ingredient:  "water, salt",
		Instruction: "boil",
	})
	require.NoError(t, err)

	err = svc.RemoveCreatedRecipe(ctx, "bob", aliceRecipe.ID)
	assert.ErrorIs(t, err, ErrCreatedRecipeNotFound)

	require.NoError(t, svc.RemoveCreatedRecipe(ctx, "alice", aliceRecipe.ID))

	// Deleting one user's recipe leaves the other's intact.
	var remaining models.CreatedRecipe
	require.NoError(t, db.Where("id = ?", bobRecipe.ID).First(&remaining).Error)
	assert.Equal(t, "bob", remaining.Username)
}

func TestListCreatedRecipes(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	createUser(t, db, "alice", false)

	recipes, err := svc.ListCreatedRecipes(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)

	for _, name := range []string{"Toast", "Soup"} {
		_, err := svc.CreateRecipe(ctx, "alice", &types.CreateRecipeRequest{
			Name:        name,
			Ingredient:  "stuff",
			Instruction: strings.ToLower(name) + " instructions",
		})
		require.NoError(t, err)
	}

	recipes, err = svc.ListCreatedRecipes(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}
