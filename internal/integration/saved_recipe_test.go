package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/joannadeng/49.capstone-project-backend/internal/models"
	"github.com/joannadeng/49.capstone-project-backend/internal/service"
	"github.com/joannadeng/49.capstone-project-backend/internal/testhelpers"
	"github.com/joannadeng/49.capstone-project-backend/internal/types"
)

type fixedCatalog struct{ meal service.Meal }

func (f *fixedCatalog) GetByID(ctx context.Context, id int) (*service.Meal, error) {
	m := f.meal
	m.ID = id
	return &m, nil
}
func (f *fixedCatalog) GetRandom(ctx context.Context) (*service.Meal, error) { return &f.meal, nil }
func (f *fixedCatalog) ListCategories(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fixedCatalog) ListAreas(ctx context.Context) ([]string, error)      { return nil, nil }
func (f *fixedCatalog) FilterByCategory(ctx context.Context, category string) ([]service.Meal, error) {
	return nil, service.ErrRecipeNotFound
}
func (f *fixedCatalog) FilterByArea(ctx context.Context, area string) ([]service.Meal, error) {
	return nil, service.ErrRecipeNotFound
}
func (f *fixedCatalog) FilterByIngredient(ctx context.Context, ingredient string) ([]service.Meal, error) {
	return nil, service.ErrRecipeNotFound
}

// TestConcurrentSavesKeepOneRow drives parallel saves of the same recipe at
// a real Postgres instance and checks that the unique (username, recipe_id)
// index admits exactly one row, with the losers reported as no-ops rather
// than errors.
func TestConcurrentSavesKeepOneRow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgresDatabase(t)
	catalog := &fixedCatalog{meal: service.Meal{
		Name: "Teriyaki Chicken Casserole", Category: "Chicken", Area: "Japanese",
	}}
	svc := service.NewUserService(db, catalog, bcrypt.MinCost)

	user := models.User{
		Username:     "alice",
		PasswordHash: "x",
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
	}
	require.NoError(t, db.Create(&user).Error)

	const workers = 8
	created := make([]*models.SavedRecipe, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created[i], errs[i] = svc.SaveRecipe(context.Background(), "alice", 52772)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		if created[i] != nil {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	var count int64
	require.NoError(t, db.Model(&models.SavedRecipe{}).
		Where("username = ? AND recipe_id = ?", "alice", 52772).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestUpdateBuilderAgainstPostgres runs the partial-update path end to end on
// Postgres, where placeholder rewriting differs from the embedded database
// used by the unit tests.
func TestUpdateBuilderAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgresDatabase(t)
	svc := service.NewUserService(db, &fixedCatalog{}, bcrypt.MinCost)

	user := models.User{
		Username:     "bob",
		PasswordHash: "x",
		FirstName:    "Bob",
		LastName:     "Jones",
		Email:        "bob@example.com",
	}
	require.NoError(t, db.Create(&user).Error)

	first := "Robert"
	admin := true
	updated, err := svc.Update(context.Background(), "bob", &types.UpdateUserRequest{
		FirstName: &first,
		IsAdmin:   &admin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.FirstName)
	assert.True(t, updated.IsAdmin)
	assert.Equal(t, "Jones", updated.LastName)
}
