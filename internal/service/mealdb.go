package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Meal is a catalog recipe as exposed to the rest of the application.
// Filter endpoints only return id, name and image; the other fields are
// empty there.
type Meal struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Area        string `json:"area,omitempty"`
	Instruction string `json:"instruction,omitempty"`
	Image       string `json:"image,omitempty"`
}

// mealDBMeal mirrors TheMealDB's wire format.
type mealDBMeal struct {
	IDMeal          string `json:"idMeal"`
	StrMeal         string `json:"strMeal"`
	StrCategory     string `json:"strCategory"`
	StrArea         string `json:"strArea"`
	StrInstructions string `json:"strInstructions"`
	StrMealThumb    string `json:"strMealThumb"`
}

// mealDBResponse is the envelope of every TheMealDB endpoint. A lookup with
// no result returns {"meals": null} rather than an HTTP error.
type mealDBResponse struct {
	Meals []mealDBMeal `json:"meals"`
}

// MealDBService is the gateway to the external TheMealDB recipe catalog.
// Responses are not cached and failed calls are not retried.
type MealDBService struct {
	baseURL string
	client  *http.Client
}

var _ IMealDBService = (*MealDBService)(nil)

func NewMealDBService(baseURL string) *MealDBService {
	return &MealDBService{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetRandom returns one random catalog recipe.
func (s *MealDBService) GetRandom(ctx context.Context) (*Meal, error) {
	meals, err := s.get(ctx, "/random.php", nil)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, ErrRecipeNotFound
	}
	m := toMeal(meals[0])
	return &m, nil
}

// ListCategories returns the catalog's category names.
func (s *MealDBService) ListCategories(ctx context.Context) ([]string, error) {
	meals, err := s.get(ctx, "/list.php", url.Values{"c": {"list"}})
	if err != nil {
		return nil, err
	}

	list := make([]string, 0, len(meals))
	for _, m := range meals {
		list = append(list, m.StrCategory)
	}
	return list, nil
}

// ListAreas returns the catalog's area names.
func (s *MealDBService) ListAreas(ctx context.Context) ([]string, error) {
	meals, err := s.get(ctx, "/list.php", url.Values{"a": {"list"}})
	if err != nil {
		return nil, err
	}

	list := make([]string, 0, len(meals))
	for _, m := range meals {
		list = append(list, m.StrArea)
	}
	return list, nil
}

// GetByID looks up one catalog recipe by its external id.
func (s *MealDBService) GetByID(ctx context.Context, id int) (*Meal, error) {
	meals, err := s.get(ctx, "/lookup.php", url.Values{"i": {strconv.Itoa(id)}})
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, ErrRecipeNotFound
	}
	m := toMeal(meals[0])
	return &m, nil
}

// FilterByCategory lists catalog recipes in a category.
func (s *MealDBService) FilterByCategory(ctx context.Context, category string) ([]Meal, error) {
	return s.filter(ctx, url.Values{"c": {category}})
}

// FilterByArea lists catalog recipes from an area.
func (s *MealDBService) FilterByArea(ctx context.Context, area string) ([]Meal, error) {
	return s.filter(ctx, url.Values{"a": {area}})
}

// FilterByIngredient lists catalog recipes containing an ingredient.
func (s *MealDBService) FilterByIngredient(ctx context.Context, ingredient string) ([]Meal, error) {
	return s.filter(ctx, url.Values{"i": {ingredient}})
}

func (s *MealDBService) filter(ctx context.Context, query url.Values) ([]Meal, error) {
	meals, err := s.get(ctx, "/filter.php", query)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, ErrRecipeNotFound
	}

	result := make([]Meal, 0, len(meals))
	for _, m := range meals {
		result = append(result, toMeal(m))
	}
	return result, nil
}

func (s *MealDBService) get(ctx context.Context, path string, query url.Values) ([]mealDBMeal, error) {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recipe catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe catalog returned status %d", resp.StatusCode)
	}

	var body mealDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode recipe catalog response: %w", err)
	}

	return body.Meals, nil
}

func toMeal(m mealDBMeal) Meal {
	// The catalog serves ids as numeric strings.
	id, _ := strconv.Atoi(m.IDMeal)
	return Meal{
		ID:          id,
		Name:        m.StrMeal,
		Category:    m.StrCategory,
		Area:        m.StrArea,
		Instruction: m.StrInstructions,
		Image:       m.StrMealThumb,
	}
}
