package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joannadeng/49.capstone-project-backend/internal/service"
)

// RecipeHandler is a thin pass-through to the external recipe catalog. No
// authentication, no caching.
type RecipeHandler struct {
	catalog service.IMealDBService
}

func NewRecipeHandler(catalog service.IMealDBService) *RecipeHandler {
	return &RecipeHandler{catalog: catalog}
}

// GetRandom handles GET /recipes/random.
func (h *RecipeHandler) GetRandom(c *gin.Context) {
	recipe, err := h.catalog.GetRandom(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// ListCategories handles GET /recipes/categories.
func (h *RecipeHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListAreas handles GET /recipes/area.
func (h *RecipeHandler) ListAreas(c *gin.Context) {
	area, err := h.catalog.ListAreas(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"area": area})
}

// GetByID handles GET /recipes/:id.
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "recipe id must be an integer")
		return
	}

	recipe, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// FilterByCategory handles GET /recipes/categories/:category.
func (h *RecipeHandler) FilterByCategory(c *gin.Context) {
	recipes, err := h.catalog.FilterByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// FilterByArea handles GET /recipes/area/:area.
func (h *RecipeHandler) FilterByArea(c *gin.Context) {
	recipes, err := h.catalog.FilterByArea(c.Request.Context(), c.Param("area"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// FilterByIngredient handles GET /recipes/ingredient/:ingredient.
func (h *RecipeHandler) FilterByIngredient(c *gin.Context) {
	recipes, err := h.catalog.FilterByIngredient(c.Request.Context(), c.Param("ingredient"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
