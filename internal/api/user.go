package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joannadeng/49.capstone-project-backend/internal/service"
	"github.com/joannadeng/49.capstone-project-backend/internal/types"
)

// UserHandler serves the account endpoints and the per-user saved- and
// created-recipe collections. Authorization guards are attached per route in
// the router; handlers only see requests that already passed them.
type UserHandler struct {
	userService service.IUserService
	authService service.IAuthService
}

func NewUserHandler(userService service.IUserService, authService service.IAuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// Create handles POST /users (admin only). Unlike self-registration the
// created user may be an admin.
func (h *UserHandler) Create(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// List handles GET /users (admin only).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get handles GET /users/:username and returns the profile together with
// the saved and created recipe collections.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Update handles PATCH /users/:username with a partial field set.
func (h *UserHandler) Update(c *gin.Context) {
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("username"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Delete handles DELETE /users/:username.
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("username")
	if err := h.userService.Remove(c.Request.Context(), username); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

// SaveRecipe handles POST /users/:username/savedRecipe/:id. Saving an
// already-saved recipe is a no-op that returns a null recipe.
func (h *UserHandler) SaveRecipe(c *gin.Context) {
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "recipe id must be an integer")
		return
	}

	entry, err := h.userService.SaveRecipe(c.Request.Context(), c.Param("username"), recipeID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": entry})
}

// ListSavedRecipes handles GET /users/:username/savedRecipe.
func (h *UserHandler) ListSavedRecipes(c *gin.Context) {
	recipes, err := h.userService.ListSavedRecipes(c.Request.Context(), c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// DeleteSavedRecipe handles DELETE /users/:username/savedRecipe/:id.
func (h *UserHandler) DeleteSavedRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid saved recipe id")
		return
	}

	if err := h.userService.RemoveSavedRecipe(c.Request.Context(), c.Param("username"), id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// CreateRecipe handles POST /users/:username/createRecipe.
func (h *UserHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	recipe, err := h.userService.CreateRecipe(c.Request.Context(), c.Param("username"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// GetCreatedRecipe handles GET /users/:username/createRecipe/:id.
func (h *UserHandler) GetCreatedRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	recipe, err := h.userService.GetCreatedRecipe(c.Request.Context(), c.Param("username"), id)
	if err != nil {
		// A missing created recipe reads as a bad request on lookup; this
		// mirrors the API contract this service replaced.
		if errors.Is(err, service.ErrCreatedRecipeNotFound) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// ListCreatedRecipes handles GET /users/:username/createRecipe.
func (h *UserHandler) ListCreatedRecipes(c *gin.Context) {
	recipes, err := h.userService.ListCreatedRecipes(c.Request.Context(), c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// DeleteCreatedRecipe handles DELETE /users/:username/createRecipe/:id.
func (h *UserHandler) DeleteCreatedRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if err := h.userService.RemoveCreatedRecipe(c.Request.Context(), c.Param("username"), id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
