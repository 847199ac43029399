package router

import (
	"github.com/gin-gonic/gin"

	"github.com/joannadeng/49.capstone-project-backend/internal/api"
	"github.com/joannadeng/49.capstone-project-backend/internal/middleware"
)

// SetupRouter configures the application routes. Every protected route
// declares exactly one guard, which runs before body validation and before
// any store access. The rate limiters may be nil, in which case the
// corresponding routes are simply unthrottled.
func SetupRouter(
	healthHandler *api.HealthHandler,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	recipeHandler *api.RecipeHandler,
	imageHandler *api.ImageHandler,
	validator middleware.TokenValidator,
	saveLimiter *middleware.RateLimiter,
	createLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", healthHandler.Check)

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/token", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	// Catalog pass-through, no authentication
	recipes := router.Group("/recipes")
	{
		recipes.GET("/random", recipeHandler.GetRandom)
		recipes.GET("/categories", recipeHandler.ListCategories)
		recipes.GET("/area", recipeHandler.ListAreas)
		recipes.GET("/:id", recipeHandler.GetByID)
		recipes.GET("/categories/:category", recipeHandler.FilterByCategory)
		recipes.GET("/area/:area", recipeHandler.FilterByArea)
		recipes.GET("/ingredient/:ingredient", recipeHandler.FilterByIngredient)
	}

	// Account routes, all behind token validation
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(validator))
	{
		users.POST("", middleware.RequireAdmin(), userHandler.Create)
		users.GET("", middleware.RequireAdmin(), userHandler.List)
		users.GET("/:username", middleware.RequireSelfOrAdmin(), userHandler.Get)
		users.PATCH("/:username", middleware.RequireSelfOrAdmin(), userHandler.Update)
		users.DELETE("/:username", middleware.RequireSelfOrAdmin(), userHandler.Delete)

		users.GET("/:username/createRecipe", middleware.RequireSelfOrAdmin(), userHandler.ListCreatedRecipes)
		users.GET("/:username/createRecipe/:id", middleware.RequireSelfOrAdmin(), userHandler.GetCreatedRecipe)
		users.POST("/:username/createRecipe", limit(createLimiter), userHandler.CreateRecipe)
		users.DELETE("/:username/createRecipe/:id", middleware.RequireSelfOrAdmin(), userHandler.DeleteCreatedRecipe)
		users.POST("/:username/createRecipe/:id/image", middleware.RequireSelfOrAdmin(), imageHandler.Upload)

		users.POST("/:username/savedRecipe/:id", limit(saveLimiter), userHandler.SaveRecipe)
		users.GET("/:username/savedRecipe", middleware.RequireSelfOrAdmin(), userHandler.ListSavedRecipes)
		users.DELETE("/:username/savedRecipe/:id", middleware.RequireSelfOrAdmin(), userHandler.DeleteSavedRecipe)
	}

	return router
}

// limit wraps an optional rate limiter; a nil limiter leaves the chain as a
// logged-in-only guard (any valid token passes, matching the original
// contract of these two routes).
func limit(rl *middleware.RateLimiter) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rl.Middleware()
}
