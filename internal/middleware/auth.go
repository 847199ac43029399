package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joannadeng/49.capstone-project-backend/internal/types"
)

// Context keys set by AuthMiddleware.
const (
	ContextUsernameKey = "username"
	ContextIsAdminKey  = "is_admin"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates bearer tokens and
// stashes the caller's identity in the context. It rejects before the
// request body is read and before any store access.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin only passes callers whose token carries the admin flag. It
// must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdminKey) {
			forbidden(c)
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin passes callers acting on their own :username path, or
// admins acting on anyone. It must run after AuthMiddleware.
func RequireSelfOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString(ContextUsernameKey)
		if username == "" {
			unauthorized(c, "missing authorization header")
			return
		}
		if username != c.Param("username") && !c.GetBool(ContextIsAdminKey) {
			forbidden(c)
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"message": message, "status": http.StatusUnauthorized},
	})
}

func forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error": gin.H{"message": "insufficient permissions", "status": http.StatusForbidden},
	})
}
