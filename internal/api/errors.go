package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joannadeng/49.capstone-project-backend/internal/database"
	"github.com/joannadeng/49.capstone-project-backend/internal/service"
)

// writeError emits the uniform error body: {"error": {"message", "status"}}.
func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{"message": message, "status": status},
	})
}

// handleError maps domain errors to HTTP statuses at the route boundary.
// Anything unrecognized is logged and surfaced as a bare 500; internal
// details never reach the client.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		writeError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, database.ErrNoFields):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSavedRecipeNotFound),
		errors.Is(err, service.ErrCreatedRecipeNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRecipeNotFound):
		// The catalog reports "no such recipe" as a bad request, matching
		// its own empty-result semantics.
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
