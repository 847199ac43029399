package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joannadeng/49.capstone-project-backend/internal/service"
	"github.com/joannadeng/49.capstone-project-backend/internal/types"
)

// AuthHandler serves login and self-registration.
type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/token and returns {token}.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register handles POST /auth/register. Self-registration can never mint an
// admin; that path is reserved for the admin-only user-creation endpoint.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &types.CreateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   false,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}
