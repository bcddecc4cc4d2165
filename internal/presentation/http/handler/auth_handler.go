package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dillkhus/cafe-pos/internal/application/service"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/dto/request"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/dto/response"
)

// AuthHandler handles staff authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates the staff account and returns an access token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}
