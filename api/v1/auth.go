package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/services"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates the configured credential pair and returns an access
// token. Any mismatch is a 401; no token is issued.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	response, err := ac.authService.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, response)
}
