package dto

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/superwise-ai/TestGenie/models"
)

// TokenClaims represents our JWT claims; Subject carries the user email
type TokenClaims struct {
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response after a successful login
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}
