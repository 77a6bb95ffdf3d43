package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sweetshop-api/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents signup data
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string         `json:"token"`
	Profile   models.Profile `json:"profile"`
	ExpiresAt time.Time      `json:"expiresAt"`
}
