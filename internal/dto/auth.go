package dto

import "time"

// RegisterRequest defines the body for email/password registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the body for email/password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest defines the body for refresh-token rotation.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ExchangeCodeRequest defines the body for the OAuth code exchange endpoint.
type ExchangeCodeRequest struct {
	Provider string `json:"provider" binding:"required,oneof=google github"`
	Code     string `json:"code" binding:"required"`
}

// TokenResponse carries a freshly issued token pair and the user it belongs to.
type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}
