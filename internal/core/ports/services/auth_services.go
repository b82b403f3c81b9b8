package services

import (
	"context"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/budgetbuddy/bb_backend/internal/dto"
)

// TokenSvcFacade defines JWT issuance and refresh-token verification.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken issues a refresh token and stores its hash.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken verifies a refresh token against the
	// stored hash and returns the owning user.
	ValidateAndParseRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}

// AuthSvcFacade defines the authentication flows exposed over HTTP.
type AuthSvcFacade interface {
	// Register creates a local account and issues a token pair.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)

	// Refresh rotates a refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)

	// Logout invalidates the user's refresh token.
	Logout(ctx context.Context, userID string) error
}

// OAuthSvcFacade defines the provider code-exchange flow for Google and
// GitHub sign-in.
type OAuthSvcFacade interface {
	// ExchangeCode trades an authorization code for the provider identity,
	// finds or creates the linked account and issues a token pair.
	ExchangeCode(ctx context.Context, provider domain.AuthProvider, code string) (*dto.TokenResponse, error)
}
