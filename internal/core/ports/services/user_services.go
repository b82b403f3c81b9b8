package services

import (
	"context"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/budgetbuddy/bb_backend/internal/dto"
)

// UserSvcFacade defines operations for managing user accounts and profiles.
type UserSvcFacade interface {
	// GetUserByID retrieves a user's profile.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile applies a partial update to the user's profile.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// CreateLocalUser registers a new email/password account. The password
	// is hashed before storage; the plaintext is never persisted.
	CreateLocalUser(ctx context.Context, name, email, password string) (*domain.User, error)

	// AuthenticateLocalUser verifies email/password credentials and returns
	// the user, or ErrUnauthorized when they do not match.
	AuthenticateLocalUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateOAuthUser returns the account linked to the provider
	// identity, creating it on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, name, email string) (*domain.User, error)
}
