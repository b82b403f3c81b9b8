package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// defaultCurrency is assigned to new accounts until the user picks one.
const defaultCurrency = "USD"

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: repo,
	}
}

// Ensure userService implements the UserSvcFacade interface.
var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user's profile.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateProfile applies a partial update to the user's profile.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
		}
		existing.Name = name
	}
	if req.Currency != nil {
		existing.Currency = *req.Currency
	}
	if req.MonthlyBudget != nil {
		if req.MonthlyBudget.IsNegative() {
			return nil, fmt.Errorf("%w: monthly budget must not be negative", apperrors.ErrValidation)
		}
		existing.MonthlyBudget = *req.MonthlyBudget
	}
	existing.LastUpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update user profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.LogInfo(ctx, "User profile updated")
	return existing, nil
}

// CreateLocalUser registers a new email/password account.
func (s *userService) CreateLocalUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: an account with this email already exists", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:        uuid.NewString(),
		Name:          strings.TrimSpace(name),
		Email:         email,
		AuthProvider:  domain.ProviderLocal,
		PasswordHash:  string(hash),
		Currency:      defaultCurrency,
		MonthlyBudget: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("new_user_id", user.UserID))
	return &user, nil
}

// AuthenticateLocalUser verifies email/password credentials. A wrong email
// and a wrong password produce the same error so the response does not leak
// which accounts exist.
func (s *userService) AuthenticateLocalUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, fmt.Errorf("%w: this account uses %s sign-in", apperrors.ErrUnauthorized, user.AuthProvider)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// FindOrCreateOAuthUser returns the account linked to the provider identity,
// creating it on first sign-in.
func (s *userService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, name, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up OAuth user: %w", err)
	}

	now := time.Now().UTC()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Name:           strings.TrimSpace(name),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		Currency:       defaultCurrency,
		MonthlyBudget:  decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save OAuth user", slog.String("provider", string(provider)))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "OAuth user created",
		slog.String("new_user_id", newUser.UserID),
		slog.String("provider", string(provider)))
	return &newUser, nil
}
