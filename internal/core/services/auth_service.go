package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/budgetbuddy/bb_backend/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenService implements the TokenSvcFacade interface. Access tokens are
// short-lived HMAC JWTs; refresh tokens are longer-lived JWTs signed with a
// separate secret, with only their hash stored server-side.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Ensure tokenService implements the TokenSvcFacade interface.
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken issues a signed access token for the user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// GenerateRefreshToken issues a refresh token and stores its hash against
// the user. Issuing a new refresh token invalidates the previous one.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.RefreshTokenSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, hashToken(signed), expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token hash: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAndParseRefreshToken verifies a refresh token's signature, expiry
// and stored hash, and returns the owning user.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, refreshTokenString string) (*domain.User, error) {
	token, err := jwt.ParseWithClaims(refreshTokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.RefreshTokenSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: invalid refresh token claims", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: refresh token user not found", apperrors.ErrUnauthorized)
	}

	// The token must match the latest issued one and not be revoked.
	if user.RefreshTokenHash == "" || user.RefreshTokenExpiry == nil || time.Now().After(*user.RefreshTokenExpiry) {
		return nil, fmt.Errorf("%w: refresh token revoked or expired", apperrors.ErrUnauthorized)
	}
	if subtle.ConstantTimeCompare([]byte(user.RefreshTokenHash), []byte(hashToken(refreshTokenString))) != 1 {
		return nil, fmt.Errorf("%w: refresh token mismatch", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// hashToken produces the storable digest of a refresh token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// authService implements the AuthSvcFacade interface by composing the user
// and token services.
type authService struct {
	BaseService
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	userRepo     portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		userService:  userService,
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// Ensure authService implements the AuthSvcFacade interface.
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a local account and issues a token pair.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	user, err := s.userService.CreateLocalUser(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issueTokenPair(ctx, user)
}

// Login verifies credentials and issues a token pair.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userService.AuthenticateLocalUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("login_user_id", user.UserID))
	return s.issueTokenPair(ctx, user)
}

// Refresh rotates a refresh token into a new token pair.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	user, err := s.tokenService.ValidateAndParseRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return s.issueTokenPair(ctx, user)
}

// Logout invalidates the user's refresh token. The access token stays valid
// until expiry; clients are expected to discard it.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	s.LogInfo(ctx, "User logged out")
	return nil
}

// issueTokenPair generates the access/refresh pair for a user.
func (s *authService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return nil, err
	}
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token")
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}
