package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/budgetbuddy/bb_backend/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const githubUserInfoURL = "https://api.github.com/user"

// oauthService implements the OAuthSvcFacade interface for the Google and
// GitHub sign-in flows. The frontend completes the provider consent screen
// and posts the authorization code here.
type oauthService struct {
	BaseService
	googleConfig *oauth2.Config
	githubConfig *oauth2.Config
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewOAuthService creates a new OAuth service configured for both providers.
func NewOAuthService(cfg *config.Config, userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade) portssvc.OAuthSvcFacade {
	return &oauthService{
		googleConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		githubConfig: &oauth2.Config{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		userService:  userService,
		tokenService: tokenService,
	}
}

// Ensure oauthService implements the OAuthSvcFacade interface.
var _ portssvc.OAuthSvcFacade = (*oauthService)(nil)

// ExchangeCode trades an authorization code for the provider identity, finds
// or creates the linked account and issues a token pair.
func (s *oauthService) ExchangeCode(ctx context.Context, provider domain.AuthProvider, code string) (*dto.TokenResponse, error) {
	var (
		providerUserID string
		name           string
		email          string
		err            error
	)

	switch provider {
	case domain.ProviderGoogle:
		providerUserID, name, email, err = s.exchangeGoogle(ctx, code)
	case domain.ProviderGithub:
		providerUserID, name, email, err = s.exchangeGithub(ctx, code)
	default:
		return nil, fmt.Errorf("%w: unsupported OAuth provider %q", apperrors.ErrValidation, provider)
	}
	if err != nil {
		s.LogError(ctx, err, "OAuth code exchange failed", slog.String("provider", string(provider)))
		return nil, err
	}

	user, err := s.userService.FindOrCreateOAuthUser(ctx, provider, providerUserID, name, email)
	if err != nil {
		return nil, err
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "OAuth sign-in completed",
		slog.String("provider", string(provider)),
		slog.String("oauth_user_id", user.UserID))
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// exchangeGoogle validates the Google authorization code and extracts the
// identity from the verified ID token.
func (s *oauthService) exchangeGoogle(ctx context.Context, code string) (string, string, string, error) {
	token, err := s.googleConfig.Exchange(ctx, code)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: google code exchange failed", apperrors.ErrUnauthorized)
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return "", "", "", fmt.Errorf("%w: google token response missing id_token", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.googleConfig.ClientID)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: google id_token validation failed", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	return payload.Subject, name, email, nil
}

// githubUser is the subset of the GitHub user endpoint response we consume.
type githubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// exchangeGithub validates the GitHub authorization code and fetches the
// identity from the user endpoint.
func (s *oauthService) exchangeGithub(ctx context.Context, code string) (string, string, string, error) {
	token, err := s.githubConfig.Exchange(ctx, code)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: github code exchange failed", apperrors.ErrUnauthorized)
	}

	client := s.githubConfig.Client(ctx, token)
	resp, err := client.Get(githubUserInfoURL)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to fetch github user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", "", fmt.Errorf("%w: github user info request returned %d", apperrors.ErrUnauthorized, resp.StatusCode)
	}

	var user githubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", "", "", fmt.Errorf("failed to decode github user info: %w", err)
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}
	return strconv.FormatInt(user.ID, 10), name, user.Email, nil
}
