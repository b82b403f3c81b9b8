package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/core/services"
	"github.com/budgetbuddy/bb_backend/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-access-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "budgetbuddy-test",
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
}

type TokenServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.TokenSvcFacade
	user         *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTokenService(testConfig(), suite.mockUserRepo)
	suite.user = &domain.User{UserID: uuid.NewString(), Email: "person@example.com"}
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken() {
	ctx := context.Background()

	signed, expiresAt, err := suite.service.GenerateAccessToken(ctx, suite.user)

	suite.Require().NoError(err)
	suite.NotEmpty(signed)
	suite.True(expiresAt.After(time.Now()))

	token, err := jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-access-secret"), nil
	})
	suite.Require().NoError(err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	suite.Equal(suite.user.UserID, claims.Subject)
	suite.Equal("budgetbuddy-test", claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestRefreshTokenRoundTrip() {
	ctx := context.Background()

	var storedHash string
	var storedExpiry time.Time
	suite.mockUserRepo.UpdateRefreshTokenFn = func(_ context.Context, userID string, hash string, expiry time.Time) error {
		suite.Equal(suite.user.UserID, userID)
		storedHash = hash
		storedExpiry = expiry
		return nil
	}

	signed, _, err := suite.service.GenerateRefreshToken(ctx, suite.user)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(storedHash)
	suite.NotEqual(signed, storedHash)

	suite.mockUserRepo.FindUserByIDFn = func(_ context.Context, userID string) (*domain.User, error) {
		u := *suite.user
		u.RefreshTokenHash = storedHash
		u.RefreshTokenExpiry = &storedExpiry
		return &u, nil
	}

	found, err := suite.service.ValidateAndParseRefreshToken(ctx, signed)

	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, found.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_RejectsRotatedToken() {
	ctx := context.Background()

	suite.mockUserRepo.UpdateRefreshTokenFn = func(_ context.Context, _ string, _ string, _ time.Time) error {
		return nil
	}

	signed, _, err := suite.service.GenerateRefreshToken(ctx, suite.user)
	suite.Require().NoError(err)

	// A different hash is stored, as after a newer token was issued.
	expiry := time.Now().Add(time.Hour)
	suite.mockUserRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		u := *suite.user
		u.RefreshTokenHash = "some-other-hash"
		u.RefreshTokenExpiry = &expiry
		return &u, nil
	}

	found, err := suite.service.ValidateAndParseRefreshToken(ctx, signed)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_RejectsRevokedToken() {
	ctx := context.Background()

	suite.mockUserRepo.UpdateRefreshTokenFn = func(_ context.Context, _ string, _ string, _ time.Time) error {
		return nil
	}

	signed, _, err := suite.service.GenerateRefreshToken(ctx, suite.user)
	suite.Require().NoError(err)

	// Logout cleared the stored hash.
	suite.mockUserRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		u := *suite.user
		return &u, nil
	}

	found, err := suite.service.ValidateAndParseRefreshToken(ctx, signed)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_RejectsGarbage() {
	ctx := context.Background()

	found, err := suite.service.ValidateAndParseRefreshToken(ctx, "not-a-jwt")

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	authService  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	cfg := testConfig()
	userService := services.NewUserService(suite.mockUserRepo)
	tokenService := services.NewTokenService(cfg, suite.mockUserRepo)
	suite.authService = services.NewAuthService(userService, tokenService, suite.mockUserRepo)
}

func (suite *AuthServiceTestSuite) TestLogout() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("ClearRefreshToken", ctx, userID).Return(nil).Once()

	err := suite.authService.Logout(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
