package handlers

import (
	"net/http"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/budgetbuddy/bb_backend/internal/middleware"
	"github.com/budgetbuddy/bb_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles authentication requests.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	oauthService portssvc.OAuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade, os portssvc.OAuthSvcFacade) *authHandler {
	return &authHandler{
		authService:  as,
		oauthService: os,
	}
}

// registerAuthRoutes sets up the public authentication routes with IP rate
// limiting.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.OAuth)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("20-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth", middleware.RateLimit(ipLimiter))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/oauth/exchange-code", h.exchangeCode)
	}
}

// registerLogoutRoute attaches logout to the authenticated group; it needs
// the user identity from the access token.
func registerLogoutRoute(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService, nil)
	rg.POST("/auth/logout", h.logout)
}

// register godoc
// @Summary Register a new account
// @Description Creates an email/password account and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 409 {object} dto.ErrorEnvelope
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokens, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}
	c.JSON(http.StatusCreated, dto.OK(tokens))
}

// login godoc
// @Summary Log in
// @Description Verifies credentials and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, dto.OK(tokens))
}

// refresh godoc
// @Summary Refresh tokens
// @Description Rotates a refresh token into a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err, "Failed to refresh tokens")
		return
	}
	c.JSON(http.StatusOK, dto.OK(tokens))
}

// exchangeCode godoc
// @Summary Exchange an OAuth authorization code
// @Description Completes Google or GitHub sign-in and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeCodeRequest true "Provider and authorization code"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Router /auth/oauth/exchange-code [post]
func (h *authHandler) exchangeCode(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokens, err := h.oauthService.ExchangeCode(c.Request.Context(), domain.AuthProvider(req.Provider), req.Code)
	if err != nil {
		respondError(c, err, "Failed to complete sign-in")
		return
	}
	c.JSON(http.StatusOK, dto.OK(tokens))
}

// logout godoc
// @Summary Log out
// @Description Invalidates the user's refresh token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "Logged out"}))
}
