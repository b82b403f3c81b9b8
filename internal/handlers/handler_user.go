package handlers

import (
	"net/http"

	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to the user's own profile.
type userHandler struct {
	userService      portssvc.UserSvcFacade
	dashboardService portssvc.DashboardSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, ds portssvc.DashboardSvcFacade) *userHandler {
	return &userHandler{
		userService:      us,
		dashboardService: ds,
	}
}

// registerUserRoutes registers all user-related routes. All routes operate on
// the authenticated user; there is no cross-user access.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, dashboardService portssvc.DashboardSvcFacade) {
	h := newUserHandler(userService, dashboardService)

	users := rg.Group("/users")
	{
		users.GET("/profile", h.getProfile)
		users.PUT("/profile", h.updateProfile)
		users.GET("/stats", h.getStats)
	}
}

// getProfile godoc
// @Summary Get profile
// @Description Retrieves the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorEnvelope
// @Failure 404 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /users/profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}

// updateProfile godoc
// @Summary Update profile
// @Description Applies a partial update to the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /users/profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(updated)))
}

// getStats godoc
// @Summary User statistics
// @Description Aggregates all of the user's transactions into totals and category breakdowns
// @Tags users
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.UserStatsResponse}
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /users/stats [get]
func (h *userHandler) getStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute user statistics")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserStatsResponse(*summary)))
}
