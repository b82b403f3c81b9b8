package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/budgetbuddy/bb_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses using the standard error
// envelope. Unrecognized errors become a 500 with the fallback message so
// internal detail never leaks to the client.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Error("Bad Request", err.Error()))
	case errors.Is(err, apperrors.ErrMalformedRecord):
		// Stored data failed aggregation checks; the request itself was fine.
		logger.Error("Malformed record encountered", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, dto.Error("Unprocessable Entity", fallback))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized", err.Error()))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Error("Forbidden", err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Error("Not Found", fallback))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Error("Conflict", err.Error()))
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Internal Server Error", fallback))
	}
}

// respondBindError reports a request binding failure.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Error("Bad Request", "Invalid request format: "+err.Error()))
}

// mustUserID extracts the authenticated user ID, aborting with 401 when the
// auth middleware did not run.
func mustUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized", "Authentication required."))
		return "", false
	}
	return userID, true
}
