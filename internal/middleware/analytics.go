package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// untrackedPaths are never reported as analytics events.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// APIEventTracker is the part of the analytics client the middleware needs.
type APIEventTracker interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// TrackAPIEvents reports successful authenticated API calls as analytics
// events keyed on the user ID. Failed requests and requests without an
// authenticated user are not tracked.
func TrackAPIEvents(tracker APIEventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// Event name from the route template, e.g.
		// "/api/v1/transactions/:id" -> "api_v1_transactions_:id".
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		tracker.Enqueue(userID, eventName, props)
	}
}
