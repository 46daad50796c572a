// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"learning_tracker/internal/model"
	"learning_tracker/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware is a development/testing stand-in for JWT auth: it
// trusts the X-User-ID header and performs no database validation.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "Missing X-User-ID header.", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-User-ID format", "value", userIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "Invalid X-User-ID format.", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
