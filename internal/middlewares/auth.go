package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/jwt"
	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
)

// Tokener defines the minimal token interface needed by the auth middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type contextKey struct{}

var userIDKey = contextKey{}

// SetUserIDToContext stores the authenticated principal in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the authenticated principal, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// AuthMiddleware rejects requests without a valid access token and places
// the principal's user ID into the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, claims.UserID)))
		})
	}
}

// OptionalAuthMiddleware places the principal in the context when a valid
// token is present and passes the request through anonymously otherwise.
// Listing and detail endpoints use it so membership flags degrade to false
// for anonymous callers instead of failing.
func OptionalAuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err == nil {
				if claims, err := tokener.GetClaims(ctx, tokenString); err == nil {
					ctx = SetUserIDToContext(ctx, claims.UserID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.APIErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthenticated request",
		Success:    false,
	})
}
