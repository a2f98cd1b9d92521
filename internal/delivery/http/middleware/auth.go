package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "techfest/internal/delivery/http/helpers"
	"techfest/internal/domain"
)

type contextKey string

const adminKey contextKey = "admin"

// SetAdmin returns a context with the authenticated admin username set.
func SetAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey, username)
}

// AdminFromContext returns the authenticated admin username, if present.
func AdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminKey).(string)
	return username, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// admin username in the request context. If the token is missing or invalid,
// it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			username, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetAdmin(r.Context(), username))
			next(w, r)
		}
	}
}
