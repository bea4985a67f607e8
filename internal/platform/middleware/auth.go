package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daxp472/CMS/pkg/requestcontext"
)

// PrincipalValidator validates a bearer token and yields the principal it
// certifies. Implemented by the auth service, which also consults the token
// revocation list.
type PrincipalValidator interface {
	ValidatePrincipal(ctx context.Context, token string) (requestcontext.PrincipalInfo, error)
}

// RequireAuth validates the Authorization header and places the principal in
// the request context. Requests without a valid token never reach handlers.
func RequireAuth(validator PrincipalValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok || token == "" {
				unauthorized(w, r, logger, "missing or invalid Authorization header")
				return
			}

			principal, err := validator.ValidatePrincipal(r.Context(), token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(r.Context()),
				)
				unauthorized(w, r, logger, "invalid or expired token")
				return
			}

			ctx := requestcontext.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(`{"error":"unauthorized","reason":"` + reason + `"}`)); err != nil {
		logger.ErrorContext(r.Context(), "failed to write unauthorized response", "error", err)
	}
}
