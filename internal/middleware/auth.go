package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"forumhub/internal/auth"
	"forumhub/internal/httputil"
)

// AuthMiddleware verifies the bearer token on every request and stores the
// actor's identity in the request context. The raw token is kept alongside it
// so the user-directory client can forward the caller's credential.
func AuthMiddleware(verifier auth.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health checks stay unauthenticated
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "authorization header must be a bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Debug("token rejected", "path", r.URL.Path, "error", err)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			r = httputil.WithActor(r, claims.ActorID(), claims.Authority)
			r = r.WithContext(httputil.WithBearerToken(r.Context(), token))

			next.ServeHTTP(w, r)
		})
	}
}
