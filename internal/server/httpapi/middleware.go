package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/hytex/classroom-server/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

const bearerScheme = "Bearer"

// Authenticate extracts the bearer access token from the Authorization
// header, verifies it, and attaches the decoded claims to the request
// context. A missing header or token segment yields 401; any verification
// failure (expired, bad signature, malformed) collapses into a single 403
// so callers cannot distinguish the failure mode.
func (s *HTTPServer) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
			respondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		claims, err := s.tokens.VerifyAccessToken(parts[1])
		if err != nil {
			respondError(w, http.StatusForbidden, msgForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route on the authenticated identity's role. It must
// be composed after Authenticate; without prior authentication there are no
// claims in the context and every request is rejected.
func (s *HTTPServer) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil || claims.Role != role {
				respondError(w, http.StatusForbidden, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext returns the claims attached by Authenticate, or nil.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
