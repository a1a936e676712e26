package middleware

import (
	"net/http"

	"lokapasar-be/internal/auth"
	"lokapasar-be/internal/rbac"
)

// AuthMiddleware verifies the bearer token, when present, and stores the
// identity in the request context. Requests without a valid token pass
// through unauthenticated; individual routes decide whether to require one.
func AuthMiddleware(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := SetUserContext(r.Context(), claims.UserID, claims.Subject, rbac.Role(claims.Role))
			ctx = withToken(ctx, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
