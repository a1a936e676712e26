package rest

import (
	"net/http"

	"lokapasar-be/internal/middleware"
	"lokapasar-be/internal/rbac"
)

// requireAction gates a route subtree on the rbac policy. Anonymous requests
// get 401, authenticated ones outside the policy get 403.
func requireAction(action rbac.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := middleware.UserIDFrom(r.Context()); !ok {
				respondError(w, http.StatusUnauthorized, "authentication required", "")
				return
			}
			if !rbac.Allow(middleware.RoleFrom(r.Context()), action) {
				respondError(w, http.StatusForbidden, "insufficient role", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth only demands a valid identity, any role.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserIDFrom(r.Context()); !ok {
			respondError(w, http.StatusUnauthorized, "authentication required", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}
