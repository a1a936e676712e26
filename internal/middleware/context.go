package middleware

import (
	"context"

	"lokapasar-be/internal/rbac"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
	userRoleKey contextKey = "role"
	tokenKey    contextKey = "access_token"
)

// SetUserContext stores the authenticated identity for downstream handlers.
func SetUserContext(ctx context.Context, userID, username string, role rbac.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, usernameKey, username)
	ctx = context.WithValue(ctx, userRoleKey, role)
	return ctx
}

func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func UsernameFrom(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

func RoleFrom(ctx context.Context) rbac.Role {
	role, _ := ctx.Value(userRoleKey).(rbac.Role)
	return role
}

func withToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom returns the raw bearer token of the current request, used by the
// logout handler to revoke it.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
