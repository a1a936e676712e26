package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity embedded in an access token.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies signed access tokens. Revoked tokens are
// tracked in an in-process blacklist; logout does not survive restarts.
type Manager struct {
	secret    []byte
	ttl       time.Duration
	blacklist *Blacklist
	now       func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Manager{
		secret:    []byte(secret),
		ttl:       ttl,
		blacklist: NewBlacklist(),
		now:       time.Now,
	}
}

// Issue creates a signed token for the given user. The jti claim uniquely
// identifies the token so it can be revoked on logout.
func (m *Manager) Issue(userID, username, role string) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("jwt secret is not set")
	}

	now := m.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token. It fails closed: signature mismatch,
// malformed payload, expiry, or revocation all return ErrInvalidToken.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" || len(m.secret) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secret, nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if m.blacklist.IsRevoked(revocationKey(claims, tokenStr)) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Revoke blacklists a token until its natural expiry. Malformed tokens are
// ignored; there is nothing to revoke.
func (m *Manager) Revoke(tokenStr string) {
	claims, err := m.Verify(tokenStr)
	if err != nil {
		return
	}

	expiry := m.now().Add(m.ttl)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	m.blacklist.Revoke(revocationKey(claims, tokenStr), expiry)
}

// revocationKey prefers the jti claim, falling back to the raw token when
// no identifier claim is present.
func revocationKey(claims *Claims, raw string) string {
	if claims.ID != "" {
		return claims.ID
	}
	return raw
}
