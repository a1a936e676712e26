package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)

	token, err := m.Issue("u-1", "budi", "buyer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "budi", claims.Subject)
	assert.Equal(t, "buyer", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestManager_VerifyFailsClosed(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)

	t.Run("EmptyToken", func(t *testing.T) {
		_, err := m.Verify("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		_, err := m.Verify("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewManager("other-secret", 30*time.Minute)
		token, err := other.Issue("u-1", "budi", "buyer")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewManager("test-secret", 30*time.Minute)
		expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := expired.Issue("u-1", "budi", "buyer")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestManager_DefaultTTL(t *testing.T) {
	m := NewManager("test-secret", 0)
	assert.Equal(t, 30*time.Minute, m.ttl)
}

func TestManager_Revoke(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)

	token, err := m.Issue("u-1", "budi", "buyer")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.NoError(t, err)

	m.Revoke(token)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Other tokens for the same user stay valid.
	token2, err := m.Issue("u-1", "budi", "buyer")
	require.NoError(t, err)
	_, err = m.Verify(token2)
	assert.NoError(t, err)
}

func TestManager_RevokeMalformedIsNoop(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)
	m.Revoke("garbage")

	token, err := m.Issue("u-1", "budi", "buyer")
	require.NoError(t, err)
	_, err = m.Verify(token)
	assert.NoError(t, err)
}

func TestBlacklist_ExpiredEntryNotRevoked(t *testing.T) {
	b := NewBlacklist()
	b.Revoke("jti-1", time.Now().Add(-time.Minute))
	assert.False(t, b.IsRevoked("jti-1"))

	b.Revoke("jti-2", time.Now().Add(time.Minute))
	assert.True(t, b.IsRevoked("jti-2"))
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("FromHeader", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer abc123")
		assert.Equal(t, "abc123", ExtractAccessToken(r))
	})

	t.Run("FromCookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		assert.Equal(t, "cookie-token", ExtractAccessToken(r))
	})

	t.Run("CookiePreferredOverHeader", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "cookie-token", ExtractAccessToken(r))
	})

	t.Run("Missing", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		assert.Equal(t, "", ExtractAccessToken(r))
	})
}
