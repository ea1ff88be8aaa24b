package session

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magangkita/admin-console-go/internal/domain/user"
)

var tokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func encodeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	_, token, err := tokenAuth.Encode(claims)
	require.NoError(t, err)
	return token
}

func TestFromToken_ReadsClaims(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := encodeToken(t, map[string]any{
		"user_id": "u1",
		"name":    "Andi Pratama",
		"email":   "andi@magang.id",
		"role":    "admin",
		"exp":     exp.Unix(),
	})

	s, err := FromToken(raw)
	require.NoError(t, err)

	c := s.Claims()
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "Andi Pratama", c.Name)
	assert.Equal(t, "andi@magang.id", c.Email)
	assert.Equal(t, user.RoleAdmin, c.Role)
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.Equal(t, raw, s.Token())
}

func TestFromToken_SubjectFallback(t *testing.T) {
	t.Parallel()

	raw := encodeToken(t, map[string]any{
		"sub":  "u2",
		"role": "user",
	})

	s, err := FromToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "u2", s.Claims().UserID)
}

func TestFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := FromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()

	live, err := FromToken(encodeToken(t, map[string]any{"role": "admin", "exp": now.Add(time.Hour).Unix()}))
	require.NoError(t, err)
	assert.False(t, live.Expired(now))

	dead, err := FromToken(encodeToken(t, map[string]any{"role": "admin", "exp": now.Add(-time.Hour).Unix()}))
	require.NoError(t, err)
	assert.True(t, dead.Expired(now))

	eternal, err := FromToken(encodeToken(t, map[string]any{"role": "admin"}))
	require.NoError(t, err)
	assert.False(t, eternal.Expired(now), "no exp claim means no client-side expiry")
}

func TestLandingPath(t *testing.T) {
	t.Parallel()

	now := time.Now()
	future := now.Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims map[string]any
		want   string
	}{
		{"admin", map[string]any{"role": "admin", "exp": future}, "/admin/dashboard"},
		{"supervisor", map[string]any{"role": "supervisor", "exp": future}, "/dashboard"},
		{"intern", map[string]any{"role": "user", "exp": future}, "/dashboard"},
		{"unknown role", map[string]any{"role": "accountant", "exp": future}, "/login"},
		{"no role", map[string]any{"exp": future}, "/login"},
		{"expired admin", map[string]any{"role": "admin", "exp": now.Add(-time.Minute).Unix()}, "/login"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := FromToken(encodeToken(t, tc.claims))
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.LandingPath(now))
		})
	}

	var nilSession *Session
	assert.Equal(t, "/login", nilSession.LandingPath(now))
}
