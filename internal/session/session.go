// Package session holds the signed-in admin's bearer token and the claims the
// console needs for routing. Tokens are decoded without signature
// verification: the backend is the authority, the client only reads role and
// expiry.
package session

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/magangkita/admin-console-go/internal/domain/user"
)

type Claims struct {
	UserID    string
	Name      string
	Email     string
	Role      user.Role
	ExpiresAt time.Time
}

type Session struct {
	token  string
	claims Claims
}

// FromToken decodes a bearer token into a session.
func FromToken(raw string) (*Session, error) {
	tok, err := jwt.ParseInsecure([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	c := Claims{
		UserID:    tok.Subject(),
		ExpiresAt: tok.Expiration(),
	}
	if v, ok := tok.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			c.UserID = s
		}
	}
	if v, ok := tok.Get("name"); ok {
		if s, ok := v.(string); ok {
			c.Name = s
		}
	}
	if v, ok := tok.Get("email"); ok {
		if s, ok := v.(string); ok {
			c.Email = s
		}
	}
	if v, ok := tok.Get("role"); ok {
		if s, ok := v.(string); ok {
			c.Role = user.Role(s)
		}
	}

	return &Session{token: raw, claims: c}, nil
}

// Token returns the raw bearer token, for the API client's token source.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

func (s *Session) Claims() Claims {
	return s.claims
}

// Expired reports whether the token's expiry has passed. Tokens without an
// exp claim never expire client-side.
func (s *Session) Expired(now time.Time) bool {
	return !s.claims.ExpiresAt.IsZero() && now.After(s.claims.ExpiresAt)
}

// LandingPath decides where a signed-in user is routed after login: admins to
// the admin console, everyone else to the intern dashboard, and expired or
// roleless sessions back to login.
func (s *Session) LandingPath(now time.Time) string {
	if s == nil || s.Expired(now) {
		return "/login"
	}
	switch s.claims.Role {
	case user.RoleAdmin:
		return "/admin/dashboard"
	case user.RoleSupervisor, user.RoleIntern:
		return "/dashboard"
	default:
		return "/login"
	}
}
