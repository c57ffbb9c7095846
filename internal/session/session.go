// Package session holds the authenticated token and profile for the lifetime
// of the process.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// Session is set once after login and read by every screen.
type Session struct {
	mu        sync.RWMutex
	token     string
	user      models.UserProfile
	expiresAt time.Time
	started   bool
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Start stores the login result. A session can only be started once; the
// token is inspected without verification since the client holds no key.
func (s *Session) Start(resp models.LoginResponse) error {
	if resp.Token == "" {
		return appErrors.Clone(appErrors.ErrUnauthorized, "login response carried no token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return appErrors.ErrSessionActive
	}

	user := resp.User
	var expiresAt time.Time
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.Token, claims); err == nil {
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		if user.Role == "" {
			user.Role = claims.Role
		}
		if user.ID == 0 {
			user.ID = claims.UserID
		}
	}

	s.token = resp.Token
	s.user = user
	s.expiresAt = expiresAt
	s.started = true
	return nil
}

// Authenticated reports whether a login has completed.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Token returns the bearer token, empty before login.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the authenticated profile.
func (s *Session) User() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Role returns the role of the authenticated user.
func (s *Session) Role() models.Role {
	return s.User().Role
}

// IsAdmin reports whether the authenticated user is an administrator.
func (s *Session) IsAdmin() bool {
	return s.Role() == models.RoleAdmin
}

// ExpiresAt returns the token expiry, zero when unknown.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Expired reports whether the token expiry has passed. Tokens without a known
// expiry never expire client side.
func (s *Session) Expired(now time.Time) bool {
	exp := s.ExpiresAt()
	return !exp.IsZero() && !now.Before(exp)
}
