package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

func signedToken(t *testing.T, claims models.TokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return token
}

func TestStartReadsClaimsWithoutKey(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, models.TokenClaims{
		UserID:           7,
		Role:             models.RoleTeacher,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	})

	s := New()
	require.NoError(t, s.Start(models.LoginResponse{Token: token, User: models.UserProfile{Name: "Laura"}}))

	assert.True(t, s.Authenticated())
	assert.Equal(t, token, s.Token())
	assert.Equal(t, int64(7), s.User().ID)
	assert.Equal(t, models.RoleTeacher, s.Role())
	assert.False(t, s.IsAdmin())
	assert.True(t, exp.Equal(s.ExpiresAt()))
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(exp.Add(time.Second)))
}

func TestStartPrefersProfileOverClaims(t *testing.T) {
	token := signedToken(t, models.TokenClaims{UserID: 7, Role: models.RoleStudent})

	s := New()
	require.NoError(t, s.Start(models.LoginResponse{Token: token, User: models.UserProfile{ID: 1, Role: models.RoleAdmin}}))
	assert.Equal(t, int64(1), s.User().ID)
	assert.True(t, s.IsAdmin())
}

func TestStartAcceptsOpaqueToken(t *testing.T) {
	s := New()
	require.NoError(t, s.Start(models.LoginResponse{Token: "opaque", User: models.UserProfile{ID: 2, Role: models.RoleStudent}}))
	assert.True(t, s.ExpiresAt().IsZero())
	assert.False(t, s.Expired(time.Now()))
	assert.Equal(t, models.RoleStudent, s.Role())
}

func TestStartOnlyOnce(t *testing.T) {
	s := New()
	require.NoError(t, s.Start(models.LoginResponse{Token: "a", User: models.UserProfile{ID: 1}}))
	err := s.Start(models.LoginResponse{Token: "b"})
	assert.ErrorIs(t, err, appErrors.ErrSessionActive)
	assert.Equal(t, "a", s.Token())
}

func TestStartRequiresToken(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Start(models.LoginResponse{}), appErrors.ErrUnauthorized)
	assert.False(t, s.Authenticated())
}
