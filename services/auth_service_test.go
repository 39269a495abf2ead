package services

import (
	"testing"
	"time"

	"github.com/jculp24/thrsty/repository"
	"github.com/jculp24/thrsty/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*AuthService, *TokenBlacklist) {
	t.Helper()
	db := newTestDB(t)
	blacklist := NewTokenBlacklist()
	return NewAuthService(repository.NewUserRepository(db), blacklist, testSecret, time.Hour), blacklist
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Signup("U1@Example.com ", "secret1", "Ada", "Lovelace", "555-0100")
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", user.Email, "email is normalized")
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "secret1", user.Password, "password is hashed")

	token, got, err := svc.Login("u1@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.NotEmpty(t, claims.ID, "session id (jti) is set")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup("u1@example.com", "secret1", "Ada", "Lovelace", "")
	require.NoError(t, err)

	_, err = svc.Signup("u1@example.com", "other", "Grace", "Hopper", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Signup("u1@example.com", "secret1", "Ada", "Lovelace", "")
	require.NoError(t, err)
	_, _, err = svc.Login("u1@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, blacklist := newAuthService(t)

	_, err := svc.Signup("u1@example.com", "secret1", "Ada", "Lovelace", "")
	require.NoError(t, err)
	token, _, err := svc.Login("u1@example.com", "secret1")
	require.NoError(t, err)

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.False(t, blacklist.IsRevoked(claims.ID))

	svc.Logout(claims.ID, claims.ExpiresAt.Time)
	assert.True(t, blacklist.IsRevoked(claims.ID))
}

func TestTokenBlacklist_ExpiredEntriesLapse(t *testing.T) {
	blacklist := NewTokenBlacklist()
	blacklist.Revoke("old", time.Now().Add(-time.Minute))
	assert.False(t, blacklist.IsRevoked("old"), "a revoked entry past its token expiry no longer matters")
}
