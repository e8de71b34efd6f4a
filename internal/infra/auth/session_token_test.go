package auth

import (
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) *sessionTokenService {
	t.Helper()

	// Built directly so tests can use a negative ttl to mint expired tokens.
	return &sessionTokenService{secret: secret, ttl: ttl}
}

func TestSessionTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	info := entity.UserInfo{UserID: 42, Username: "alice", CartCount: 3}
	token, err := svc.Issue(info)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, info, got)
	assert.True(t, got.IsAuthenticated())
}

func TestSessionTokenService_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t, "secret-a", time.Hour)
	other := newTestTokenService(t, "secret-b", time.Hour)

	token, err := svc.Issue(entity.UserInfo{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionTokenService_RejectsExpired(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", -time.Minute)

	token, err := svc.Issue(entity.UserInfo{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionTokenService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestNewSessionTokenService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewSessionTokenService(cfg)
	assert.Error(t, err)
}
