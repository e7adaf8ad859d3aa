package auth

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"accounts/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, expiry time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{
		JWT: &config.JWTConfig{
			Secret: "test_session_secret_key_very_long_for_testing",
			Expiry: expiry,
		},
	}

	svc, err := NewJWTService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	concrete, ok := svc.(*jwtService)
	require.True(t, ok)

	return concrete
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestSessionService(t, time.Hour)

	userID := uuid.New()
	email := "user@example.com"

	token, err := svc.Issue(userID, email)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_VerifyMalformedToken(t *testing.T) {
	svc := newTestSessionService(t, time.Hour)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyTamperedToken(t *testing.T) {
	svc := newTestSessionService(t, time.Hour)

	token, err := svc.Issue(uuid.New(), "user@example.com")
	assert.NoError(t, err)

	// Flip the signature segment.
	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	parts[2] = strings.Repeat("A", len(parts[2]))
	tampered := strings.Join(parts, ".")

	claims, err := svc.Verify(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	svc := newTestSessionService(t, -time.Minute)

	token, err := svc.Issue(uuid.New(), "user@example.com")
	assert.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer := newTestSessionService(t, time.Hour)

	other := &config.Config{
		JWT: &config.JWTConfig{
			Secret: "a_completely_different_secret_key_for_testing",
			Expiry: time.Hour,
		},
	}
	verifier, err := NewJWTService(other, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "user@example.com")
	assert.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecretFallsBack(t *testing.T) {
	cfg := &config.Config{
		JWT: &config.JWTConfig{Expiry: time.Hour},
	}

	svc, err := NewJWTService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	// Tokens issued with the fallback secret still round-trip.
	token, err := svc.Issue(uuid.New(), "user@example.com")
	assert.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestJWTService_MissingConfig(t *testing.T) {
	_, err := NewJWTService(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
