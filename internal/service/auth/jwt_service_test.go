package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-key-thats-long-enough-for-hmac",
		TokenLifetimeMinutes: 24 * 60,
	}
}

func testUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "irrelevant",
		CreatedAt:      time.Now().UTC(),
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		cfg := testAuthConfig()
		cfg.JWTSecret = "too-short"
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	user := testUser(t)

	token, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.WithinDuration(t,
		claims.IssuedAt.Add(24*time.Hour),
		claims.ExpiresAt,
		time.Second)
}

func TestValidateTokenExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newServiceAt := func(now time.Time) *hmacJWTService {
		svc, err := NewJWTService(testAuthConfig())
		require.NoError(t, err)
		impl := svc.(*hmacJWTService)
		impl.timeFunc = func() time.Time { return now }
		return impl
	}

	issuer := newServiceAt(issuedAt)
	token, err := issuer.GenerateToken(ctx, testUser(t))
	require.NoError(t, err)

	t.Run("accepted one minute before expiry", func(t *testing.T) {
		t.Parallel()
		verifier := newServiceAt(issuedAt.Add(23*time.Hour + 59*time.Minute))
		_, err := verifier.ValidateToken(ctx, token)
		assert.NoError(t, err)
	})

	t.Run("rejected one minute after expiry", func(t *testing.T) {
		t.Parallel()
		verifier := newServiceAt(issuedAt.Add(24*time.Hour + time.Minute))
		_, err := verifier.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestValidateTokenRejectsBadTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		t.Parallel()
		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "another-secret-key-also-long-enough-to-pass"
		other, err := NewJWTService(otherCfg)
		require.NoError(t, err)

		token, err := other.GenerateToken(ctx, testUser(t))
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(ctx, testUser(t))
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + ".eyJzdWIiOiJzb21lb25lLWVsc2UifQ." + parts[2]

		_, err = svc.ValidateToken(ctx, tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
