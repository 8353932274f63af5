package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskboard/taskboard-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := domain.NewUser("alice", "alice@example.com", "password123")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "password123", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("normalizes email and trims username", func(t *testing.T) {
		t.Parallel()
		user, err := domain.NewUser("  bob  ", "  Bob@Example.COM ", "password123")
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewUser("", "alice@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewUser("alice", "", "password123")
		assert.ErrorIs(t, err, domain.ErrEmptyEmail)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{"plainaddress", "@no-local.com", "user@", "user@nodot", "user@dotend."} {
			_, err := domain.NewUser("alice", email, "password123")
			assert.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q should be rejected", email)
		}
	})

	t.Run("rejects password longer than 72 characters", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewUser("alice", "alice@example.com", strings.Repeat("x", 73))
		assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
	})

	t.Run("accepts password of exactly 72 characters", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewUser("alice", "alice@example.com", strings.Repeat("x", 72))
		assert.NoError(t, err)
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "alice@example.com", domain.NormalizeEmail("Alice@Example.com"))
	assert.Equal(t, "alice@example.com", domain.NormalizeEmail("  ALICE@EXAMPLE.COM  "))
	assert.Equal(t, "alice@example.com", domain.NormalizeEmail("alice@example.com"))
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	validUser := func() *domain.User {
		return &domain.User{
			ID:             uuid.New(),
			Username:       "alice",
			Email:          "alice@example.com",
			HashedPassword: "$2a$10$somethinghashed",
		}
	}

	t.Run("stored user with only a hash is valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validUser().Validate())
	})

	t.Run("rejects nil ID", func(t *testing.T) {
		t.Parallel()
		user := validUser()
		user.ID = uuid.Nil
		assert.ErrorIs(t, user.Validate(), domain.ErrEmptyUserID)
	})

	t.Run("rejects user with neither password nor hash", func(t *testing.T) {
		t.Parallel()
		user := validUser()
		user.HashedPassword = ""
		assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPasswordSet)
	})
}
