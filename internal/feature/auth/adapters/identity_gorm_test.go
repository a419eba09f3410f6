package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"manassa_backend/internal/feature/auth/domain"
	"manassa_backend/internal/feature/auth/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Account{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestIdentityGorm_CreateAccount(t *testing.T) {
	t.Run("successful creation hashes the password", func(t *testing.T) {
		provider := NewIdentityGorm(setupTestDB(t))

		acct, err := provider.CreateAccount(context.Background(), "a@example.com", "abc12345", "Ahmed")

		require.NoError(t, err)
		assert.NotEmpty(t, acct.ID)
		assert.NotEqual(t, "abc12345", acct.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte("abc12345")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		provider := NewIdentityGorm(setupTestDB(t))

		_, err := provider.CreateAccount(context.Background(), "a@example.com", "abc12345", "Ahmed")
		require.NoError(t, err)

		_, err = provider.CreateAccount(context.Background(), "a@example.com", "other123", "Samir")
		assert.ErrorIs(t, err, domain.ErrEmailInUse)
	})
}

func TestIdentityGorm_SignIn(t *testing.T) {
	setup := func(t *testing.T) *identityGorm {
		provider := NewIdentityGorm(setupTestDB(t))
		_, err := provider.CreateAccount(context.Background(), "a@example.com", "abc12345", "Ahmed")
		require.NoError(t, err)
		return provider
	}

	t.Run("correct credentials", func(t *testing.T) {
		provider := setup(t)

		acct, err := provider.SignIn(context.Background(), "a@example.com", "abc12345")

		require.NoError(t, err)
		assert.Equal(t, "a@example.com", acct.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		provider := setup(t)

		_, err := provider.SignIn(context.Background(), "a@example.com", "wrong5678")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same generic error", func(t *testing.T) {
		provider := setup(t)

		_, err := provider.SignIn(context.Background(), "nobody@example.com", "abc12345")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestIdentityGorm_FindByID(t *testing.T) {
	provider := NewIdentityGorm(setupTestDB(t))

	acct, err := provider.CreateAccount(context.Background(), "a@example.com", "abc12345", "Ahmed")
	require.NoError(t, err)

	found, err := provider.FindByID(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, acct.Email, found.Email)

	_, err = provider.FindByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
