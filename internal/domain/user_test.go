package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("  Alice@Example.COM ", "secret123")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "secret123", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "secret123", ErrEmptyEmail},
		{"whitespace email", "   ", "secret123", ErrEmptyEmail},
		{"malformed email", "invalidemail", "secret123", ErrInvalidEmail},
		{"missing domain", "alice@", "secret123", ErrInvalidEmail},
		{"empty password", "alice@example.com", "", ErrEmptyPassword},
		{"short password", "alice@example.com", "short", ErrPasswordTooShort},
		{"long password", "alice@example.com", strings.Repeat("x", MaxPasswordLength+1), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.email, tt.password)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	stored := User{
		ID:             uuid.New(),
		Email:          "bob@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, stored.Validate(), "a stored user only needs a hash")

	noID := stored
	noID.ID = uuid.Nil
	assert.ErrorIs(t, noID.Validate(), ErrEmptyUserID)

	noSecret := stored
	noSecret.HashedPassword = ""
	assert.ErrorIs(t, noSecret.Validate(), ErrEmptyPassword)
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword(strings.Repeat("a", MinPasswordLength)))
	assert.NoError(t, ValidatePassword(strings.Repeat("a", MaxPasswordLength)))
	assert.True(t, errors.Is(ValidatePassword("1234567"), ErrPasswordTooShort))
}
