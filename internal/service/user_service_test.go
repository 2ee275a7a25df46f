package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserService(t *testing.T) (*service.UserServiceImpl, *mocks.MockUserStore, *mocks.MockPasswordHasher, *mocks.MockTransactor) {
	t.Helper()
	users := mocks.NewMockUserStore()
	hasher := &mocks.MockPasswordHasher{}
	tx := &mocks.MockTransactor{}
	svc, err := service.NewUserService(users, tx, hasher, quietLogger())
	require.NoError(t, err)
	return svc, users, hasher, tx
}

func TestNewUserService_RequiresDependencies(t *testing.T) {
	t.Parallel()

	_, err := service.NewUserService(nil, &mocks.MockTransactor{}, &mocks.MockPasswordHasher{}, nil)
	assert.Error(t, err)
	_, err = service.NewUserService(mocks.NewMockUserStore(), nil, &mocks.MockPasswordHasher{}, nil)
	assert.Error(t, err)
	_, err = service.NewUserService(mocks.NewMockUserStore(), &mocks.MockTransactor{}, nil, nil)
	assert.Error(t, err)
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("stores normalized email and hash only", func(t *testing.T) {
		t.Parallel()
		svc, users, _, tx := newUserService(t)

		user, err := svc.Register(context.Background(), "  Alice@Example.com ", "secret123")
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "hashed:secret123", user.HashedPassword)
		assert.Empty(t, user.Password)
		assert.Equal(t, 1, tx.Calls())

		stored, err := users.GetByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
		assert.NotEqual(t, "secret123", stored.HashedPassword)
	})

	t.Run("duplicate email differs only in case", func(t *testing.T) {
		t.Parallel()
		svc, users, _, _ := newUserService(t)

		_, err := svc.Register(context.Background(), "a@x.io", "secret123")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "A@X.IO", "otherpass1")
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.Equal(t, 1, users.Count())
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "secret123", domain.ErrEmptyEmail},
		{"malformed email", "not-an-email", "secret123", domain.ErrInvalidEmail},
		{"empty password", "a@x.io", "", domain.ErrEmptyPassword},
		{"short password", "a@x.io", "short", domain.ErrPasswordTooShort},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, users, _, tx := newUserService(t)

			_, err := svc.Register(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, 0, users.Count())
			assert.Equal(t, 0, tx.Calls())
		})
	}

	t.Run("hash failure", func(t *testing.T) {
		t.Parallel()
		svc, _, hasher, _ := newUserService(t)
		hasher.HashFn = func(string) (string, error) { return "", errors.New("boom") }

		_, err := svc.Register(context.Background(), "a@x.io", "secret123")
		var serviceErr *service.ServiceError
		assert.ErrorAs(t, err, &serviceErr)
	})

	t.Run("transaction failure", func(t *testing.T) {
		t.Parallel()
		svc, users, _, tx := newUserService(t)
		tx.Err = store.ErrTransactionFailed

		_, err := svc.Register(context.Background(), "a@x.io", "secret123")
		assert.ErrorIs(t, err, store.ErrTransactionFailed)
		assert.Equal(t, 0, users.Count())
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	svc, _, hasher, _ := newUserService(t)
	registered, err := svc.Register(context.Background(), "bob@example.com", "secret123")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "BOB@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "bob@example.com", "wrong-pass")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email still compares a hash", func(t *testing.T) {
		before := hasher.Calls()
		_, err := svc.Authenticate(context.Background(), "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Equal(t, before+1, hasher.Calls())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "", "")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestUserService_Authenticate_StoreFailure(t *testing.T) {
	t.Parallel()

	svc, users, _, _ := newUserService(t)
	users.GetByEmailFn = func(context.Context, string) (*domain.User, error) {
		return nil, errors.New("connection refused")
	}

	_, err := svc.Authenticate(context.Background(), "a@x.io", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserService_WithBcrypt(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	svc, err := service.NewUserService(users, &mocks.MockTransactor{}, auth.NewBcryptHasher(bcrypt.MinCost), quietLogger())
	require.NoError(t, err)

	user, err := svc.Register(context.Background(), "carol@example.com", "secret123")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret123")))

	_, err = svc.Authenticate(context.Background(), "carol@example.com", "secret123")
	assert.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "carol@example.com", "secret124")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "dave@example.com", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
