package userstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thunderguard-ph/thunderguard/pkg/userstore"
)

func openTestStore(t *testing.T) *userstore.Store {
	t.Helper()

	s, err := userstore.Open(userstore.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	s, err := userstore.Open(userstore.Config{Path: "   "})
	assert.ErrorIs(t, err, userstore.ErrInvalidConfig)
	assert.Nil(t, s)
}

func TestOpen_IsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reopen.db")

	s1, err := userstore.Open(userstore.Config{Path: path})
	require.NoError(t, err)

	_, err = s1.Register(context.Background(), userstore.RegisterParams{
		Name: "Ana", Role: "resident", Phone: "0917", Password: "secret",
	})
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Reopening an existing file must keep its data intact.
	s2, err := userstore.Open(userstore.Config{Path: path})
	require.NoError(t, err)
	defer s2.Close()

	users, err := s2.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)
}

func TestStore_Register(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		u, err := s.Register(ctx, userstore.RegisterParams{
			Name:     "Ana",
			Role:     "resident",
			Phone:    "09171234567",
			Email:    "ana@example.com",
			Password: "hunter2!",
		})

		require.NoError(t, err)
		assert.Positive(t, u.ID)
		assert.Equal(t, "Ana", u.Name)
		assert.Equal(t, "resident", u.Role)
		assert.Equal(t, "09171234567", u.Phone)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("email is optional", func(t *testing.T) {
		u, err := s.Register(ctx, userstore.RegisterParams{
			Name: "Bo", Role: "responder", Phone: "09998887777", Password: "pw",
		})

		require.NoError(t, err)
		assert.Empty(t, u.Email)
	})

	t.Run("duplicate phone is rejected", func(t *testing.T) {
		_, err := s.Register(ctx, userstore.RegisterParams{
			Name: "Imposter", Role: "resident", Phone: "09171234567", Password: "pw",
		})

		assert.ErrorIs(t, err, userstore.ErrAlreadyRegistered)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			params userstore.RegisterParams
		}{
			{"missing name", userstore.RegisterParams{Role: "r", Phone: "1", Password: "p"}},
			{"missing role", userstore.RegisterParams{Name: "n", Phone: "1", Password: "p"}},
			{"missing phone", userstore.RegisterParams{Name: "n", Role: "r", Password: "p"}},
			{"missing password", userstore.RegisterParams{Name: "n", Role: "r", Phone: "1"}},
			{"malformed email", userstore.RegisterParams{Name: "n", Role: "r", Phone: "1", Password: "p", Email: "nope"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := s.Register(ctx, tt.params)
				assert.ErrorIs(t, err, userstore.ErrInvalidParams)
			})
		}
	})
}

func TestStore_Authenticate(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	registered, err := s.Register(ctx, userstore.RegisterParams{
		Name:     "Ana",
		Role:     "resident",
		Phone:    "09171234567",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	t.Run("by phone", func(t *testing.T) {
		u, err := s.Authenticate(ctx, "09171234567", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("by email", func(t *testing.T) {
		u, err := s.Authenticate(ctx, "ana@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Authenticate(ctx, "09171234567", "wrong")
		assert.ErrorIs(t, err, userstore.ErrInvalidCredentials)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := s.Authenticate(ctx, "00000000000", "correct horse")
		assert.ErrorIs(t, err, userstore.ErrInvalidCredentials)
	})

	t.Run("empty email never matches an empty identifier", func(t *testing.T) {
		_, noEmailErr := s.Register(ctx, userstore.RegisterParams{
			Name: "Bo", Role: "resident", Phone: "09990001111", Password: "pw",
		})
		require.NoError(t, noEmailErr)

		_, err := s.Authenticate(ctx, "", "pw")
		assert.ErrorIs(t, err, userstore.ErrInvalidCredentials)
	})
}

func TestStore_ListUsers(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	for _, p := range []userstore.RegisterParams{
		{Name: "Ana", Role: "resident", Phone: "1", Password: "p", Email: "a@x.com"},
		{Name: "Bo", Role: "responder", Phone: "2", Password: "p"},
	} {
		_, err := s.Register(ctx, p)
		require.NoError(t, err)
	}

	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].Name)
	assert.Equal(t, "Bo", users[1].Name)
}
