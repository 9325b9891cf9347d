package userstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thunderguard-ph/thunderguard/pkg/dispatch"
	"github.com/thunderguard-ph/thunderguard/pkg/presence"
	"github.com/thunderguard-ph/thunderguard/pkg/userstore"
)

func TestPresenceFilteredSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := userstore.Open(userstore.Config{Path: filepath.Join(t.TempDir(), "source.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ana, err := s.Register(ctx, userstore.RegisterParams{
		Name: "Ana", Role: "resident", Phone: "0917-ana", Email: "ana@x.com", Password: "pw",
	})
	require.NoError(t, err)

	bo, err := s.Register(ctx, userstore.RegisterParams{
		Name: "Bo", Role: "resident", Phone: "0917-bo", Password: "pw",
	})
	require.NoError(t, err)

	registry := presence.NewRegistry()
	source := userstore.NewPresenceFilteredSource(s, registry)

	t.Run("nobody reachable at process start", func(t *testing.T) {
		recipients, err := source.ReachableRecipients(ctx)
		require.NoError(t, err)
		assert.Empty(t, recipients)
	})

	t.Run("only reachable users are returned", func(t *testing.T) {
		registry.MarkReachable(ana.ID)

		recipients, err := source.ReachableRecipients(ctx)
		require.NoError(t, err)
		require.Len(t, recipients, 1)
		assert.Equal(t, dispatch.Recipient{Name: "Ana", Phone: "0917-ana", Email: "ana@x.com"}, recipients[0])
	})

	t.Run("addresses pass through as stored, including empty email", func(t *testing.T) {
		registry.MarkReachable(bo.ID)

		recipients, err := source.ReachableRecipients(ctx)
		require.NoError(t, err)
		require.Len(t, recipients, 2)

		names := []string{recipients[0].Name, recipients[1].Name}
		assert.ElementsMatch(t, []string{"Ana", "Bo"}, names)
	})

	t.Run("logout removes a user from the snapshot", func(t *testing.T) {
		registry.MarkUnreachable(ana.ID)

		recipients, err := source.ReachableRecipients(ctx)
		require.NoError(t, err)
		require.Len(t, recipients, 1)
		assert.Equal(t, "Bo", recipients[0].Name)
	})
}
