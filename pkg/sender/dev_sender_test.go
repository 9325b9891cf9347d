package sender_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thunderguard-ph/thunderguard/pkg/alert"
	"github.com/thunderguard-ph/thunderguard/pkg/sender"
)

func TestDevEmailSender_Deliver(t *testing.T) {
	t.Parallel()

	msg := alert.Message{
		Subject: "🚨 ThunderGuard: ORANGE WARNING (Cebu City, Cebu)",
		Body:    "Hello Ana,\n\nEvacuate immediately.",
	}

	t.Run("writes body and metadata files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := sender.NewDevEmailSender(dir)

		require.NoError(t, s.Deliver(context.Background(), "ana@example.com", msg))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var bodyFile, metaFile string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".txt":
				bodyFile = filepath.Join(dir, e.Name())
			case ".json":
				metaFile = filepath.Join(dir, e.Name())
			}
		}
		require.NotEmpty(t, bodyFile)
		require.NotEmpty(t, metaFile)

		body, err := os.ReadFile(bodyFile)
		require.NoError(t, err)
		assert.Equal(t, msg.Body, string(body))

		raw, err := os.ReadFile(metaFile)
		require.NoError(t, err)

		var meta struct {
			SendTo  string `json:"send_to"`
			Subject string `json:"subject"`
		}
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "ana@example.com", meta.SendTo)
		assert.Equal(t, msg.Subject, meta.Subject)

		// Subject characters outside the safe set are stripped from names.
		assert.False(t, strings.ContainsAny(filepath.Base(bodyFile), "🚨():, "))
	})

	t.Run("malformed address is fatal", func(t *testing.T) {
		t.Parallel()

		s := sender.NewDevEmailSender(t.TempDir())
		assert.ErrorIs(t, s.Deliver(context.Background(), "bogus", msg), sender.ErrFatal)
	})

	t.Run("empty address", func(t *testing.T) {
		t.Parallel()

		s := sender.NewDevEmailSender(t.TempDir())
		assert.ErrorIs(t, s.Deliver(context.Background(), "", msg), sender.ErrEmptyAddress)
	})
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, sender.ValidEmail("user@example.com"))
	assert.True(t, sender.ValidEmail("first.last+tag@sub.example.ph"))
	assert.False(t, sender.ValidEmail(""))
	assert.False(t, sender.ValidEmail("user@"))
	assert.False(t, sender.ValidEmail("@example.com"))
	assert.False(t, sender.ValidEmail("plain-string"))
}
