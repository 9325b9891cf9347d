package hotline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thunderguard-ph/thunderguard/pkg/hotline"
)

func TestDirectory_Lookup(t *testing.T) {
	t.Parallel()

	dir := hotline.New()

	t.Run("known location returns configured contact block", func(t *testing.T) {
		t.Parallel()

		got := dir.Lookup("Cebu City, Cebu")
		assert.Equal(t, "• Cebu CDRRMO: (032) 255-0000\n• ERUF: 161", got)
	})

	t.Run("unknown location falls back to national line", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, hotline.DefaultContact, dir.Lookup("Atlantis, Lost Sea"))
	})

	t.Run("empty location falls back to national line", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, hotline.DefaultContact, dir.Lookup(""))
	})

	t.Run("every built-in location resolves to itself", func(t *testing.T) {
		t.Parallel()

		for _, location := range dir.Locations() {
			assert.True(t, dir.Has(location), "location %q should have an entry", location)
			assert.NotEqual(t, hotline.DefaultContact, dir.Lookup(location))
		}
	})
}

func TestDirectory_Options(t *testing.T) {
	t.Parallel()

	t.Run("WithEntry adds a new location", func(t *testing.T) {
		t.Parallel()

		dir := hotline.New(hotline.WithEntry("Iloilo City, Iloilo", "• Iloilo CDRRMO: (033) 337-8233"))
		assert.Equal(t, "• Iloilo CDRRMO: (033) 337-8233", dir.Lookup("Iloilo City, Iloilo"))
	})

	t.Run("WithEntry overrides a built-in location", func(t *testing.T) {
		t.Parallel()

		dir := hotline.New(hotline.WithEntry("Cebu City, Cebu", "• Cebu CDRRMO: 161"))
		assert.Equal(t, "• Cebu CDRRMO: 161", dir.Lookup("Cebu City, Cebu"))
	})

	t.Run("WithEntries merges a table", func(t *testing.T) {
		t.Parallel()

		dir := hotline.New(hotline.WithEntries(map[string]string{
			"Bacolod City, Negros Occidental": "• Bacolod DRRMO: (034) 432-3871",
			"":                                "ignored",
		}))
		assert.Equal(t, "• Bacolod DRRMO: (034) 432-3871", dir.Lookup("Bacolod City, Negros Occidental"))
		assert.False(t, dir.Has(""))
	})

	t.Run("WithFallback replaces the default contact", func(t *testing.T) {
		t.Parallel()

		dir := hotline.New(hotline.WithFallback("Dial 911"))
		assert.Equal(t, "Dial 911", dir.Lookup("nowhere"))
	})

	t.Run("empty fallback is ignored", func(t *testing.T) {
		t.Parallel()

		dir := hotline.New(hotline.WithFallback(""))
		assert.Equal(t, hotline.DefaultContact, dir.Lookup("nowhere"))
	})
}

func TestDirectory_DefaultLocationHasEntry(t *testing.T) {
	t.Parallel()

	dir := hotline.New()
	require.True(t, dir.Has(hotline.DefaultLocation))
}
