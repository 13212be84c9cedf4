package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"catalog_path": "/srv/books.csv", "persist_availability": false}`), 0644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/books.csv", settings.CatalogPath)
	assert.False(t, settings.PersistAvailability)
	assert.Equal(t, "2130", settings.LibrarianKey)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.CatalogPath = "library.csv"
	settings.LibrarianKey = "9999"
	settings.LogLevel = "debug"
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettings_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			s := &Settings{LogLevel: tt.level}
			assert.Equal(t, tt.want, s.SlogLevel())
		})
	}
}

func TestSettings_ToCatalogOptions(t *testing.T) {
	opts := DefaultSettings().ToCatalogOptions(slog.New(slog.DiscardHandler))
	assert.Len(t, opts, 2)
}
