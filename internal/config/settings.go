package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/handiism/library-catalog/internal/catalog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Settings holds all configuration options.
type Settings struct {
	// Catalog settings
	CatalogPath         string `json:"catalog_path"`
	PersistAvailability bool   `json:"persist_availability"`

	// Shell settings
	LibrarianKey string `json:"librarian_key"`

	// Logging
	LogLevel string `json:"log_level"` // debug, info, warn, error
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CatalogPath:         "books.csv",
		PersistAvailability: true,
		LibrarianKey:        "2130",
		LogLevel:            "info",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to info.
func (s *Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ToCatalogOptions converts settings to catalog options.
func (s *Settings) ToCatalogOptions(logger catalog.Logger) []catalog.Option {
	return []catalog.Option{
		catalog.WithPersistAvailability(s.PersistAvailability),
		catalog.WithLogger(logger),
	}
}
