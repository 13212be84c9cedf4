// Package config provides configuration management for the library catalog.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to catalog options
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Catalog file books.csv in the working directory
//	// Borrow and return are written back to the file
//	// Librarian menu opened with 2130
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.CatalogPath = "/srv/library/books.csv"
//	err := settings.Save("/path/to/config.json")
package config
