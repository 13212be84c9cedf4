package catalog

import (
	"context"

	"github.com/handiism/library-catalog/internal/model"
)

// Store persists catalog contents.
type Store interface {
	Load(ctx context.Context) ([]*model.Book, error)
	Append(ctx context.Context, book *model.Book) error
	Rewrite(ctx context.Context, books []*model.Book) error
}

// SkipCounter is implemented by stores that drop malformed rows on Load.
// Skipped reports how many rows the last Load dropped.
type SkipCounter interface {
	Skipped() int
}

// Logger receives diagnostic messages. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPersistAvailability controls whether Borrow and Return rewrite the
// catalog file. It is enabled by default.
func WithPersistAvailability(enabled bool) Option {
	return func(c *Catalog) {
		c.persistAvailability = enabled
	}
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...any) {}
func (discardLogger) Info(string, ...any) {}
func (discardLogger) Warn(string, ...any) {}
func (discardLogger) Error(string, ...any) {}
