package locator

import (
	"io"
	"log/slog"

	"github.com/joshuapare/locatorkit/region"
)

// Option configures a Locator.
type Option func(*Locator)

// WithCatalog replaces the built-in region catalog.
func WithCatalog(c *region.Catalog) Option {
	return func(l *Locator) {
		if c != nil {
			l.catalog = c
		}
	}
}

// WithPriority sets the group order used by All, most specific first.
func WithPriority(ids ...region.GroupID) Option {
	return func(l *Locator) {
		if len(ids) > 0 {
			l.priority = append([]region.GroupID(nil), ids...)
		}
	}
}

// WithLogger sets the logger for debug output. The default discards.
func WithLogger(log *slog.Logger) Option {
	return func(l *Locator) {
		if log != nil {
			l.log = log
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
