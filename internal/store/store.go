package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Store persists the option list as a whole. Every save replaces the
// previous list; there is no per-option addressing.
type Store interface {
	LoadOptions(ctx context.Context) ([]wheel.Option, error)
	SaveOptions(ctx context.Context, options []wheel.Option) error
	Close() error
}

type Config struct {
	Driver string
	Path   string
	URL    string
}

// Open returns the store selected by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", "file":
		return NewFileStore(cfg.Path), nil
	case "sqlite":
		s, err := NewSQLiteStore(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := NewPostgresStore(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// normalize returns a non-nil copy so callers can always encode an empty list
// as [] rather than null.
func normalize(options []wheel.Option) []wheel.Option {
	out := make([]wheel.Option, len(options))
	copy(out, options)
	return out
}
