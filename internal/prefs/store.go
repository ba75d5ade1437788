// Package prefs persists user preferences and owns the process-wide theme
// flag.
package prefs

import (
	"context"
	"fmt"

	"github.com/kevinmichaelchen/gh-user-search/internal/config"
)

// KeyDarkMode is the only preference the app stores.
const KeyDarkMode = "dark_mode"

// Store is a key-value store for boolean preferences.
type Store interface {
	// GetBool reports ok=false when key was never written.
	GetBool(ctx context.Context, key string) (value bool, ok bool, err error)
	SetBool(ctx context.Context, key string, value bool) error
	Close(ctx context.Context) error
}

// Open returns the store selected by cfg.PrefsBackend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.PrefsBackend {
	case config.PrefsBackendSQLite:
		return NewSQLiteStore(cfg.PrefsPath)
	case config.PrefsBackendSurreal:
		return NewSurrealStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown preferences backend %q", cfg.PrefsBackend)
	}
}
