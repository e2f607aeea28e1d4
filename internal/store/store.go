// Package store persists the hide list and the hide_config setting.
package store

import (
	"context"
	"fmt"

	"prochide/internal/registry"
)

// HideConfigKey is the settings key holding the last applied enabled flag.
const HideConfigKey = "hide_config"

// Driver names accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

// Store is the persistent side of the hide list.
type Store interface {
	// Targets returns every stored hide target.
	Targets(ctx context.Context) ([]registry.Target, error)
	// InsertTarget stores t.
	InsertTarget(ctx context.Context, t registry.Target) error
	// DeleteTarget deletes the pair (pkg, proc), or every row of pkg when
	// proc is empty.
	DeleteTarget(ctx context.Context, pkg, proc string) error
	// HideConfig returns the stored enabled flag; false if never written.
	HideConfig(ctx context.Context) (bool, error)
	// SetHideConfig stores the enabled flag.
	SetHideConfig(ctx context.Context, enabled bool) error
	Close() error
}

// Open returns the store for driver at path.
func Open(driver, path string) (Store, error) {
	switch driver {
	case "", DriverSQLite:
		return OpenSQLite(path)
	case DriverBolt:
		return OpenBolt(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
