// Package store persists level snapshots (world.State records) under a
// name. Implementations are safe for concurrent use.
package store

import (
	"errors"
	"fmt"

	"delve/pkg/engine/world"
)

// ErrNotFound is returned when no level is saved under the requested name
var ErrNotFound = errors.New("level not found")

// Store defines the interface for level persistence
type Store interface {
	SaveLevel(name string, s *world.State) error
	LoadLevel(name string) (*world.State, error)
	ListLevels() ([]string, error)
	Close() error
}

// Open creates a store by kind: "json" and "bolt" use path, "postgres"
// uses dsn.
func Open(kind, path, dsn string) (Store, error) {
	switch kind {
	case "json":
		return NewJSONStore(path)
	case "bolt":
		return NewBoltStore(path)
	case "postgres":
		return NewPostgresStore(dsn)
	}
	return nil, fmt.Errorf("unknown store %q", kind)
}
