// Package backend opens the KVStore selected by a Config.
package backend

import (
	"fmt"

	"github.com/mesh-intelligence/schedulenest/internal/logging"
	"github.com/mesh-intelligence/schedulenest/internal/memory"
	"github.com/mesh-intelligence/schedulenest/internal/sqlite"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// Store is an opened KVStore that must be closed when the caller is done.
type Store interface {
	types.KVStore
	Close() error
}

// Open validates cfg and returns the attached store it names.
func Open(cfg types.Config, log logging.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		b := sqlite.NewBackend(sqlite.WithLogger(log))
		if err := b.Attach(cfg); err != nil {
			return nil, fmt.Errorf("attach sqlite: %w", err)
		}
		return sqliteStore{b}, nil
	case types.BackendMemory:
		return memoryStore{memory.New(cfg.QuotaBytes)}, nil
	default:
		return nil, types.ErrBackendUnknown
	}
}

type sqliteStore struct {
	*sqlite.Backend
}

func (s sqliteStore) Close() error {
	return s.Detach()
}

type memoryStore struct {
	*memory.Store
}

func (memoryStore) Close() error {
	return nil
}
