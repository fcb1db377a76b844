// Package sqlite implements the persistent KVStore for schedulenest.
// SQLite is the query engine; kv.jsonl in the data directory is the source of
// truth and is rebuilt into a fresh database on every Attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/schedulenest/internal/logging"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

var _ types.KVStore = (*Backend)(nil)

// Backend implements types.KVStore on SQLite with JSONL persistence.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      logging.Logger

	syncStrategy string // effective sync strategy: immediate or on_close
	dirty        bool   // kv.jsonl is behind the database (on_close only)
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for attach and persistence events.
func WithLogger(l logging.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{log: logging.Discard()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, builds a fresh database and loads
// kv.jsonl into it. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	config.DataDir = dataDir

	// The database is a cache of kv.jsonl; start from a clean file.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps the synchronous, single-writer model honest.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := initJSONLFile(dataDir); err != nil {
		db.Close()
		return err
	}

	loaded, err := loadKVJSONL(db, dataDir)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.syncStrategy = config.GetSyncStrategy()
	b.dirty = false
	b.attached = true

	b.log.Debug("store attached", "data_dir", dataDir, "keys", loaded, "sync", b.syncStrategy)
	return nil
}

// Detach releases all resources held by the backend. Pending on_close writes
// are flushed first. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if err := b.flushLocked(); err != nil {
		return fmt.Errorf("flush pending writes: %w", err)
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.log.Debug("store detached", "data_dir", b.config.DataDir)
	return nil
}

// Flush writes kv.jsonl if it is behind the database. With the immediate
// strategy there is never anything to flush.
func (b *Backend) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return b.flushLocked()
}

// flushLocked persists pending writes. The caller must hold b.mu.
func (b *Backend) flushLocked() error {
	if !b.dirty {
		return nil
	}
	if err := b.persistLocked(b.db); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// commitLocked rewrites kv.jsonl from inside tx and then commits it, so a
// failed rewrite rolls the change back. With on_close the rewrite is deferred
// and the table is marked dirty. The caller must hold b.mu.
func (b *Backend) commitLocked(tx *sql.Tx) error {
	if b.syncStrategy != types.SyncOnClose {
		if err := b.persistLocked(tx); err != nil {
			return fmt.Errorf("%w: %w", types.ErrWriteFailed, err)
		}
	}
	if err := tx.Commit(); err != nil {
		// kv.jsonl may already hold the uncommitted state; rewrite it from
		// the database so both agree again.
		if b.syncStrategy != types.SyncOnClose {
			if perr := b.persistLocked(b.db); perr != nil {
				b.log.Error("kv.jsonl out of sync after failed commit", "err", perr)
			}
		}
		return fmt.Errorf("%w: committing: %w", types.ErrWriteFailed, err)
	}
	if b.syncStrategy == types.SyncOnClose {
		b.dirty = true
	}
	return nil
}

// rowsQueryer is satisfied by *sql.DB and *sql.Tx.
type rowsQueryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// persistLocked reads every row through q and rewrites kv.jsonl atomically.
func (b *Backend) persistLocked(q rowsQueryer) error {
	rows, err := q.Query("SELECT key, value, updated_at FROM kv ORDER BY key")
	if err != nil {
		return fmt.Errorf("querying kv for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec kvRecord
		if err := rows.Scan(&rec.Key, &rec.Value, &rec.UpdatedAt); err != nil {
			return fmt.Errorf("scanning kv for JSONL: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling kv for JSONL: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating kv for JSONL: %w", err)
	}

	return writeJSONL(filepath.Join(b.config.DataDir, kvJSONL), records)
}
