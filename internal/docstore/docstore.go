// Package docstore owns the single user-data document stored per system code.
// It provides the create-initial, load and save primitives the planner builds
// its read-modify-write operations on.
package docstore

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/schedulenest/internal/keymap"
	"github.com/mesh-intelligence/schedulenest/internal/logging"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// Store loads and saves documents in a KVStore and resolves user codes through
// a keymap.Store.
type Store struct {
	kv   types.KVStore
	keys *keymap.Store
	log  logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l.With("component", "docstore") }
}

// New returns a Store over kv using keys for user-code resolution.
func New(kv types.KVStore, keys *keymap.Store, opts ...Option) *Store {
	s := &Store{kv: kv, keys: keys, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Keys returns the key-mapping store the document store resolves through.
func (s *Store) Keys() *keymap.Store {
	return s.keys
}

// CreateInitialDocument builds the zero-state document for systemCode: no
// schedules or todos, one default folder per default category, and the default
// category vocabulary. It does not persist anything.
func CreateInitialDocument(systemCode string) *types.Document {
	folders := make([]types.Folder, 0, len(types.DefaultCategories))
	for _, category := range types.DefaultCategories {
		folders = append(folders, types.Folder{
			ID:        types.DefaultFolderID(category),
			Name:      category,
			IsDefault: true,
			Notes:     []types.Note{},
		})
	}

	categories := make([]string, len(types.DefaultCategories))
	copy(categories, types.DefaultCategories)

	return &types.Document{
		AccessCode: systemCode,
		Schedules:  []types.Schedule{},
		Todos:      []types.Todo{},
		Folders:    folders,
		Categories: categories,
	}
}

// Load returns the document stored under systemCode. ok is false when it was
// never created, the read fails, or the payload does not parse; a corrupt
// payload is logged and treated as absent.
func (s *Store) Load(systemCode string) (doc *types.Document, ok bool) {
	key := types.DocumentKey(systemCode)
	raw, found, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("document read failed", "key", key, "err", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var d types.Document
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		s.log.Warn("discarding unparseable document", "key", key, "err", err)
		return nil, false
	}
	d.Normalize()
	return &d, true
}

// Save serializes the entire document and stores it under its AccessCode.
// Failures are returned wrapped in ErrWriteFailed; nothing is retried.
func (s *Store) Save(doc *types.Document) error {
	if doc == nil || doc.AccessCode == "" {
		return types.ErrInvalidID
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encoding document %s: %w", types.ErrWriteFailed, doc.AccessCode, err)
	}
	if err := s.kv.Set(types.DocumentKey(doc.AccessCode), string(data)); err != nil {
		s.log.Error("document not saved", "system_code", doc.AccessCode, "err", err)
		return fmt.Errorf("%w: saving document %s: %w", types.ErrWriteFailed, doc.AccessCode, err)
	}
	return nil
}

// ExistsForUserCode reports whether userCode is mapped and its document loads.
func (s *Store) ExistsForUserCode(userCode string) bool {
	systemCode, ok := s.keys.Resolve(userCode)
	if !ok {
		return false
	}
	_, ok = s.Load(systemCode)
	return ok
}

// LoadForUserCode resolves userCode and loads its document.
func (s *Store) LoadForUserCode(userCode string) (*types.Document, bool) {
	systemCode, ok := s.keys.Resolve(userCode)
	if !ok {
		return nil, false
	}
	return s.Load(systemCode)
}

// Register sets up a new user code: it creates the mapping, verifies that the
// mapping was persisted, and saves the initial document. It refuses a user code
// that already has a document.
func (s *Store) Register(userCode string) (string, error) {
	if s.ExistsForUserCode(userCode) {
		return "", types.ErrCodeTaken
	}

	systemCode := s.keys.CreateMapping(userCode)
	if got, ok := s.keys.Resolve(userCode); !ok || got != systemCode {
		return "", fmt.Errorf("registering %s: %w", userCode, types.ErrMappingMissing)
	}

	if err := s.Save(CreateInitialDocument(systemCode)); err != nil {
		return "", err
	}
	s.log.Info("access code registered", "user_code", userCode)
	return systemCode, nil
}

// Wipe clears the whole store: every document, mapping and preference.
func (s *Store) Wipe() error {
	if err := s.kv.Clear(); err != nil {
		return fmt.Errorf("wiping storage: %w", err)
	}
	s.log.Info("storage wiped")
	return nil
}
