// Package session caches the active user's document for the caller layer and
// holds the global dark-mode preference.
package session

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/mesh-intelligence/schedulenest/internal/docstore"
	"github.com/mesh-intelligence/schedulenest/internal/logging"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// Session mirrors the active document. It never writes user data; callers
// mutate through the planner and then call RefreshActive.
type Session struct {
	mu   sync.RWMutex
	code string
	doc  *types.Document

	docs *docstore.Store
	kv   types.KVStore
	log  logging.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) { s.log = l.With("component", "session") }
}

// New returns an empty, unauthenticated Session. kv holds the dark-mode
// preference.
func New(docs *docstore.Store, kv types.KVStore, opts ...Option) *Session {
	s := &Session{docs: docs, kv: kv, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetActiveCode records the user code without loading anything.
func (s *Session) SetActiveCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
}

// ActiveCode returns the recorded user code, or "".
func (s *Session) ActiveCode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.code
}

// LoadActive resolves code, loads its document and replaces the cache. On
// failure the cache is emptied and the session is unauthenticated.
func (s *Session) LoadActive(code string) bool {
	doc, ok := s.docs.LoadForUserCode(code)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
	if !ok {
		s.doc = nil
		s.log.Debug("active document not loaded", "user_code", code)
		return false
	}
	s.doc = doc
	return true
}

// RefreshActive reloads the document for the recorded code. It returns false
// when no code is recorded or the load fails.
func (s *Session) RefreshActive() bool {
	code := s.ActiveCode()
	if code == "" {
		return false
	}
	return s.LoadActive(code)
}

// ClearActive forgets the active code and document. Persisted data is kept.
func (s *Session) ClearActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = ""
	s.doc = nil
}

// Document returns a copy of the cached document, or nil.
func (s *Session) Document() *types.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil
	}
	return s.doc.Clone()
}

// SystemCode returns the system code of the cached document, or "".
func (s *Session) SystemCode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return ""
	}
	return s.doc.AccessCode
}

// IsAuthenticated reports whether a document is cached.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc != nil
}

// IsDarkMode reports the stored theme preference. It is false when unset or
// unreadable.
func (s *Session) IsDarkMode() bool {
	raw, ok, err := s.kv.Get(types.DarkModeKey)
	if err != nil {
		s.log.Warn("theme preference read failed", "err", err)
		return false
	}
	if !ok {
		return false
	}
	dark, err := strconv.ParseBool(raw)
	return err == nil && dark
}

// ToggleDarkMode flips and persists the theme preference, returning the new
// value. The preference is shared by every access code.
func (s *Session) ToggleDarkMode() (bool, error) {
	dark := !s.IsDarkMode()
	if err := s.kv.Set(types.DarkModeKey, strconv.FormatBool(dark)); err != nil {
		return !dark, fmt.Errorf("%w: saving theme: %w", types.ErrWriteFailed, err)
	}
	return dark, nil
}
