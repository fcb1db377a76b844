// Package memory provides an in-process KVStore. It backs tests and the
// "memory" backend, and enforces the same quota semantics as the SQLite store.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

var _ types.KVStore = (*Store)(nil)

// Store is a map-backed KVStore.
type Store struct {
	mu    sync.RWMutex
	data  map[string]string
	used  int64
	quota int64
}

// New returns an empty store. A positive quota caps the total bytes of keys
// and values; zero means unlimited.
func New(quota int64) *Store {
	return &Store{
		data:  make(map[string]string),
		quota: quota,
	}
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key. It returns ErrQuotaExceeded, leaving the store
// unchanged, when the write would push usage above the quota.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used + entrySize(key, value)
	if old, ok := s.data[key]; ok {
		used -= entrySize(key, old)
	}
	if s.quota > 0 && used > s.quota {
		return fmt.Errorf("setting %s: %w", key, types.ErrQuotaExceeded)
	}
	s.data[key] = value
	s.used = used
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.data[key]; ok {
		s.used -= entrySize(key, old)
		delete(s.data, key)
	}
	return nil
}

func (s *Store) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := []string{}
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]string)
	s.used = 0
	return nil
}

// Used returns the number of bytes currently counted against the quota.
func (s *Store) Used() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used
}

func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}
