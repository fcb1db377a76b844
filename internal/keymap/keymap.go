// Package keymap associates user-chosen access codes with generated system
// codes. The system code is the actual storage key of a user's document, which
// keeps public identifiers apart from storage addressing.
package keymap

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/mesh-intelligence/schedulenest/internal/logging"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// Alphabet and length of generated codes.
const (
	CodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	CodeLength   = 6
)

// Store maps user codes to system codes on top of a KVStore.
// Mappings are created once and never updated or deleted here; only a full
// storage wipe removes them.
type Store struct {
	kv     types.KVStore
	random io.Reader
	log    logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithRandom replaces the random source used for code generation.
func WithRandom(r io.Reader) Option {
	return func(s *Store) { s.random = r }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l.With("component", "keymap") }
}

// New returns a Store backed by kv.
func New(kv types.KVStore, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		random: rand.Reader,
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateMapping generates a fresh system code, persists userCode -> systemCode
// and returns the system code. A user code that is already mapped keeps its
// existing system code.
//
// Persistence failures are logged and swallowed: the code is returned anyway
// and callers verify with Resolve.
func (s *Store) CreateMapping(userCode string) string {
	if existing, ok := s.Resolve(userCode); ok {
		return existing
	}

	systemCode := s.GenerateCode()
	if err := s.kv.Set(types.MappingKey(userCode), systemCode); err != nil {
		s.log.Warn("mapping not persisted", "user_code", userCode, "err", err)
	}
	return systemCode
}

// Resolve returns the system code mapped to userCode. ok is false when no
// mapping exists, which callers treat as unauthenticated access. Read errors
// are logged and reported as absent.
func (s *Store) Resolve(userCode string) (string, bool) {
	systemCode, ok, err := s.kv.Get(types.MappingKey(userCode))
	if err != nil {
		s.log.Warn("mapping lookup failed", "user_code", userCode, "err", err)
		return "", false
	}
	if !ok || systemCode == "" {
		return "", false
	}
	return systemCode, true
}

// GenerateCode returns CodeLength symbols drawn uniformly from CodeAlphabet.
// No uniqueness check is made; callers that need one check Resolve first.
func (s *Store) GenerateCode() string {
	code, err := generate(s.random, CodeLength)
	if err != nil {
		// The random source failed; fall back to the system source rather than
		// returning a short code.
		s.log.Warn("random source failed, using crypto/rand", "err", err)
		code, _ = generate(rand.Reader, CodeLength)
	}
	return code
}

func generate(r io.Reader, n int) (string, error) {
	max := big.NewInt(int64(len(CodeAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(r, max)
		if err != nil {
			return "", err
		}
		buf[i] = CodeAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
