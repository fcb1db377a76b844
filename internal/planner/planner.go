// Package planner implements the entity CRUD operations on a user's document.
//
// Every operation is a read-modify-write cycle: load the whole document, apply
// one mutation in memory, save the whole document. Cycles are not atomic
// across calls; with two writers the later save wins. Operations address the
// document by system code and report whether they changed anything through a
// types.Outcome.
package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/schedulenest/internal/docstore"
	"github.com/mesh-intelligence/schedulenest/internal/logging"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// Entity kinds, used as ID prefixes by NewID.
const (
	KindSchedule = "schedule"
	KindTodo     = "todo"
	KindNote     = "note"
	KindFolder   = "folder"
)

// Service performs entity mutations against a docstore.Store.
type Service struct {
	docs            *docstore.Store
	now             func() time.Time
	protectDefaults bool
	log             logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithDefaultFolderProtection makes DeleteFolder refuse default folders with
// ErrDefaultFolder. Without it default folders are deleted like any other.
func WithDefaultFolderProtection(enabled bool) Option {
	return func(s *Service) { s.protectDefaults = enabled }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l.With("component", "planner") }
}

// New returns a Service over docs.
func New(docs *docstore.Store, opts ...Option) *Service {
	s := &Service{
		docs: docs,
		now:  time.Now,
		log:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns a fresh entity ID of the form "<kind>_<uuid v7>".
func NewID(kind string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return kind + "_" + uuid.New().String()
	}
	return kind + "_" + id.String()
}

// Document returns the current document stored under code.
func (s *Service) Document(code string) (*types.Document, bool) {
	return s.docs.Load(code)
}

// timestamp returns the current time in UTC at millisecond precision.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// mutate loads the document, applies fn, and saves the result when fn reports
// Applied. A missing document yields NotFound without calling fn.
func (s *Service) mutate(code, op string, fn func(doc *types.Document) (types.Outcome, error)) (types.Outcome, error) {
	doc, ok := s.docs.Load(code)
	if !ok {
		s.log.Debug("document not found", "op", op, "system_code", code)
		return types.NotFound, nil
	}

	outcome, err := fn(doc)
	if err != nil || outcome != types.Applied {
		return outcome, err
	}

	if err := s.docs.Save(doc); err != nil {
		return types.NotFound, err
	}
	s.log.Debug("mutation applied", "op", op, "system_code", code)
	return types.Applied, nil
}
