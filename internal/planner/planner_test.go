package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/schedulenest/internal/docstore"
	"github.com/mesh-intelligence/schedulenest/internal/keymap"
	"github.com/mesh-intelligence/schedulenest/internal/memory"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

var (
	t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t1 = time.Date(2024, 5, 2, 12, 30, 15, 123456789, time.UTC)
)

type fixture struct {
	kv   *memory.Store
	docs *docstore.Store
	svc  *Service
	code string
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	kv := memory.New(0)
	docs := docstore.New(kv, keymap.New(kv))
	code, err := docs.Register("abc123")
	require.NoError(t, err)

	opts = append([]Option{WithClock(func() time.Time { return t1 })}, opts...)
	return &fixture{kv: kv, docs: docs, svc: New(docs, opts...), code: code}
}

func (f *fixture) doc(t *testing.T) *types.Document {
	t.Helper()
	doc, ok := f.docs.Load(f.code)
	require.True(t, ok)
	return doc
}

func TestNewID(t *testing.T) {
	a := NewID(KindSchedule)
	b := NewID(KindSchedule)
	assert.True(t, strings.HasPrefix(a, "schedule_"))
	assert.NotEqual(t, a, b)
}

func TestMissingDocumentIsNotFound(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		op   func() (types.Outcome, error)
	}{
		{"add schedule", func() (types.Outcome, error) {
			return f.svc.AddSchedule("nope", types.Schedule{ID: "sc1", Title: "x", Date: "2024-05-01"})
		}},
		{"update todo", func() (types.Outcome, error) {
			return f.svc.UpdateTodo("nope", "t1", types.TodoPatch{Completed: types.Ptr(true)})
		}},
		{"delete note", func() (types.Outcome, error) { return f.svc.DeleteNote("nope", "n1") }},
		{"add folder", func() (types.Outcome, error) {
			return f.svc.AddFolder("nope", types.Folder{ID: "f", Name: "F"})
		}},
		{"add category", func() (types.Outcome, error) { return f.svc.AddCategory("nope", "x") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := tt.op()
			assert.NoError(t, err)
			assert.Equal(t, types.NotFound, outcome)
		})
	}

	_, ok := f.docs.Load("nope")
	assert.False(t, ok, "no document is created by a mutation")
}

func TestWriteFailureIsReturned(t *testing.T) {
	kv := memory.New(0)
	docs := docstore.New(kv, keymap.New(kv))
	code, err := docs.Register("abc123")
	require.NoError(t, err)

	// Shrink the quota below the current document size.
	full := memory.New(kv.Used() + 10)
	for _, k := range mustKeys(t, kv) {
		v, _, _ := kv.Get(k)
		require.NoError(t, full.Set(k, v))
	}
	svc := New(docstore.New(full, keymap.New(full)))

	outcome, err := svc.AddSchedule(code, types.Schedule{
		ID: "sc1", Title: "A long meeting title that will not fit", Date: "2024-05-01",
	})
	assert.ErrorIs(t, err, types.ErrWriteFailed)
	assert.ErrorIs(t, err, types.ErrQuotaExceeded)
	assert.Equal(t, types.NotFound, outcome)

	doc, ok := docstore.New(full, keymap.New(full)).Load(code)
	require.True(t, ok)
	assert.Empty(t, doc.Schedules)
}

func mustKeys(t *testing.T, kv types.KVStore) []string {
	t.Helper()
	keys, err := kv.Keys("")
	require.NoError(t, err)
	return keys
}
