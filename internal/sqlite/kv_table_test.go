package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

func TestKV_CRUD(t *testing.T) {
	b := attachTestBackend(t, types.Config{})

	_, ok, err := b.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set("k", "v1"))
	require.NoError(t, b.Set("k", "v2"))

	v, ok, err := b.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, b.Delete("k"))
	require.NoError(t, b.Delete("k"))

	_, ok, err = b.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_KeysTreatsUnderscoreLiterally(t *testing.T) {
	b := attachTestBackend(t, types.Config{})

	for _, k := range []string{"schedulenest-map_abc1", "schedulenest_k3x9q2", "schedulenestXk3x9q2", "other"} {
		require.NoError(t, b.Set(k, "x"))
	}

	keys, err := b.Keys(types.MappingKeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{"schedulenest-map_abc1"}, keys)

	keys, err = b.Keys(types.DocumentKeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{"schedulenest_k3x9q2"}, keys, "document keys never include mappings")

	all, err := b.Keys("")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestKV_UnicodeValuesRoundTrip(t *testing.T) {
	b := attachTestBackend(t, types.Config{})

	require.NoError(t, b.Set("k", `{"categories":["개인","업무","학교","기타"]}`))
	v, _, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `{"categories":["개인","업무","학교","기타"]}`, v)
}

func TestKV_QuotaExceededKeepsPreviousValue(t *testing.T) {
	dir := t.TempDir()
	b := attachTestBackend(t, types.Config{DataDir: dir, QuotaBytes: 16})

	require.NoError(t, b.Set("k", "small"))

	err := b.Set("k", "this value is far too large")
	assert.ErrorIs(t, err, types.ErrQuotaExceeded)

	v, ok, err := b.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "small", v)

	used, err := b.Used()
	require.NoError(t, err)
	assert.Equal(t, int64(len("k")+len("small")), used)

	records, err := readJSONL(filepath.Join(dir, kvJSONL))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, string(records[0]), `"value":"small"`)
}

func TestKV_QuotaCountsBytesNotCharacters(t *testing.T) {
	// Each Hangul syllable is three bytes in UTF-8.
	b := attachTestBackend(t, types.Config{QuotaBytes: 10})

	err := b.Set("k", "개인업무")
	assert.ErrorIs(t, err, types.ErrQuotaExceeded)
	require.NoError(t, b.Set("k", "개인"))
}

func TestKV_Clear(t *testing.T) {
	dir := t.TempDir()
	b := attachTestBackend(t, types.Config{DataDir: dir})

	require.NoError(t, b.Set("a", "1"))
	require.NoError(t, b.Set("b", "2"))
	require.NoError(t, b.Clear())

	keys, err := b.Keys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	records, err := readJSONL(filepath.Join(dir, kvJSONL))
	require.NoError(t, err)
	assert.Empty(t, records)
}

// breakJSONL replaces kv.jsonl with a non-empty directory so the atomic
// rename fails.
func breakJSONL(t *testing.T, b *Backend) {
	t.Helper()
	path := filepath.Join(b.config.DataDir, kvJSONL)
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.MkdirAll(filepath.Join(path, "blocker"), 0o755))
}

func TestKV_FailedPersistRollsBack(t *testing.T) {
	t.Run("set keeps previous value", func(t *testing.T) {
		b := attachTestBackend(t, types.Config{})
		require.NoError(t, b.Set("k", "old"))
		breakJSONL(t, b)

		err := b.Set("k", "new")
		assert.ErrorIs(t, err, types.ErrWriteFailed)

		v, ok, err := b.Get("k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "old", v)
	})

	t.Run("delete keeps the key", func(t *testing.T) {
		b := attachTestBackend(t, types.Config{})
		require.NoError(t, b.Set("k", "old"))
		breakJSONL(t, b)

		assert.ErrorIs(t, b.Delete("k"), types.ErrWriteFailed)

		v, ok, err := b.Get("k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "old", v)
	})

	t.Run("clear keeps every key", func(t *testing.T) {
		b := attachTestBackend(t, types.Config{})
		require.NoError(t, b.Set("a", "1"))
		require.NoError(t, b.Set("b", "2"))
		breakJSONL(t, b)

		assert.ErrorIs(t, b.Clear(), types.ErrWriteFailed)

		keys, err := b.Keys("")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, keys)
	})
}
