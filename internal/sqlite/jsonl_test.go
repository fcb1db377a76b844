// Tests for JSONL persistence helpers.
package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONL_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, kvJSONL)

	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))
	records := []json.RawMessage{
		json.RawMessage(`{"key":"a","value":"1"}`),
		json.RawMessage(`{"key":"b","value":"2"}`),
	}
	require.NoError(t, writeJSONL(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"key\":\"a\",\"value\":\"1\"}\n{\"key\":\"b\",\"value\":\"2\"}\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestReadJSONL_SkipsMalformedAndEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), kvJSONL)
	content := "{\"key\":\"a\",\"value\":\"1\"}\n\nnot json\n{\"key\":\"b\",\n{\"key\":\"c\",\"value\":\"3\"}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := readJSONL(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadJSONL_MissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestReadJSONL_LongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), kvJSONL)
	big := strings.Repeat("x", 200*1024)
	rec, err := json.Marshal(kvRecord{Key: "big", Value: big})
	require.NoError(t, err)
	require.NoError(t, writeJSONL(path, []json.RawMessage{rec}))

	records, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	var got kvRecord
	require.NoError(t, json.Unmarshal(records[0], &got))
	assert.Equal(t, big, got.Value)
}

func TestReadJSONL_LinesBeyondScannerLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), kvJSONL)
	big := strings.Repeat("y", 17*1024*1024)
	rec, err := json.Marshal(kvRecord{Key: "huge", Value: big})
	require.NoError(t, err)
	small, err := json.Marshal(kvRecord{Key: "small", Value: "1"})
	require.NoError(t, err)
	require.NoError(t, writeJSONL(path, []json.RawMessage{rec, small}))

	records, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	var got kvRecord
	require.NoError(t, json.Unmarshal(records[0], &got))
	assert.Len(t, got.Value, len(big))
	require.NoError(t, json.Unmarshal(records[1], &got))
	assert.Equal(t, "small", got.Key)
}

func TestReadJSONL_LastLineWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), kvJSONL)
	data := "{\"key\":\"a\",\"value\":\"1\"}\r\nnot json\n\n{\"key\":\"b\",\"value\":\"2\"}"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	records, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"key":"b","value":"2"}`, string(records[1]))
}

func TestInitJSONLFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, initJSONLFile(dir))

	path := filepath.Join(dir, kvJSONL)
	require.NoError(t, os.WriteFile(path, []byte("{\"key\":\"a\",\"value\":\"1\"}\n"), 0o644))
	require.NoError(t, initJSONLFile(dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data, "existing file must not be truncated")
}
