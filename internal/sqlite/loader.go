// This file implements JSONL loading for startup.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"
)

// loadKVJSONL reads kv.jsonl and inserts its records into the kv table.
// Loading is transactional: all succeed or the table stays empty. Malformed
// lines and records without a key are skipped; when a key repeats, the last
// line wins.
func loadKVJSONL(db *sql.DB, dataDir string) (int, error) {
	records, err := readJSONL(filepath.Join(dataDir, kvJSONL))
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing load statement: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for _, raw := range records {
		var rec kvRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Key == "" {
			continue
		}
		if rec.UpdatedAt == "" {
			rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		}
		if _, err := stmt.Exec(rec.Key, rec.Value, rec.UpdatedAt); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", rec.Key, err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}
