package sqlite

// File names inside the data directory.
const (
	dbFileName = "nest.db"
	kvJSONL    = "kv.jsonl"
)

// Schema DDL. SQLite is rebuilt from kv.jsonl on every Attach, so the schema
// carries no migrations.
const (
	createKV = `CREATE TABLE kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	idxKVUpdated = `CREATE INDEX idx_kv_updated ON kv(updated_at);`
)

// schemaDDL lists all statements executed on a fresh database.
var schemaDDL = []string{
	createKV,
	idxKVUpdated,
}
