package sqlite

// Schema DDL for the records table. The position column preserves
// collection order across save/load cycles.
const schemaSQL = `CREATE TABLE IF NOT EXISTS records (
    record_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    record_type TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    surname TEXT NOT NULL DEFAULT '',
    birth TEXT NOT NULL DEFAULT '',
    gender TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    last_edited_at TEXT NOT NULL
);`
