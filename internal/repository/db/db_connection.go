package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InMemoryDSN keeps the journal for the lifetime of the process only.
const InMemoryDSN = ":memory:"

const sqliteDriverName = "sqlite"

// InitDB opens a SQLite database and ensures the journal table exists.
// With InMemoryDSN the pool is pinned to one connection that never expires,
// since every new connection would see an empty database.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", dsn, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const schemaChamberEvents = `
CREATE TABLE IF NOT EXISTS chamber_events (
    id TEXT PRIMARY KEY,
    chamber_id TEXT NOT NULL,
    occurred_at TEXT NOT NULL, -- UTC "2006-01-02 15:04:05.000"
    type TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    meta TEXT
);
`

const schemaChamberEventsIndex = `
CREATE INDEX IF NOT EXISTS idx_chamber_events_chamber_time
    ON chamber_events (chamber_id, occurred_at);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaChamberEvents,
		schemaChamberEventsIndex,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
