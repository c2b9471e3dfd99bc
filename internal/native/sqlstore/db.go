// Package sqlstore keeps an offline native model in a SQLite file so the
// CLI can read and write sections between runs.
package sqlstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	Path string
}

const schema = `
CREATE TABLE IF NOT EXISTS frame_properties (
	name      TEXT PRIMARY KEY,
	ord       INTEGER NOT NULL,
	material  TEXT NOT NULL DEFAULT '',
	kind      TEXT NOT NULL,
	params    TEXT NOT NULL,
	props     TEXT,
	modifiers TEXT NOT NULL,
	library   TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS segments (
	section     TEXT NOT NULL REFERENCES frame_properties(name) ON DELETE CASCADE,
	idx         INTEGER NOT NULL,
	start_name  TEXT NOT NULL,
	end_name    TEXT NOT NULL,
	length      REAL NOT NULL,
	length_type INTEGER NOT NULL,
	ei33        INTEGER NOT NULL,
	ei22        INTEGER NOT NULL,
	PRIMARY KEY (section, idx)
);
`

func EnsureDataDir(cfg Config) error {
	dir := filepath.Dir(cfg.Path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Open opens (creating if needed) the model file and applies the schema.
func Open(cfg Config) (*sql.DB, error) {
	if err := EnsureDataDir(cfg); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma foreign_keys: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}
