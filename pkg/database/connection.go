// Package database writes record snapshots to a SQLite file for use by other tools.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ConnectDB opens the SQLite database at path, creating its directory first
func ConnectDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	return sql.Open("sqlite3", path)
}

// EnsureSchema creates the snapshot tables if they don't exist
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			priority TEXT NOT NULL,
			duedate TEXT,
			completed BOOLEAN NOT NULL DEFAULT 0,
			created TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("creating todos table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			category TEXT NOT NULL,
			created TEXT NOT NULL,
			lastmodified TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("creating notes table: %w", err)
	}
	return nil
}
