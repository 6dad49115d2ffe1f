// Package sqlite persists JDex entries so users can consult past
// organizing runs. The store is write-mostly reference output; the
// numbering engine never reads allocation state from it.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"ordino/internal/domain"
	"ordino/internal/ports"
)

// Index implements ports.CatalogIndex using SQLite.
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements CatalogIndex
var _ ports.CatalogIndex = (*Index)(nil)

// NewIndex creates an unopened index.
func NewIndex() *Index {
	return &Index{}
}

// DefaultPath returns the XDG data location for the index database.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ordino", "jdex.db")
}

// Open initializes the database at path, creating it if needed.
func (idx *Index) Open(path string) error {
	idx.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL mode for better concurrency with external readers
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entries (
			rowid_seq INTEGER PRIMARY KEY AUTOINCREMENT,
			jd_id TEXT NOT NULL,
			title TEXT NOT NULL,
			location TEXT NOT NULL,
			description TEXT,
			created TEXT NOT NULL,
			notes TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_entries_jd_id ON entries(jd_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Record stores one JDex entry.
func (idx *Index) Record(entry domain.IndexEntry) error {
	_, err := idx.db.Exec(`
		INSERT INTO entries (jd_id, title, location, description, created, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Title, entry.Location, entry.Description,
		entry.Created.UTC().Format(time.RFC3339), entry.Notes)
	if err != nil {
		return fmt.Errorf("failed to record entry %s: %w", entry.ID, err)
	}
	return nil
}

// Entries returns all stored entries, oldest first.
func (idx *Index) Entries() ([]domain.IndexEntry, error) {
	rows, err := idx.db.Query(`
		SELECT jd_id, title, location, description, created, notes
		FROM entries ORDER BY rowid_seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.IndexEntry
	for rows.Next() {
		var e domain.IndexEntry
		var created string
		if err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.Description, &created, &e.Notes); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			e.Created = t
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
