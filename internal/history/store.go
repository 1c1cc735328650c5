// Package history keeps a local log of completed pronunciation downloads in
// a sqlite database. Recording is best-effort and never fails a download.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded download.
type Entry struct {
	Word            string
	PronunciationID int64
	Path            string // vault-relative stored path
	Language        string // service code used for the lookup, may be empty
	DownloadedAt    time.Time
}

// Store records completed downloads.
type Store struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS downloads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	pronunciation_id INTEGER NOT NULL,
	path TEXT NOT NULL,
	language TEXT NOT NULL DEFAULT '',
	downloaded_at TIMESTAMP NOT NULL
)`

// Open opens the history database at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one download to the log.
func (s *Store) Record(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO downloads (word, pronunciation_id, path, language, downloaded_at) VALUES (?, ?, ?, ?, ?)`,
		e.Word, e.PronunciationID, e.Path, e.Language, e.DownloadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record download: %w", err)
	}
	return nil
}

// Recent returns the most recent downloads, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT word, pronunciation_id, path, language, downloaded_at
		 FROM downloads ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Word, &e.PronunciationID, &e.Path, &e.Language, &e.DownloadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
