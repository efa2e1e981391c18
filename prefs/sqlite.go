package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Schema holds the single prefs table. One row per key; this tool only ever
// writes the max loss key.
const Schema = `
CREATE TABLE IF NOT EXISTS prefs (
	key TEXT PRIMARY KEY,
	value REAL NOT NULL
);
`

// SQLiteStore keeps the preference in a local SQLite file so it survives
// between runs.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating when needed) the preference database at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create prefs dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create prefs schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LastMaxLoss() (float64, bool, error) {
	var v float64
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, maxLossKey).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (s *SQLiteStore) SaveMaxLoss(value float64) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		maxLossKey, value,
	)
	return err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM prefs WHERE key = ?`, maxLossKey)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
