package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// layoutKey is the row key for the single layout snapshot. Keeping the
// table keyed leaves room for named layouts later.
const layoutKey = "default"

// SQLiteStore keeps snapshots in a key/value table inside a SQLite
// database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the database at path and
// ensures the snapshot table exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create layout dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open layout db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS layouts (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init layout db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// LoadLayout returns (nil, nil) when no snapshot has been saved yet.
func (s *SQLiteStore) LoadLayout() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM layouts WHERE key = ?`, layoutKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read layout row: %w", err)
	}
	return data, nil
}

// SaveLayout upserts the snapshot row.
func (s *SQLiteStore) SaveLayout(data []byte) error {
	_, err := s.db.Exec(`INSERT INTO layouts (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, layoutKey, data)
	if err != nil {
		return fmt.Errorf("write layout row: %w", err)
	}
	return nil
}

// ReadState returns the value saved under a panel state key, or
// (nil, nil) when the key is absent. State keys share the layout table
// under a "state/" prefix so one database file carries everything.
func (s *SQLiteStore) ReadState(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM layouts WHERE key = ?`, "state/"+key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state %q: %w", key, err)
	}
	return data, nil
}

// WriteState upserts the value under a panel state key.
func (s *SQLiteStore) WriteState(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO layouts (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, "state/"+key, value)
	if err != nil {
		return fmt.Errorf("write state %q: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
