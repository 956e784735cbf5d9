// internal/store/sqlite.go
//
// SQLite-backed Store implementation so sessions and stats survive a server
// restart. Values live in the kv table (key TEXT PRIMARY KEY, value BLOB);
// writes are upserts.

package store

import (
	"context"
	"database/sql"
	"errors"
)

type sqlite struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open database as a Store. The kv table is created
// by migrations before the server starts.
func NewSQLiteStore(db *sql.DB) Store {
	return &sqlite{db: db}
}

func (s *sqlite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key=?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *sqlite) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO kv(key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
	return err
}
