package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// authKey is the single slot the portal uses; the table is keyed so a
// signing or expiry sidecar value can live alongside it later.
const authKey = "auth"

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, authKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session record: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, authKey, value)
	if err != nil {
		return fmt.Errorf("failed to set session record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, authKey)
	if err != nil {
		return fmt.Errorf("failed to clear session record: %w", err)
	}
	return nil
}
