package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SlotRepository stores key-value slots in the kv_slots table. It satisfies
// storage.Slot so the dictionary can persist to postgres instead of a file.
// The caller is responsible for managing the DB connection lifecycle.
type SlotRepository struct {
	DB *sql.DB
}

// NewSlotRepository constructs a SlotRepository from an existing sql.DB.
func NewSlotRepository(db *sql.DB) *SlotRepository { return &SlotRepository{DB: db} }

// Get returns the value stored under key.
func (r *SlotRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.DB.QueryRowContext(ctx,
		`SELECT value FROM kv_slots WHERE key = $1`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select slot %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value stored under key.
func (r *SlotRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO kv_slots (key, value, updated_at)
         VALUES ($1, $2, NOW())
         ON CONFLICT (key) DO UPDATE
         SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

// Remove deletes the row for key. A missing row is not an error.
func (r *SlotRepository) Remove(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM kv_slots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}

// Ping verifies the connection; used by the health endpoint.
func (r *SlotRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
