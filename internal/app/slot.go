// Package app wires configuration to concrete backends shared by the
// server and the CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"caretranslate/internal/config"
	"caretranslate/internal/db"
	"caretranslate/internal/storage"
)

// openDB is replaced in tests.
var openDB = func(dsn string) (*sql.DB, error) { return sql.Open("postgres", dsn) }

// OpenSlot opens the storage backend selected by cfg.Driver. The returned
// close function releases it and is never nil.
func OpenSlot(ctx context.Context, cfg config.StorageConfig) (storage.Slot, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverMemory:
		return storage.NewMemorySlot(), noop, nil
	case config.DriverFile:
		slot, err := storage.NewFileSlot(cfg.Dir)
		if err != nil {
			return nil, noop, fmt.Errorf("storage.NewFileSlot > %w", err)
		}
		return slot, noop, nil
	case config.DriverPostgres:
		conn, err := openDB(cfg.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("sql.Open > %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := conn.PingContext(pingCtx); err != nil {
			_ = conn.Close()
			return nil, noop, fmt.Errorf("ping database > %w", err)
		}
		if err := db.Migrate(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, noop, fmt.Errorf("db.Migrate > %w", err)
		}
		return db.NewSlotRepository(conn), conn.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
