// Package tripstore is the local cache of raw trip records fetched from the
// ledger. Records are stored as opaque byte buffers exactly as the ledger
// returned them; decoding happens in the matching core, never here. The store
// exists so the pre-filter can scan a materialized snapshot instead of
// holding an RPC connection open.
package tripstore

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"engine.triper.app/internal/appconf"
	"engine.triper.app/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS trip_records (
	pubkey     TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	slot       INTEGER NOT NULL DEFAULT 0,
	fetched_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trip_records_fetched_at ON trip_records(fetched_at);
`

// Client wraps the SQLite database holding cached ledger records.
type Client struct {
	DB     *sql.DB
	config Config
	logger *slog.Logger
}

// NewClient opens (creating if necessary) the record cache at cfg.DBPath.
func NewClient(cfg Config) (*Client, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store at %s: %w", cfg.DBPath, err)
	}

	// A single writer keeps SQLite happy; reads still run concurrently
	// through WAL.
	db.SetMaxOpenConns(1)

	if cfg.Env != appconf.Test {
		if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragmas: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger := logging.ForComponent(logging.NewStructuredLogger(os.Stdout, slog.LevelInfo), "tripstore")
	if cfg.verbose {
		logger.Info("record store opened", "path", cfg.DBPath)
	}

	return &Client{DB: db, config: cfg, logger: logger}, nil
}

// Close releases the underlying database handle.
func (c *Client) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
