package tripstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// RawRecord is one ledger account buffer as fetched, keyed by its account
// public key (base-58 or hex, opaque to the store).
type RawRecord struct {
	Pubkey    string
	Data      []byte
	Slot      int64
	FetchedAt int64
}

// UpsertRecords writes records in batches, replacing any existing row with
// the same pubkey. Later fetches of the same account overwrite earlier ones.
func (c *Client) UpsertRecords(ctx context.Context, records []RawRecord) error {
	if len(records) == 0 {
		return nil
	}

	batchSize := c.config.GetBulkInsertBatchSize()
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := c.upsertBatch(ctx, records[start:end]); err != nil {
			return fmt.Errorf("failed to upsert records %d..%d: %w", start, end, err)
		}
	}

	if c.config.verbose {
		c.logger.Info("records upserted", "count", len(records))
	}
	return nil
}

func (c *Client) upsertBatch(ctx context.Context, batch []RawRecord) error {
	var sb strings.Builder
	sb.WriteString("INSERT INTO trip_records (pubkey, data, slot, fetched_at) VALUES ")

	args := make([]interface{}, 0, len(batch)*4)
	for i, rec := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?)")
		args = append(args, rec.Pubkey, rec.Data, rec.Slot, rec.FetchedAt)
	}
	sb.WriteString(" ON CONFLICT(pubkey) DO UPDATE SET data=excluded.data, slot=excluded.slot, fetched_at=excluded.fetched_at")

	_, err := c.DB.ExecContext(ctx, sb.String(), args...)
	return err
}

// ListRecordData returns every cached record buffer in insertion order. This
// is the materialized sequence handed to the candidate pre-filter.
func (c *Client) ListRecordData(ctx context.Context) ([][]byte, error) {
	rows, err := c.DB.QueryContext(ctx, "SELECT data FROM trip_records ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var buffers [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		buffers = append(buffers, data)
	}
	return buffers, rows.Err()
}

// GetRecord returns the cached buffer for one account, or (nil, false) when
// the account is not cached.
func (c *Client) GetRecord(ctx context.Context, pubkey string) ([]byte, bool, error) {
	var data []byte
	err := c.DB.QueryRowContext(ctx, "SELECT data FROM trip_records WHERE pubkey = ?", pubkey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get record %s: %w", pubkey, err)
	}
	return data, true, nil
}

// RecordCount reports how many records are cached.
func (c *Client) RecordCount(ctx context.Context) (int, error) {
	var count int
	if err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM trip_records").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// DeleteRecord removes one cached account, e.g. after the ledger reports it
// closed. Deleting an absent record is not an error.
func (c *Client) DeleteRecord(ctx context.Context, pubkey string) error {
	if _, err := c.DB.ExecContext(ctx, "DELETE FROM trip_records WHERE pubkey = ?", pubkey); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", pubkey, err)
	}
	return nil
}
