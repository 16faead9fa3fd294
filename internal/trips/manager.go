// Package trips manages the engine's view of ledger trip records: the
// materialized raw-record snapshot scanned by the pre-filter and the spatial
// index over active candidates. Record retrieval from the ledger itself is an
// external collaborator's job; the manager only consumes what lands in the
// store.
package trips

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"engine.triper.app/internal/geo"
	"engine.triper.app/internal/ledgercodec"
	"engine.triper.app/internal/logging"
	"engine.triper.app/internal/models"
	"engine.triper.app/internal/tripstore"
)

// Manager owns the in-memory snapshot and the spatial index. Reads and
// refreshes may run concurrently.
type Manager struct {
	Store *tripstore.Client

	logger *slog.Logger
	index  *geo.SpatialIndex

	mu      sync.RWMutex
	records [][]byte
}

// NewManager creates a manager over an opened store and loads the initial
// snapshot.
func NewManager(store *tripstore.Client, logger *slog.Logger) (*Manager, error) {
	m := &Manager{
		Store:  store,
		logger: logging.ForComponent(logger, "trips"),
		index:  geo.NewSpatialIndex(),
	}
	if err := m.Refresh(context.Background()); err != nil {
		return nil, err
	}
	return m, nil
}

// Refresh re-materializes the raw-record snapshot from the store and rebuilds
// the spatial index from the records that decode as active trips. Records
// that fail to decode stay in the snapshot (the pre-filter counts and skips
// them) but never enter the index.
func (m *Manager) Refresh(ctx context.Context) error {
	records, err := m.Store.ListRecordData(ctx)
	if err != nil {
		return fmt.Errorf("failed to load record snapshot: %w", err)
	}

	var summaries []models.CandidateSummary
	decodeFailures := 0
	for _, raw := range records {
		trip, err := ledgercodec.Decode(raw)
		if err != nil {
			decodeFailures++
			continue
		}
		if !trip.IsActive {
			continue
		}
		summaries = append(summaries, models.NewCandidateSummary(trip))
	}

	m.index.Rebuild(summaries)

	m.mu.Lock()
	m.records = records
	m.mu.Unlock()

	m.logger.Info("record snapshot refreshed",
		"records", len(records),
		"indexed", len(summaries),
		"decode_failures", decodeFailures)
	return nil
}

// Ingest writes freshly fetched ledger records to the store and refreshes the
// snapshot.
func (m *Manager) Ingest(ctx context.Context, records []tripstore.RawRecord) error {
	if err := m.Store.UpsertRecords(ctx, records); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// RawRecords returns the current materialized snapshot. The returned slice
// must be treated as read-only; it is shared with concurrent readers.
func (m *Manager) RawRecords() [][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records
}

// SpatialIndex exposes the index over active candidate destinations.
func (m *Manager) SpatialIndex() *geo.SpatialIndex {
	return m.index
}

// Shutdown closes the underlying store.
func (m *Manager) Shutdown() {
	if m == nil {
		return
	}
	logging.SafeCloseWithLogging(m.Store, m.logger, "record_store")
}
