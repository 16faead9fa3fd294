package matching

import (
	"errors"
	"fmt"

	"engine.triper.app/internal/ledgercodec"
	"engine.triper.app/internal/models"
)

// DefaultCandidateLimit caps the pre-filter result size when a query does not
// specify one.
const DefaultCandidateLimit = 50

// ErrInvalidQuery wraps all pre-filter query validation failures.
var ErrInvalidQuery = errors.New("invalid candidate query")

// Query narrows the universe of trips before any secure computation is
// requested. Destination and owner comparisons are exact matches: no
// case-folding and no cell-resolution conversion.
type Query struct {
	DestinationGrid string
	StartDate       int64 // Unix seconds, inclusive
	EndDate         int64 // Unix seconds, inclusive
	ExcludeOwners   map[models.Owner]struct{}
	Limit           int
}

// Validate rejects queries the filter must never run on. It does not touch
// any records.
func (q Query) Validate() error {
	if q.DestinationGrid == "" {
		return fmt.Errorf("%w: destination grid hash is required", ErrInvalidQuery)
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidQuery, q.Limit)
	}
	return nil
}

// FilterStats reports what a scan did, for logging and metrics at the caller.
type FilterStats struct {
	Scanned        int
	DecodeFailures int
}

// FilterCandidates scans raw ledger records and returns at most q.Limit
// candidate summaries in scan order. Records that fail to decode are skipped:
// one malformed record never fails the batch. The scan stops as soon as the
// limit is reached; remaining records are not examined.
//
// Callers must not mutate a record buffer while the scan runs. A limit ≤ 0
// yields an empty result without scanning.
func FilterCandidates(records [][]byte, q Query) ([]models.CandidateSummary, FilterStats) {
	var stats FilterStats
	if q.Limit <= 0 {
		return []models.CandidateSummary{}, stats
	}

	candidates := make([]models.CandidateSummary, 0, q.Limit)
	for _, raw := range records {
		if len(candidates) >= q.Limit {
			break
		}
		stats.Scanned++

		trip, err := ledgercodec.Decode(raw)
		if err != nil {
			stats.DecodeFailures++
			continue
		}

		// Filter order matters for short-circuiting: cheap string equality
		// first, date arithmetic last.
		if trip.DestinationGrid != q.DestinationGrid {
			continue
		}
		if !trip.IsActive {
			continue
		}
		if _, excluded := q.ExcludeOwners[trip.Owner]; excluded {
			continue
		}
		// Inclusive-boundary interval intersection. The scorer uses a strict
		// empty-window check instead; downstream consumers depend on the
		// asymmetry, so keep it.
		if !(q.StartDate <= trip.EndDate && q.EndDate >= trip.StartDate) {
			continue
		}

		candidates = append(candidates, models.NewCandidateSummary(trip))
	}
	return candidates, stats
}
