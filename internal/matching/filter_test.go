package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engine.triper.app/internal/ledgercodec"
	"engine.triper.app/internal/models"
)

func ownerWithByte(b byte) models.Owner {
	var o models.Owner
	o[0] = b
	return o
}

func encodedTrip(owner byte, grid string, start, end int64, active bool) []byte {
	return ledgercodec.Encode(models.Trip{
		Owner:           ownerWithByte(owner),
		DestinationGrid: grid,
		StartDate:       start,
		EndDate:         end,
		IsActive:        active,
		CreatedAt:       start - day,
	})
}

func TestQueryValidate(t *testing.T) {
	valid := Query{DestinationGrid: "9q8", StartDate: 0, EndDate: day, Limit: 10}
	assert.NoError(t, valid.Validate())

	missingGrid := valid
	missingGrid.DestinationGrid = ""
	assert.ErrorIs(t, missingGrid.Validate(), ErrInvalidQuery)

	zeroLimit := valid
	zeroLimit.Limit = 0
	assert.ErrorIs(t, zeroLimit.Validate(), ErrInvalidQuery)

	negativeLimit := valid
	negativeLimit.Limit = -3
	assert.ErrorIs(t, negativeLimit.Validate(), ErrInvalidQuery)
}

func TestFilterCandidatesScenario(t *testing.T) {
	start := int64(1_748_736_000) // 2025-06-01
	records := [][]byte{
		encodedTrip(1, "8a", start, start+9*day, true),  // 2025-06-01..06-10
		encodedTrip(2, "8b", start, start+9*day, true),  // wrong grid
	}

	got, stats := FilterCandidates(records, Query{
		DestinationGrid: "8a",
		StartDate:       start + 4*day, // 2025-06-05
		EndDate:         start + 7*day, // 2025-06-08
		Limit:           DefaultCandidateLimit,
	})

	require.Len(t, got, 1)
	assert.Equal(t, ownerWithByte(1).String(), got[0].Owner)
	assert.Equal(t, "8a", got[0].DestinationGrid)
	assert.Equal(t, 2, stats.Scanned)
	assert.Equal(t, 0, stats.DecodeFailures)
}

func TestFilterCandidatesFilterOrder(t *testing.T) {
	start := int64(1_748_736_000)
	q := Query{
		DestinationGrid: "8a",
		StartDate:       start,
		EndDate:         start + 5*day,
		ExcludeOwners:   map[models.Owner]struct{}{ownerWithByte(3): {}},
		Limit:           10,
	}

	records := [][]byte{
		encodedTrip(1, "8a", start, start+2*day, true),       // passes
		encodedTrip(2, "8a", start, start+2*day, false),      // inactive
		encodedTrip(3, "8a", start, start+2*day, true),       // excluded owner
		encodedTrip(4, "8a", start+10*day, start+12*day, true), // no date overlap
		encodedTrip(5, "8A", start, start+2*day, true),       // grid match is exact, no case folding
	}

	got, stats := FilterCandidates(records, q)
	require.Len(t, got, 1)
	assert.Equal(t, ownerWithByte(1).String(), got[0].Owner)
	assert.Equal(t, 5, stats.Scanned)
}

func TestFilterCandidatesInclusiveBoundaries(t *testing.T) {
	start := int64(1_748_736_000)

	// Trip ends exactly where the query window starts: inclusive comparison
	// keeps it, unlike the scorer's strict empty-window rule.
	records := [][]byte{
		encodedTrip(1, "8a", start, start+2*day, true),
	}
	got, _ := FilterCandidates(records, Query{
		DestinationGrid: "8a",
		StartDate:       start + 2*day,
		EndDate:         start + 4*day,
		Limit:           10,
	})
	assert.Len(t, got, 1)

	// One second past the trip end no longer overlaps.
	got, _ = FilterCandidates(records, Query{
		DestinationGrid: "8a",
		StartDate:       start + 2*day + 1,
		EndDate:         start + 4*day,
		Limit:           10,
	})
	assert.Empty(t, got)
}

func TestFilterCandidatesSkipsMalformedRecords(t *testing.T) {
	start := int64(1_748_736_000)

	valid := make([][]byte, 5)
	for i := range valid {
		valid[i] = encodedTrip(byte(10+i), "8a", start, start+3*day, true)
	}

	// A record whose declared grid-hash length runs past the buffer end.
	corrupt := encodedTrip(99, "8a", start, start+3*day, true)
	corrupt[8+models.OwnerIDLength] = 0xff

	records := [][]byte{valid[0], valid[1], corrupt, valid[2], valid[3], valid[4]}
	got, stats := FilterCandidates(records, Query{
		DestinationGrid: "8a",
		StartDate:       start,
		EndDate:         start + day,
		Limit:           50,
	})

	require.Len(t, got, 5)
	assert.Equal(t, 1, stats.DecodeFailures)
	assert.Equal(t, 6, stats.Scanned)
}

func TestFilterCandidatesEarlyExitAtLimit(t *testing.T) {
	start := int64(1_748_736_000)
	records := make([][]byte, 10)
	for i := range records {
		records[i] = encodedTrip(byte(i+1), "8a", start, start+3*day, true)
	}

	got, stats := FilterCandidates(records, Query{
		DestinationGrid: "8a",
		StartDate:       start,
		EndDate:         start + day,
		Limit:           3,
	})

	require.Len(t, got, 3)
	// Scan order preserved, and the scan stopped at the limit.
	assert.Equal(t, ownerWithByte(1).String(), got[0].Owner)
	assert.Equal(t, ownerWithByte(2).String(), got[1].Owner)
	assert.Equal(t, ownerWithByte(3).String(), got[2].Owner)
	assert.Equal(t, 3, stats.Scanned)
}

func TestFilterCandidatesZeroLimitReturnsEmpty(t *testing.T) {
	records := [][]byte{encodedTrip(1, "8a", 0, day, true)}

	got, stats := FilterCandidates(records, Query{DestinationGrid: "8a", Limit: 0})
	assert.Empty(t, got)
	assert.Equal(t, 0, stats.Scanned)
}

func TestFilterCandidatesEmptyInput(t *testing.T) {
	got, stats := FilterCandidates(nil, Query{DestinationGrid: "8a", Limit: 5})
	assert.Empty(t, got)
	assert.Equal(t, FilterStats{}, stats)
}
