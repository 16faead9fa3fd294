package models

import (
	"encoding/hex"
	"fmt"
)

// OwnerIDLength is the fixed byte length of a trip owner identifier.
const OwnerIDLength = 32

// Owner is the 32-byte identifier of the account that created a trip. The
// engine treats it as an opaque value; equality is exact byte comparison.
type Owner [OwnerIDLength]byte

// String renders the owner as 64 lowercase hex characters, the form used at
// the API boundary.
func (o Owner) String() string {
	return hex.EncodeToString(o[:])
}

// ParseOwner converts the API representation back into an Owner.
func ParseOwner(s string) (Owner, error) {
	var o Owner
	raw, err := hex.DecodeString(s)
	if err != nil {
		return o, fmt.Errorf("owner ID is not valid hex: %w", err)
	}
	if len(raw) != OwnerIDLength {
		return o, fmt.Errorf("owner ID must be %d bytes, got %d", OwnerIDLength, len(raw))
	}
	copy(o[:], raw)
	return o, nil
}

// GridCell identifies a coarse geospatial cell from a hierarchical indexing
// scheme. Cells are compared by identifier value only; no geometric reasoning
// happens during overlap counting.
type GridCell string

// Route is an ordered sequence of grid cells approximating a travel path.
// Order is preserved for display but ignored when counting overlap.
type Route []GridCell

// Trip is a decoded ledger trip record. Values are immutable once decoded.
type Trip struct {
	Owner            Owner
	DestinationGrid  string
	StartDate        int64 // Unix seconds
	EndDate          int64 // Unix seconds
	EncryptedPayload []byte // opaque; decrypted only inside the MPC boundary
	IsActive         bool
	CreatedAt        int64 // Unix seconds
}

// CandidateSummary is the reduced view of a Trip surfaced by the pre-filter.
// It deliberately omits the encrypted payload.
type CandidateSummary struct {
	Owner           string `json:"owner"`
	DestinationGrid string `json:"destinationGridHash"`
	StartDate       int64  `json:"startDate"`
	EndDate         int64  `json:"endDate"`
	IsActive        bool   `json:"isActive"`
	CreatedAt       int64  `json:"createdAt"`
}

// NewCandidateSummary builds the filter-surfaced view of a decoded trip.
func NewCandidateSummary(trip Trip) CandidateSummary {
	return CandidateSummary{
		Owner:           trip.Owner.String(),
		DestinationGrid: trip.DestinationGrid,
		StartDate:       trip.StartDate,
		EndDate:         trip.EndDate,
		IsActive:        trip.IsActive,
		CreatedAt:       trip.CreatedAt,
	}
}
