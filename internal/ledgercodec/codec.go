// Package ledgercodec implements the persisted binary format for trip records
// fetched from the ledger. The layout is position-exact: downstream consumers
// (the secure-computation circuit and the UI) depend on it bit-for-bit, so any
// change here requires a format version bump.
package ledgercodec

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"

	"engine.triper.app/internal/models"
)

// Record layout, after the 8-byte account discriminator:
//
//	owner            32 bytes, fixed
//	destination grid u32 LE length + UTF-8 bytes
//	start date       i64 LE, Unix seconds
//	end date         i64 LE, Unix seconds
//	encrypted data   u32 LE length + bytes (opaque)
//	is_active        1 byte (0 or 1 canonically; any nonzero decodes as true)
//	created_at       i64 LE, Unix seconds
const (
	discriminatorLength = 8
	lengthPrefixSize    = 4

	// MinRecordLength is the size of a record whose variable-length fields
	// are both empty.
	MinRecordLength = discriminatorLength +
		models.OwnerIDLength +
		lengthPrefixSize + // destination grid prefix
		8 + 8 + // start, end
		lengthPrefixSize + // payload prefix
		1 + // is_active
		8 // created_at
)

var (
	// ErrTruncated reports a record too short for a declared field: any read
	// that would run past the end of the buffer, including a length prefix
	// whose value exceeds the remaining bytes.
	ErrTruncated = errors.New("trip record truncated")

	// ErrInvalidUTF8 reports a destination grid hash that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("destination grid hash is not valid UTF-8")
)

type reader struct {
	buf []byte
	pos int
}

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) || r.pos+n < r.pos {
		return nil, ErrTruncated
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *reader) u32() (uint32, error) {
	raw, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw), nil
}

func (r *reader) i64() (int64, error) {
	raw, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(raw)), nil
}

// Decode parses a raw account buffer into a Trip. The first 8 bytes are the
// record-type discriminator, skipped without validation; callers are expected
// to have selected only records of the right type. Decode performs no
// semantic validation beyond the wire format itself (date ordering is the
// caller's concern) and has no side effects.
func Decode(buf []byte) (models.Trip, error) {
	var trip models.Trip
	r := &reader{buf: buf}

	if _, err := r.take(discriminatorLength); err != nil {
		return trip, err
	}

	ownerRaw, err := r.take(models.OwnerIDLength)
	if err != nil {
		return trip, err
	}
	copy(trip.Owner[:], ownerRaw)

	gridLen, err := r.u32()
	if err != nil {
		return trip, err
	}
	gridRaw, err := r.take(int(gridLen))
	if err != nil {
		return trip, err
	}
	if !utf8.Valid(gridRaw) {
		return trip, ErrInvalidUTF8
	}
	trip.DestinationGrid = string(gridRaw)

	if trip.StartDate, err = r.i64(); err != nil {
		return trip, err
	}
	if trip.EndDate, err = r.i64(); err != nil {
		return trip, err
	}

	payloadLen, err := r.u32()
	if err != nil {
		return trip, err
	}
	payloadRaw, err := r.take(int(payloadLen))
	if err != nil {
		return trip, err
	}
	if len(payloadRaw) > 0 {
		trip.EncryptedPayload = make([]byte, len(payloadRaw))
		copy(trip.EncryptedPayload, payloadRaw)
	}

	activeRaw, err := r.take(1)
	if err != nil {
		return trip, err
	}
	trip.IsActive = activeRaw[0] != 0

	if trip.CreatedAt, err = r.i64(); err != nil {
		return trip, err
	}

	return trip, nil
}

// Discriminator is the record-type tag written by Encode. The decoder skips
// whatever discriminator it finds; this value only matters for canonical
// output.
var Discriminator = [discriminatorLength]byte{'t', 'r', 'i', 'p', 'r', 'e', 'c', '1'}

// Encode serializes a Trip in the canonical wire form: the active flag is
// written as exactly 0 or 1, and Decode(Encode(t)) == t for every trip whose
// grid hash is valid UTF-8.
func Encode(trip models.Trip) []byte {
	grid := []byte(trip.DestinationGrid)
	size := MinRecordLength + len(grid) + len(trip.EncryptedPayload)

	out := make([]byte, 0, size)
	out = append(out, Discriminator[:]...)
	out = append(out, trip.Owner[:]...)

	out = binary.LittleEndian.AppendUint32(out, uint32(len(grid)))
	out = append(out, grid...)

	out = binary.LittleEndian.AppendUint64(out, uint64(trip.StartDate))
	out = binary.LittleEndian.AppendUint64(out, uint64(trip.EndDate))

	out = binary.LittleEndian.AppendUint32(out, uint32(len(trip.EncryptedPayload)))
	out = append(out, trip.EncryptedPayload...)

	if trip.IsActive {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}

	out = binary.LittleEndian.AppendUint64(out, uint64(trip.CreatedAt))
	return out
}
