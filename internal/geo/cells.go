// Package geo converts client-supplied route geometry into the coarse grid
// cells the matching engine operates on, and maintains a spatial index over
// candidate destinations. Cells are geohash strings: hierarchical, with finer
// cells nesting inside coarser ones by prefix.
package geo

import (
	"errors"
	"fmt"

	"github.com/mmcloughlin/geohash"
	"github.com/twpayne/go-polyline"

	"engine.triper.app/internal/models"
)

// DefaultCellPrecision is the geohash length used for route cells: 5
// characters is roughly a 5 km cell, coarse enough that a cell identifier
// reveals an area rather than a location.
const DefaultCellPrecision = 5

// MaxCellPrecision bounds client-requested precision; anything finer leaks
// too much location detail into the public pre-filter.
const MaxCellPrecision = 7

const base32Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

var ErrEmptyPolyline = errors.New("polyline decodes to no coordinates")

// CellsForPolyline decodes a Google encoded polyline and returns the
// deduplicated sequence of grid cells its waypoints fall in, preserving
// first-visit order.
func CellsForPolyline(encoded []byte, precision uint) (models.Route, error) {
	if precision == 0 {
		precision = DefaultCellPrecision
	}
	if precision > MaxCellPrecision {
		return nil, fmt.Errorf("cell precision must not exceed %d, got %d", MaxCellPrecision, precision)
	}

	coords, _, err := polyline.DecodeCoords(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}
	if len(coords) == 0 {
		return nil, ErrEmptyPolyline
	}

	seen := make(map[models.GridCell]struct{}, len(coords))
	cells := make(models.Route, 0, len(coords))
	for _, c := range coords {
		cell := models.GridCell(geohash.EncodeWithPrecision(c[0], c[1], precision))
		if _, dup := seen[cell]; dup {
			continue
		}
		seen[cell] = struct{}{}
		cells = append(cells, cell)
	}
	return cells, nil
}

// ValidCell reports whether id is a well-formed geohash cell identifier.
func ValidCell(id models.GridCell) bool {
	if len(id) == 0 || len(id) > 12 {
		return false
	}
	for _, r := range string(id) {
		valid := false
		for _, c := range base32Alphabet {
			if r == c {
				valid = true
				break
			}
		}
		if !valid {
			return false
		}
	}
	return true
}

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// CellBounds returns the bounding box covered by a grid cell.
func CellBounds(id models.GridCell) (Bounds, error) {
	if !ValidCell(id) {
		return Bounds{}, fmt.Errorf("invalid grid cell identifier %q", id)
	}
	box := geohash.BoundingBox(string(id))
	return Bounds{
		MinLat: box.MinLat,
		MaxLat: box.MaxLat,
		MinLon: box.MinLng,
		MaxLon: box.MaxLng,
	}, nil
}
