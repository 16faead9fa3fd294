package geo

import (
	"sync"

	"github.com/tidwall/rtree"

	"engine.triper.app/internal/models"
)

// SpatialIndex is an R-tree over candidate destination cells, used for
// map-view discovery queries. Candidates whose destination cell is not a
// well-formed grid identifier are skipped at build time.
//
// The index is replaced wholesale on rebuild; reads and rebuilds may happen
// concurrently.
type SpatialIndex struct {
	mu   sync.RWMutex
	tree *rtree.RTree
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{tree: &rtree.RTree{}}
}

// Rebuild replaces the index contents with the given candidates.
func (idx *SpatialIndex) Rebuild(candidates []models.CandidateSummary) {
	tree := &rtree.RTree{}
	for _, candidate := range candidates {
		bounds, err := CellBounds(models.GridCell(candidate.DestinationGrid))
		if err != nil {
			continue
		}
		tree.Insert(
			[2]float64{bounds.MinLat, bounds.MinLon},
			[2]float64{bounds.MaxLat, bounds.MaxLon},
			candidate,
		)
	}

	idx.mu.Lock()
	idx.tree = tree
	idx.mu.Unlock()
}

// Search returns the candidates whose destination cell intersects the given
// bounds, in index order.
func (idx *SpatialIndex) Search(bounds Bounds) []models.CandidateSummary {
	idx.mu.RLock()
	tree := idx.tree
	idx.mu.RUnlock()

	if tree == nil {
		return []models.CandidateSummary{}
	}

	minLat, maxLat := bounds.MinLat, bounds.MaxLat
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	minLon, maxLon := bounds.MinLon, bounds.MaxLon
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}

	results := []models.CandidateSummary{}
	tree.Search(
		[2]float64{minLat, minLon},
		[2]float64{maxLat, maxLon},
		func(min, max [2]float64, data interface{}) bool {
			if candidate, ok := data.(models.CandidateSummary); ok {
				results = append(results, candidate)
			}
			return true
		},
	)
	return results
}

// Len reports the number of indexed candidates.
func (idx *SpatialIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.tree == nil {
		return 0
	}
	return idx.tree.Len()
}
