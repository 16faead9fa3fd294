package matching

import (
	"math"

	"engine.triper.app/internal/models"
)

const secondsPerDay = 86_400

// CellOverlap counts grid cells present in both routes. Each route is reduced
// to its set of unique cells first, so duplicates never inflate the count.
func CellOverlap(a, b models.Route) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	cellsA := make(map[models.GridCell]struct{}, len(a))
	for _, cell := range a {
		cellsA[cell] = struct{}{}
	}

	seen := make(map[models.GridCell]struct{}, len(b))
	overlap := 0
	for _, cell := range b {
		if _, dup := seen[cell]; dup {
			continue
		}
		seen[cell] = struct{}{}
		if _, ok := cellsA[cell]; ok {
			overlap++
		}
	}
	return overlap
}

// RouteScore scores spatial overlap in [0,100]: the shared-cell count scaled
// by the longer route's length. Two empty routes score 0.
func RouteScore(a, b models.Route) int {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return roundPercent(CellOverlap(a, b), longest)
}

// OverlapDays returns the number of whole days shared by the two date ranges.
// A window whose start is at or past its end contributes nothing; ranges that
// merely touch do not overlap.
func OverlapDays(startA, endA, startB, endB int64) int {
	windowStart := startA
	if startB > windowStart {
		windowStart = startB
	}
	windowEnd := endA
	if endB < windowEnd {
		windowEnd = endB
	}
	if windowStart >= windowEnd {
		return 0
	}
	return int((windowEnd - windowStart) / secondsPerDay)
}

// DateScore scores temporal overlap in [0,100]: overlapping whole days scaled
// by the longer trip's duration. Inputs are normalized to day boundaries
// upstream, so truncating division is exact in practice.
func DateScore(startA, endA, startB, endB int64) int {
	durationA := endA - startA
	durationB := endB - startB
	total := durationA
	if durationB > total {
		total = durationB
	}
	totalDays := total / secondsPerDay
	if totalDays <= 0 {
		return 0
	}
	return roundPercent(OverlapDays(startA, endA, startB, endB), int(totalDays))
}

// InterestScore scores tag similarity in [0,100] as the Jaccard index of the
// two tag sets. An empty union scores 0: absence of declared interests is
// zero similarity, not perfect similarity.
func InterestScore(tagsA, tagsB []string) int {
	setA := make(map[string]struct{}, len(tagsA))
	for _, tag := range tagsA {
		setA[tag] = struct{}{}
	}
	setB := make(map[string]struct{}, len(tagsB))
	for _, tag := range tagsB {
		setB[tag] = struct{}{}
	}

	intersection := 0
	for tag := range setA {
		if _, ok := setB[tag]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return roundPercent(intersection, union)
}

// roundPercent scales numerator/denominator to [0,100], rounding half away
// from zero. Callers guarantee denominator > 0.
func roundPercent(numerator, denominator int) int {
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}
