package matching

import (
	"engine.triper.app/internal/models"
)

// Scorer computes reference match scores with a fixed, validated weight set.
type Scorer struct {
	weights Weights
}

// NewScorer builds a scorer from validated weights.
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// ComputeMatch composes the three calculators and the aggregator into one
// result. This is the canonical reference score: externally computed
// (secure-backend) scores are validated against it in simulation and test
// modes.
func (s *Scorer) ComputeMatch(a, b models.MatchInput) models.MatchOutput {
	routeScore := RouteScore(a.Route, b.Route)
	dateScore := DateScore(a.StartDate, a.EndDate, b.StartDate, b.EndDate)
	interestScore := InterestScore(a.Interests, b.Interests)

	return models.MatchOutput{
		RouteScore:       routeScore,
		DateScore:        dateScore,
		InterestScore:    interestScore,
		TotalScore:       s.weights.Aggregate(routeScore, dateScore, interestScore),
		OverlapCellCount: CellOverlap(a.Route, b.Route),
		OverlapDayCount:  OverlapDays(a.StartDate, a.EndDate, b.StartDate, b.EndDate),
	}
}
