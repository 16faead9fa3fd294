// Package matching implements the reference match-scoring engine and the
// candidate pre-filter. Every function here is pure and safe for concurrent
// use; scores computed locally are the acceptance oracle for results returned
// by the secure-computation backend.
package matching

import (
	"math"

	"engine.triper.app/internal/appconf"
)

// Weights holds validated aggregation weights for the three match components.
// Construct through NewWeights; a zero Weights value is not usable.
type Weights struct {
	route    float64
	date     float64
	interest float64
}

// NewWeights validates a scoring config and returns the weights used by the
// aggregator. Weight validation is a configuration-time concern: it never
// happens per call.
func NewWeights(cfg appconf.ScoringConfig) (Weights, error) {
	if err := cfg.Validate(); err != nil {
		return Weights{}, err
	}
	return Weights{
		route:    cfg.RouteWeight,
		date:     cfg.DateWeight,
		interest: cfg.InterestWeight,
	}, nil
}

// DefaultWeights returns the standard 40/30/30 split.
func DefaultWeights() Weights {
	w, err := NewWeights(appconf.DefaultScoring())
	if err != nil {
		// The default config is validated by its own tests; reaching this
		// branch means the binary is miscompiled.
		panic(err)
	}
	return w
}

// Aggregate combines the three sub-scores into a single weighted score in
// [0,100], rounding half away from zero.
func (w Weights) Aggregate(routeScore, dateScore, interestScore int) int {
	sum := float64(routeScore)*w.route +
		float64(dateScore)*w.date +
		float64(interestScore)*w.interest
	return int(math.Round(sum))
}
