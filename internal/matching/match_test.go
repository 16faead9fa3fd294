package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engine.triper.app/internal/appconf"
	"engine.triper.app/internal/models"
)

func TestNewWeightsRejectsBadConfig(t *testing.T) {
	_, err := NewWeights(appconf.ScoringConfig{RouteWeight: 0.4, DateWeight: 0.4, InterestWeight: 0.4})
	assert.Error(t, err)

	_, err = NewWeights(appconf.ScoringConfig{RouteWeight: 1.1, DateWeight: -0.05, InterestWeight: -0.05})
	assert.Error(t, err)

	w, err := NewWeights(appconf.DefaultScoring())
	require.NoError(t, err)
	assert.Equal(t, DefaultWeights(), w)
}

func TestAggregate(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name                               string
		routeScore, dateScore, interestScore int
		expected                           int
	}{
		{
			name:       "all perfect",
			routeScore: 100, dateScore: 100, interestScore: 100,
			expected: 100,
		},
		{
			name:       "all zero",
			routeScore: 0, dateScore: 0, interestScore: 0,
			expected: 0,
		},
		{
			name:       "route only",
			routeScore: 100, dateScore: 0, interestScore: 0,
			expected: 40,
		},
		{
			name:       "date only",
			routeScore: 0, dateScore: 100, interestScore: 0,
			expected: 30,
		},
		{
			name:       "mixed with rounding",
			routeScore: 33, dateScore: 50, interestScore: 67,
			expected: 48, // 13.2 + 15 + 20.1 = 48.3
		},
		{
			name:       "rounds half away from zero",
			routeScore: 50, dateScore: 25, interestScore: 0,
			expected: 28, // 20 + 7.5 = 27.5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Aggregate(tt.routeScore, tt.dateScore, tt.interestScore)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestComputeMatchIdenticalTrips(t *testing.T) {
	base := int64(1_748_736_000)
	input := models.MatchInput{
		Route:     route("9q8", "9q9", "9qb"),
		StartDate: base,
		EndDate:   base + 7*day,
		Interests: []string{"hiking", "food"},
	}

	scorer := NewScorer(DefaultWeights())
	out := scorer.ComputeMatch(input, input)

	assert.Equal(t, 100, out.RouteScore)
	assert.Equal(t, 100, out.DateScore)
	assert.Equal(t, 100, out.InterestScore)
	assert.Equal(t, 100, out.TotalScore)
	assert.Equal(t, 3, out.OverlapCellCount)
	assert.Equal(t, 7, out.OverlapDayCount)
}

func TestComputeMatchOnlyRouteComponent(t *testing.T) {
	base := int64(1_748_736_000)
	a := models.MatchInput{
		Route:     route("9q8", "9q9"),
		StartDate: base,
		EndDate:   base + 3*day,
		Interests: []string{"hiking"},
	}
	b := models.MatchInput{
		Route:     route("9q8", "9q9"),
		StartDate: base + 10*day,
		EndDate:   base + 13*day,
		Interests: []string{"surfing"},
	}

	out := NewScorer(DefaultWeights()).ComputeMatch(a, b)

	assert.Equal(t, 100, out.RouteScore)
	assert.Equal(t, 0, out.DateScore)
	assert.Equal(t, 0, out.InterestScore)
	// Disjoint dates and interests: the aggregate reflects only the weighted
	// route component.
	assert.Equal(t, 40, out.TotalScore)
	assert.Equal(t, 0, out.OverlapDayCount)
}

func TestComputeMatchProducesFreshOutputs(t *testing.T) {
	base := int64(1_748_736_000)
	a := models.MatchInput{Route: route("x"), StartDate: base, EndDate: base + day}
	b := models.MatchInput{Route: route("x"), StartDate: base, EndDate: base + day}

	scorer := NewScorer(DefaultWeights())
	first := scorer.ComputeMatch(a, b)
	second := scorer.ComputeMatch(a, b)
	assert.Equal(t, first, second)
}
