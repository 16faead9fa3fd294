// Package metrics exposes Prometheus instrumentation for the matching engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine's Prometheus collectors. All counters are safe for
// concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	RecordsScanned     prometheus.Counter
	DecodeFailures     prometheus.Counter
	CandidatesReturned prometheus.Counter
	MatchComputations  prometheus.Counter
	FilterRequests     prometheus.Counter
}

// New creates a metrics set backed by its own registry, so tests can create
// as many instances as they like without collector collisions.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RecordsScanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "triper_records_scanned_total",
			Help: "Raw ledger records examined by the candidate pre-filter.",
		}),
		DecodeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "triper_record_decode_failures_total",
			Help: "Records skipped during filtering because they failed to decode.",
		}),
		CandidatesReturned: factory.NewCounter(prometheus.CounterOpts{
			Name: "triper_candidates_returned_total",
			Help: "Candidate summaries returned across all filter requests.",
		}),
		MatchComputations: factory.NewCounter(prometheus.CounterOpts{
			Name: "triper_match_computations_total",
			Help: "Reference match-score computations performed locally.",
		}),
		FilterRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "triper_filter_requests_total",
			Help: "Candidate filter requests that passed validation.",
		}),
	}
}

// Handler returns the HTTP handler serving this metrics set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
