// Package app holds the application container shared by the API layer.
package app

import (
	"log/slog"

	"engine.triper.app/internal/appconf"
	"engine.triper.app/internal/matching"
	"engine.triper.app/internal/metrics"
	"engine.triper.app/internal/trips"
)

// Application bundles the configuration and long-lived services handlers need.
type Application struct {
	Config      appconf.Config
	Logger      *slog.Logger
	TripManager *trips.Manager
	Scorer      *matching.Scorer
	Metrics     *metrics.Metrics
}
