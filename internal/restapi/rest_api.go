package restapi

import (
	"sync"
	"time"

	"engine.triper.app/internal/app"
	"engine.triper.app/internal/clock"
)

type RestAPI struct {
	*app.Application
	Clock clock.Clock

	rateLimiter  *RateLimitMiddleware
	shutdownOnce sync.Once
}

// NewRestAPI creates a new RestAPI instance with an initialized rate limiter.
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		Clock:       clock.SystemClock{},
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}

// Shutdown stops background work owned by the API layer. Safe to call more
// than once.
func (api *RestAPI) Shutdown() {
	api.shutdownOnce.Do(func() {
		if api.rateLimiter != nil {
			api.rateLimiter.Stop()
		}
	})
}
