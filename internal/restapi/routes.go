package restapi

import (
	"net/http"
)

// rateLimitAndValidateAPIKey combines API key validation, rate limiting, and compression
func rateLimitAndValidateAPIKey(api *RestAPI, finalHandler http.HandlerFunc) http.Handler {
	// Apply compression first (innermost)
	compressedHandler := CompressionMiddleware(finalHandler)

	// Then rate limiting - use the shared rate limiter instance
	var rateLimitedHandler http.Handler
	if api.rateLimiter != nil {
		rateLimitedHandler = api.rateLimiter.Handler()(compressedHandler)
	} else {
		// Fallback for tests that don't use NewRestAPI constructor
		rateLimitedHandler = compressedHandler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// First validate API key
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		// Then apply rate limiting and compression
		rateLimitedHandler.ServeHTTP(w, r)
	})
}

// SetRoutes registers all API endpoints with compression applied per route
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	// Health and metrics endpoints - no authentication required
	mux.HandleFunc("GET /healthz", api.healthHandler)
	mux.Handle("GET /metrics", api.Metrics.Handler())

	mux.Handle("GET /api/match/current-time.json", rateLimitAndValidateAPIKey(api, api.currentTimeHandler))
	mux.Handle("GET /api/match/candidates.json", rateLimitAndValidateAPIKey(api, api.candidatesHandler))
	mux.Handle("POST /api/match/score.json", rateLimitAndValidateAPIKey(api, api.matchScoreHandler))
	mux.Handle("GET /api/match/trips-for-location.json", rateLimitAndValidateAPIKey(api, api.tripsForLocationHandler))

	// Route cells are pure functions of the query, so responses are cacheable.
	mux.Handle("GET /api/match/route-cells.json",
		CacheControlMiddleware(300, rateLimitAndValidateAPIKey(api, api.routeCellsHandler)))
}

// SetupAPIRoutes creates and configures the API router with all middleware applied globally
func (api *RestAPI) SetupAPIRoutes() http.Handler {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	return CompressionMiddleware(mux)
}
