package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"engine.triper.app/internal/app"
	"engine.triper.app/internal/appconf"
	"engine.triper.app/internal/logging"
	"engine.triper.app/internal/matching"
	"engine.triper.app/internal/metrics"
	"engine.triper.app/internal/restapi"
	"engine.triper.app/internal/trips"
	"engine.triper.app/internal/tripstore"
)

// ParseAPIKeys splits a comma-separated string of API keys and trims whitespace from each key.
// Returns an empty slice if the input is empty.
func ParseAPIKeys(apiKeysFlag string) []string {
	if apiKeysFlag == "" {
		return []string{}
	}

	keys := strings.Split(apiKeysFlag, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}

// BuildApplication creates and initializes the Application with all dependencies.
// This opens the record store, loads the initial snapshot, and validates the
// scoring weights. Weight validation failures are fatal here: a server must
// never start with a weight set that could produce out-of-range scores.
func BuildApplication(cfg appconf.Config, storeCfg tripstore.Config, scoring appconf.ScoringConfig) (*app.Application, error) {
	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	weights, err := matching.NewWeights(scoring)
	if err != nil {
		return nil, fmt.Errorf("invalid scoring weights: %w", err)
	}

	store, err := tripstore.NewClient(storeCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	tripManager, err := trips.NewManager(store, logger)
	if err != nil {
		logging.SafeCloseWithLogging(store, logger, "record_store")
		return nil, fmt.Errorf("failed to initialize trip manager: %w", err)
	}

	coreApp := &app.Application{
		Config:      cfg,
		Logger:      logger,
		TripManager: tripManager,
		Scorer:      matching.NewScorer(weights),
		Metrics:     metrics.New(),
	}

	return coreApp, nil
}

// CreateServer creates and configures the HTTP server with routes and middleware.
// Applies security headers and adds request logging as the outermost layer.
func CreateServer(coreApp *app.Application, cfg appconf.Config) (*http.Server, *restapi.RestAPI) {
	api := restapi.NewRestAPI(coreApp)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	// Wrap with security middleware
	secureHandler := api.WithSecurityHeaders(mux)

	// Add request logging middleware (outermost)
	requestLogger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	requestLogMiddleware := restapi.NewRequestLoggingMiddleware(requestLogger)
	handler := requestLogMiddleware(secureHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(coreApp.Logger.Handler(), slog.LevelError),
	}

	return srv, api
}

// Run manages the server lifecycle with graceful shutdown.
// Starts the server in a goroutine, waits for shutdown signals (SIGINT, SIGTERM),
// and performs graceful shutdown with a 30-second timeout.
// Returns an error if the server fails to start or shutdown fails.
func Run(srv *http.Server, api *restapi.RestAPI, tripManager *trips.Manager, logger *slog.Logger) error {
	logger.Info("starting server", "addr", srv.Addr)

	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to capture server errors
	serverErrors := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for either shutdown signal or server error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server...")
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	// Stop API background work, then release the record store
	if api != nil {
		api.Shutdown()
	}
	if tripManager != nil {
		tripManager.Shutdown()
	}

	logger.Info("server exited")
	return nil
}
