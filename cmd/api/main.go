package main

import (
	"flag"
	"log/slog"
	"os"

	"engine.triper.app/internal/appconf"
	"engine.triper.app/internal/logging"
	"engine.triper.app/internal/tripstore"
)

func main() {
	var cfg appconf.Config
	var apiKeysFlag string
	var envFlag string
	var configPath string
	var dataPath string

	// Parse command-line flags
	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key for rate limiting")
	flag.StringVar(&dataPath, "data-path", "./trips.db", "Path to the SQLite database caching ledger trip records")
	flag.StringVar(&configPath, "config", "", "Optional JSON config file; values override the flags above")
	flag.Parse()

	cfg.Verbose = true
	cfg.ApiKeys = ParseAPIKeys(apiKeysFlag)
	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	scoring := appconf.DefaultScoring()

	// A config file, when provided, is the single source of truth.
	if configPath != "" {
		fileCfg, err := appconf.LoadFromFile(configPath)
		if err != nil {
			logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
			logger.Error("failed to load config file", "path", configPath, "error", err)
			os.Exit(1)
		}
		cfg.Port = fileCfg.Port
		cfg.Env = appconf.EnvFlagToEnvironment(fileCfg.Env)
		cfg.ApiKeys = fileCfg.ApiKeys
		cfg.RateLimit = fileCfg.RateLimit
		dataPath = fileCfg.DataPath
		scoring = fileCfg.Scoring
	}

	storeCfg := tripstore.NewConfig(dataPath, cfg.Env, cfg.Verbose)

	// Build application with dependencies
	coreApp, err := BuildApplication(cfg, storeCfg, scoring)
	if err != nil {
		logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
		logger.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	// Create HTTP server
	srv, api := CreateServer(coreApp, cfg)

	// Run server with graceful shutdown
	if err := Run(srv, api, coreApp.TripManager, coreApp.Logger); err != nil {
		coreApp.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
