package tripstore

import "engine.triper.app/internal/appconf"

const (
	// DefaultBulkInsertBatchSize is the default batch size for multi-row
	// INSERTs. SQLite's default SQLITE_MAX_VARIABLE_NUMBER is 999 and each
	// record binds 3 variables, so 300 records stays well inside the limit.
	DefaultBulkInsertBatchSize = 300
)

// Config holds configuration options for the record store client.
type Config struct {
	DBPath  string              // Path to the SQLite database file, or ":memory:"
	Env     appconf.Environment // Environment name: development, test, production.
	verbose bool                // Enable verbose logging

	// BulkInsertBatchSize controls how many records are written per
	// multi-row INSERT statement. Set to 0 to use the default.
	BulkInsertBatchSize int
}

func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	return Config{
		DBPath:              dbPath,
		Env:                 env,
		verbose:             verbose,
		BulkInsertBatchSize: DefaultBulkInsertBatchSize,
	}
}

// GetBulkInsertBatchSize returns the configured batch size, or the default if not set
func (c Config) GetBulkInsertBatchSize() int {
	if c.BulkInsertBatchSize <= 0 {
		return DefaultBulkInsertBatchSize
	}
	return c.BulkInsertBatchSize
}
