package appconf

import (
	"encoding/json"
	"fmt"
	"os"
)

// RecordFeedConfig describes the upstream source of persisted trip records.
// Record retrieval itself is handled outside the matching core; the engine
// only needs to know where its local snapshot is synced from.
type RecordFeedConfig struct {
	URL             string `json:"url"`
	AuthHeaderName  string `json:"authHeaderName,omitempty"`
	AuthHeaderValue string `json:"authHeaderValue,omitempty"`
}

// ScoringConfig holds the aggregation weights for the three match components.
// The weights must sum to 1.0; validation happens at config load, never at
// per-request time.
type ScoringConfig struct {
	RouteWeight    float64 `json:"routeWeight"`
	DateWeight     float64 `json:"dateWeight"`
	InterestWeight float64 `json:"interestWeight"`
}

// JSONConfig is the file-based configuration format for the API server.
type JSONConfig struct {
	Port       int              `json:"port"`
	Env        string           `json:"env"`
	ApiKeys    []string         `json:"apiKeys"`
	RateLimit  int              `json:"rateLimit"`
	DataPath   string           `json:"dataPath"`
	RecordFeed RecordFeedConfig `json:"recordFeed"`
	Scoring    ScoringConfig    `json:"scoring"`
}

// DefaultScoring returns the standard three-factor weighting: 40% route,
// 30% dates, 30% interests.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		RouteWeight:    0.4,
		DateWeight:     0.3,
		InterestWeight: 0.3,
	}
}

// LoadFromFile reads and validates a JSON config file, applying defaults for
// any fields left unset.
func LoadFromFile(path string) (*JSONConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &JSONConfig{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *JSONConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = 4000
	}
	if c.Env == "" {
		c.Env = "development"
	}
	if len(c.ApiKeys) == 0 {
		c.ApiKeys = []string{"test"}
	}
	if c.RateLimit == 0 {
		c.RateLimit = 100
	}
	if c.DataPath == "" {
		c.DataPath = "./trips.db"
	}
	zero := ScoringConfig{}
	if c.Scoring == zero {
		c.Scoring = DefaultScoring()
	}
}

// Validate checks the configuration for values that would make the server
// misbehave at runtime.
func (c *JSONConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.RateLimit < 1 {
		return fmt.Errorf("rateLimit must be positive, got %d", c.RateLimit)
	}
	switch c.Env {
	case "development", "test", "production":
	default:
		return fmt.Errorf("env must be one of development, test, production; got %q", c.Env)
	}
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks that all weights are non-negative and sum to 1.0.
func (s ScoringConfig) Validate() error {
	if s.RouteWeight < 0 || s.DateWeight < 0 || s.InterestWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative, got route=%v date=%v interest=%v",
			s.RouteWeight, s.DateWeight, s.InterestWeight)
	}
	sum := s.RouteWeight + s.DateWeight + s.InterestWeight
	if diff := sum - 1.0; diff > weightSumTolerance || diff < -weightSumTolerance {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// weightSumTolerance absorbs float literal representation error only; weights
// that are actually wrong (e.g. summing to 0.9) are far outside it.
const weightSumTolerance = 1e-9
