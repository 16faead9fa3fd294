package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_ValidConfig(t *testing.T) {
	config, err := LoadFromFile("../../testdata/config_valid.json")
	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify explicitly set values
	assert.Equal(t, 3000, config.Port)
	assert.Equal(t, "development", config.Env)

	// Verify defaults were applied
	assert.Equal(t, []string{"test"}, config.ApiKeys)
	assert.Equal(t, 100, config.RateLimit)
	assert.Equal(t, "./trips.db", config.DataPath)
	assert.Equal(t, DefaultScoring(), config.Scoring)
}

func TestLoadFromFile_FullConfig(t *testing.T) {
	config, err := LoadFromFile("../../testdata/config_full.json")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "production", config.Env)
	assert.Equal(t, []string{"key1", "key2", "key3"}, config.ApiKeys)
	assert.Equal(t, 50, config.RateLimit)
	assert.Equal(t, "/data/trips.db", config.DataPath)
	assert.Equal(t, "https://rpc.example.com/trip-records", config.RecordFeed.URL)
	assert.Equal(t, "Authorization", config.RecordFeed.AuthHeaderName)
	assert.Equal(t, "Bearer token123", config.RecordFeed.AuthHeaderValue)
	assert.Equal(t, ScoringConfig{RouteWeight: 0.5, DateWeight: 0.25, InterestWeight: 0.25}, config.Scoring)
}

func TestLoadFromFile_MalformedJSON(t *testing.T) {
	config, err := LoadFromFile("../../testdata/config_malformed.json")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse JSON config")
}

func TestLoadFromFile_InvalidWeights(t *testing.T) {
	config, err := LoadFromFile("../../testdata/config_bad_weights.json")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := LoadFromFile("nonexistent.json")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to stat config file")
}

func TestScoringConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		scoring ScoringConfig
		wantErr bool
	}{
		{
			name:    "default weights are valid",
			scoring: DefaultScoring(),
			wantErr: false,
		},
		{
			name:    "custom weights summing to one",
			scoring: ScoringConfig{RouteWeight: 0.6, DateWeight: 0.2, InterestWeight: 0.2},
			wantErr: false,
		},
		{
			name:    "weights summing below one",
			scoring: ScoringConfig{RouteWeight: 0.4, DateWeight: 0.3, InterestWeight: 0.2},
			wantErr: true,
		},
		{
			name:    "weights summing above one",
			scoring: ScoringConfig{RouteWeight: 0.5, DateWeight: 0.5, InterestWeight: 0.5},
			wantErr: true,
		},
		{
			name:    "negative weight",
			scoring: ScoringConfig{RouteWeight: 1.2, DateWeight: -0.1, InterestWeight: -0.1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scoring.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
