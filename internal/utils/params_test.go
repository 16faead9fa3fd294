package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntParam(t *testing.T) {
	fieldErrors := map[string][]string{}
	params := url.Values{"limit": {"25"}}

	value, err := ParseIntParam(params, "limit", fieldErrors)
	require.NoError(t, err)
	assert.Equal(t, 25, value)
	assert.Empty(t, fieldErrors)

	params = url.Values{"limit": {"abc"}}
	_, err = ParseIntParam(params, "limit", fieldErrors)
	assert.Error(t, err)
	assert.Len(t, fieldErrors["limit"], 1)
}

func TestParseFloatParam(t *testing.T) {
	fieldErrors := map[string][]string{}
	params := url.Values{"lat": {"47.6062"}}

	value, err := ParseFloatParam(params, "lat", fieldErrors)
	require.NoError(t, err)
	assert.InDelta(t, 47.6062, value, 1e-9)

	params = url.Values{"lat": {"north"}}
	_, err = ParseFloatParam(params, "lat", fieldErrors)
	assert.Error(t, err)
	assert.Len(t, fieldErrors["lat"], 1)
}

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		expectError  bool
		expectedUnix int64
	}{
		{
			name:         "valid UTC date-time",
			value:        "2025-06-01T00:00:00Z",
			expectedUnix: 1_748_736_000,
		},
		{
			name:         "valid date-time with offset",
			value:        "2025-06-01T02:00:00+02:00",
			expectedUnix: 1_748_736_000,
		},
		{
			name:        "date without time is rejected",
			value:       "2025-06-01",
			expectError: true,
		},
		{
			name:        "garbage is rejected",
			value:       "next tuesday",
			expectError: true,
		},
		{
			name:        "empty is rejected",
			value:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := map[string][]string{}
			params := url.Values{}
			if tt.value != "" {
				params.Set("startDate", tt.value)
			}

			unix, err := ParseDateParam(params, "startDate", fieldErrors)
			if tt.expectError {
				assert.Error(t, err)
				assert.NotEmpty(t, fieldErrors["startDate"])
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUnix, unix)
			}
		})
	}
}

func TestSplitCSVParam(t *testing.T) {
	params := url.Values{"excludeOwners": {"aa, bb ,,cc"}}
	assert.Equal(t, []string{"aa", "bb", "cc"}, SplitCSVParam(params, "excludeOwners"))

	params = url.Values{}
	assert.Nil(t, SplitCSVParam(params, "excludeOwners"))

	params = url.Values{"excludeOwners": {" , ,"}}
	assert.Nil(t, SplitCSVParam(params, "excludeOwners"))
}
