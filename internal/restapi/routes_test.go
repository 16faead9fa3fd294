package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpointNeedsNoApiKey(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataMap(t, model)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, float64(0), data["records"])
}

func TestMetricsEndpointNeedsNoApiKey(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCurrentTimeHandler(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/match/current-time.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := dataMap(t, model)["entry"].(map[string]interface{})
	assert.Equal(t, "2025-06-01T00:00:00Z", entry["readableTime"])
	assert.Equal(t, float64(1_748_736_000_000), entry["time"])
	assert.Equal(t, float64(1_748_736_000_000), float64(model.CurrentTime))
}
