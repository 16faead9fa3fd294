package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"engine.triper.app/internal/app"
	"engine.triper.app/internal/appconf"
	"engine.triper.app/internal/clock"
	"engine.triper.app/internal/ledgercodec"
	"engine.triper.app/internal/matching"
	"engine.triper.app/internal/metrics"
	"engine.triper.app/internal/models"
	"engine.triper.app/internal/trips"
	"engine.triper.app/internal/tripstore"
)

// createTestApi builds a RestAPI over an in-memory record store with a fixed
// clock, so responses are deterministic.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	store, err := tripstore.NewClient(tripstore.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	manager, err := trips.NewManager(store, logger)
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			ApiKeys:   []string{"TEST"},
			Env:       appconf.Test,
			Port:      4000,
			RateLimit: 1000,
		},
		Logger:      logger,
		TripManager: manager,
		Scorer:      matching.NewScorer(matching.DefaultWeights()),
		Metrics:     metrics.New(),
	}

	api := NewRestAPI(application)
	api.Clock = clock.FixedClock{Time: time.Unix(1_748_736_000, 0).UTC()}

	t.Cleanup(func() {
		api.Shutdown()
		manager.Shutdown()
	})
	return api
}

// seedTestTrips encodes and ingests the given trips, keyed by index.
func seedTestTrips(t *testing.T, api *RestAPI, tripList []models.Trip) {
	t.Helper()

	records := make([]tripstore.RawRecord, len(tripList))
	for i, trip := range tripList {
		records[i] = tripstore.RawRecord{
			Pubkey:    fmt.Sprintf("trip-%03d", i),
			Data:      ledgercodec.Encode(trip),
			FetchedAt: api.Clock.Now().Unix(),
		}
	}
	require.NoError(t, api.TripManager.Ingest(context.Background(), records))
}

// serveApiAndRetrieveEndpoint performs a GET against a freshly routed server
// and decodes the response envelope.
func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, path string) (*http.Response, models.ResponseModel) {
	t.Helper()

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &model))
	return resp, model
}

// dataMap extracts the envelope's data field as a map.
func dataMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object, got %T", model.Data)
	return data
}
