package restapi

import (
	"encoding/json"
	"net/http"

	"engine.triper.app/internal/models"
)

type matchScoreRequest struct {
	A models.MatchInput `json:"a"`
	B models.MatchInput `json:"b"`
}

// matchScoreHandler computes the reference match score for a pair of trips.
// Used by the simulation harness and by integration tests validating the
// secure backend's output.
func (api *RestAPI) matchScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req matchScoreRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		api.badRequestResponse(w, r, "request body is not a valid match-score request: "+err.Error())
		return
	}

	output := api.Scorer.ComputeMatch(req.A, req.B)
	api.Metrics.MatchComputations.Inc()

	api.sendResponse(w, r, models.NewEntryResponse(output, api.Clock))
}
