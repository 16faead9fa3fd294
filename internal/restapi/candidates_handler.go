package restapi

import (
	"fmt"
	"net/http"

	"engine.triper.app/internal/matching"
	"engine.triper.app/internal/models"
	"engine.triper.app/internal/utils"
)

// candidatesHandler runs the public pre-filter over the raw record snapshot
// and returns candidate summaries. All validation happens before any record
// is examined.
func (api *RestAPI) candidatesHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	fieldErrors := map[string][]string{}

	destinationGrid := queryParams.Get("destinationGridHash")
	if destinationGrid == "" {
		fieldErrors["destinationGridHash"] = append(fieldErrors["destinationGridHash"], "destinationGridHash is required")
	}

	startDate, _ := utils.ParseDateParam(queryParams, "startDate", fieldErrors)
	endDate, _ := utils.ParseDateParam(queryParams, "endDate", fieldErrors)

	limit := matching.DefaultCandidateLimit
	if queryParams.Get("limit") != "" {
		parsed, err := utils.ParseIntParam(queryParams, "limit", fieldErrors)
		if err == nil && parsed <= 0 {
			fieldErrors["limit"] = append(fieldErrors["limit"], "limit must be positive")
		}
		limit = parsed
	}

	var excludeOwners map[models.Owner]struct{}
	if raw := utils.SplitCSVParam(queryParams, "excludeOwners"); len(raw) > 0 {
		excludeOwners = make(map[models.Owner]struct{}, len(raw))
		for _, s := range raw {
			owner, err := models.ParseOwner(s)
			if err != nil {
				fieldErrors["excludeOwners"] = append(fieldErrors["excludeOwners"], fmt.Sprintf("%q: %v", s, err))
				continue
			}
			excludeOwners[owner] = struct{}{}
		}
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	query := matching.Query{
		DestinationGrid: destinationGrid,
		StartDate:       startDate,
		EndDate:         endDate,
		ExcludeOwners:   excludeOwners,
		Limit:           limit,
	}
	if err := query.Validate(); err != nil {
		api.badRequestResponse(w, r, err.Error())
		return
	}

	candidates, stats := matching.FilterCandidates(api.TripManager.RawRecords(), query)

	api.Metrics.FilterRequests.Inc()
	api.Metrics.RecordsScanned.Add(float64(stats.Scanned))
	api.Metrics.DecodeFailures.Add(float64(stats.DecodeFailures))
	api.Metrics.CandidatesReturned.Add(float64(len(candidates)))

	api.sendResponse(w, r, models.NewCandidateListResponse(candidates, startDate, endDate, api.Clock))
}
