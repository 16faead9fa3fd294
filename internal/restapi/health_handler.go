package restapi

import (
	"net/http"

	"engine.triper.app/internal/models"
)

// healthHandler reports liveness along with snapshot sizing, so operators can
// tell an empty engine apart from a broken one.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"status":  "ok",
		"records": len(api.TripManager.RawRecords()),
		"indexed": api.TripManager.SpatialIndex().Len(),
	}
	api.sendResponse(w, r, models.NewOKResponse(data, api.Clock))
}
