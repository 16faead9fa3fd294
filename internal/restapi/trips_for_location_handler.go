package restapi

import (
	"net/http"

	"engine.triper.app/internal/geo"
	"engine.triper.app/internal/models"
	"engine.triper.app/internal/utils"
)

const (
	defaultLatSpan = 0.05
	defaultLonSpan = 0.05
)

// tripsForLocationHandler returns active candidates whose destination cell
// intersects the requested map view.
func (api *RestAPI) tripsForLocationHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	fieldErrors := map[string][]string{}

	lat, _ := utils.ParseFloatParam(queryParams, "lat", fieldErrors)
	lon, _ := utils.ParseFloatParam(queryParams, "lon", fieldErrors)

	latSpan := defaultLatSpan
	if queryParams.Get("latSpan") != "" {
		latSpan, _ = utils.ParseFloatParam(queryParams, "latSpan", fieldErrors)
	}
	lonSpan := defaultLonSpan
	if queryParams.Get("lonSpan") != "" {
		lonSpan, _ = utils.ParseFloatParam(queryParams, "lonSpan", fieldErrors)
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	bounds := geo.Bounds{
		MinLat: lat - latSpan/2,
		MaxLat: lat + latSpan/2,
		MinLon: lon - lonSpan/2,
		MaxLon: lon + lonSpan/2,
	}
	candidates := api.TripManager.SpatialIndex().Search(bounds)

	data := map[string]interface{}{
		"candidates": candidates,
		"count":      len(candidates),
	}
	api.sendResponse(w, r, models.NewOKResponse(data, api.Clock))
}
