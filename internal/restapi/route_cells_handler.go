package restapi

import (
	"net/http"

	"engine.triper.app/internal/geo"
	"engine.triper.app/internal/models"
	"engine.triper.app/internal/utils"
)

// routeCellsHandler converts a client-supplied encoded polyline into the grid
// cell sequence submitted with a trip. Precision defaults to the engine-wide
// cell size and is capped so clients cannot request cells fine enough to leak
// exact locations.
func (api *RestAPI) routeCellsHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	fieldErrors := map[string][]string{}

	encoded := queryParams.Get("polyline")
	if encoded == "" {
		fieldErrors["polyline"] = append(fieldErrors["polyline"], "polyline is required")
	}

	precision := uint(geo.DefaultCellPrecision)
	if queryParams.Get("precision") != "" {
		parsed, err := utils.ParseIntParam(queryParams, "precision", fieldErrors)
		if err == nil {
			if parsed < 1 || parsed > geo.MaxCellPrecision {
				fieldErrors["precision"] = append(fieldErrors["precision"], "precision must be between 1 and 7")
			} else {
				precision = uint(parsed)
			}
		}
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	cells, err := geo.CellsForPolyline([]byte(encoded), precision)
	if err != nil {
		api.badRequestResponse(w, r, err.Error())
		return
	}

	data := map[string]interface{}{
		"cells":     cells,
		"count":     len(cells),
		"precision": precision,
	}
	api.sendResponse(w, r, models.NewOKResponse(data, api.Clock))
}
