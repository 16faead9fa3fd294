package restapi

import (
	"encoding/json"
	"net/http"

	"engine.triper.app/internal/models"
)

// sendResponse serializes the envelope as JSON. Serialization failures are
// logged and surfaced as a bare 500 since the envelope itself could not be
// written.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode response", "path", r.URL.Path, "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
	api.sendResponse(w, r, models.NewResponse(http.StatusInternalServerError, nil, "internal server error", api.Clock))
}

// validationErrorResponse reports field-level validation failures; the
// request never reaches any record scan.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	data := map[string]interface{}{
		"fieldErrors": fieldErrors,
	}
	api.sendResponse(w, r, models.NewResponse(http.StatusBadRequest, data, "validation error", api.Clock))
}

func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.sendResponse(w, r, models.NewResponse(http.StatusBadRequest, nil, message, api.Clock))
}

func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewResponse(http.StatusUnauthorized, nil, "permission denied", api.Clock))
}
