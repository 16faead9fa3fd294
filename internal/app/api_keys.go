package app

import "net/http"

// IsInvalidAPIKey reports whether the given key fails to match any configured
// key. Comparison is exact: no trimming, no case folding.
func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}
	for _, configured := range app.Config.ApiKeys {
		if key == configured {
			return false
		}
	}
	return true
}

// RequestHasInvalidAPIKey reports whether the request's "key" query parameter
// fails validation.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(r.URL.Query().Get("key"))
}
