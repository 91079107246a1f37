// Package health serves the liveness probe outside the huma API.
package health

import (
	"encoding/json"
	"net/http"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Handler reports the process as healthy along with its build version.
// Probes do not need caching, so the response is marked no-store.
func Handler(version string) http.HandlerFunc {
	body, _ := json.Marshal(Response{Status: "healthy", Version: version})
	return func(w http.ResponseWriter, _ *http.Request) {
		h := w.Header()
		h.Set("Content-Type", "application/json")
		h.Set("Cache-Control", "no-store")
		_, _ = w.Write(body)
	}
}
