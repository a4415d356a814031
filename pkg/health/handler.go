package health

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LivenessHandler reports that the process is up. It consults no
// checks; a served response is the whole signal.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks on every request and maps the outcome
// to 200 or 503. Options carry the same timeout and logger knobs as
// Run.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, runChecks(r.Context(), checks, cfg))
	}
}

// respond negotiates the body format. JSON is opt-in through the
// Accept header or a format=json query parameter; probes get plain
// text by default.
func respond(w http.ResponseWriter, r *http.Request, resp *Response) {
	status := http.StatusOK
	if resp.Status == StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	if r.URL.Query().Get("format") == "json" ||
		strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.WriteHeader(status)
	if status == http.StatusOK {
		_, _ = w.Write([]byte("OK"))
	} else {
		_, _ = w.Write([]byte("Service Unavailable"))
	}
}
