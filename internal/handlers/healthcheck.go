package handlers

import (
	"context"
	"net/http"
)

// Pinger reports database liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthcheckHandler returns an HTTP handler for the liveness probe.
// @Summary Healthcheck
// @Description Returns 200 when the service and its database are reachable.
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse "Service healthy"
// @Failure 503 {object} models.APIErrorResponse "Database unreachable"
// @Router /healthcheck [get]
func NewHealthcheckHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"statusCode":503,"message":"Database unreachable","success":false}`))
				return
			}
		}

		writeData(w, http.StatusOK, nil, "OK")
	}
}
