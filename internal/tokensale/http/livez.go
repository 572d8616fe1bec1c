package http

import (
	"net/http"
	"time"

	"github.com/blockbite/tokensale/pkg/httpx"
	"github.com/blockbite/tokensale/pkg/salesdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	salesdk.HealthResponse	"status, uptime, version, program"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version, program string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := salesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Program: program,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
