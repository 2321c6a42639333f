package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/service"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinicdesk/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	clinicsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	clinicsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	tokens *service.TokenService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &clinicsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: database unreachable"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// A probe token must survive a sign/verify round trip
		if err := probeSigner(r, tokens); err != nil {
			checks.Signer = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := clinicsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}

func probeSigner(r *http.Request, tokens *service.TokenService) error {
	token, _, err := tokens.Issue(r.Context(), "readyz", "", authz.RoleMember, time.Minute)
	if err != nil {
		return err
	}
	_, err = tokens.Verify(token)
	return err
}
