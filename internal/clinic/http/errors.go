package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/service"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/httpx"
	"github.com/aussiebroadwan/clinicdesk/pkg/slogx"
)

// writeServiceError maps service and authz errors onto the error envelope.
// Anything unrecognised is logged and reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidation, "Validation failed", ve.Fields)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeUnauthorized, "Invalid email or password", nil)
	case errors.Is(err, authz.ErrUnauthorized):
		httpx.WriteUnauthorized(w, "Authentication required")
	case errors.Is(err, service.ErrAdminSignupClosed):
		httpx.WriteForbidden(w, "Admin accounts cannot be created through signup")
	case errors.Is(err, authz.ErrForbidden):
		httpx.WriteForbidden(w, "Insufficient permissions")
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, httpx.CodeConflict, "Email already registered", nil)
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "User not found", nil)
	case errors.Is(err, service.ErrClinicNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "Clinic not found", nil)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeServerError, "An unexpected error occurred", nil)
	}
}

// decodeBody decodes a JSON request body, writing the 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := httpx.DecodeJSON(w, r, dst)
	switch {
	case err == nil:
		return true
	case errors.Is(err, httpx.ErrNotJSON):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidRequest, "Content-Type must be application/json", nil)
	case errors.Is(err, authz.ErrUnknownRole):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidation, "Validation failed", map[string]string{
			"role": "must be one of admin, member",
		})
	default:
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidRequest, "Invalid JSON in request body", nil)
	}
	return false
}

// pathID reads the {id} path segment. Ids that are not positive integers
// cannot exist, so they are reported as not found.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "Resource not found", nil)
		return 0, false
	}
	return id, true
}
