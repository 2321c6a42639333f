package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
)

// RequireAuthenticated rejects anonymous callers with 401.
func RequireAuthenticated() Middleware {
	return guard(func(id *authz.Identity) authz.Decision {
		return authz.RequireAuthenticated(id)
	})
}

// RequireRole rejects callers that do not hold role.
func RequireRole(role authz.Role) Middleware {
	return guard(func(id *authz.Identity) authz.Decision {
		return authz.RequireRole(id, role)
	})
}

// RequireAnyRole rejects callers that hold none of roles. An empty set
// rejects every authenticated caller.
func RequireAnyRole(roles ...authz.Role) Middleware {
	return guard(func(id *authz.Identity) authz.Decision {
		return authz.RequireAnyRole(id, roles...)
	})
}

func guard(decide func(*authz.Identity) authz.Decision) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch decide(IdentityFromContext(r.Context())) {
			case authz.Allow:
				next.ServeHTTP(w, r)
			case authz.Forbidden:
				WriteForbidden(w, "Insufficient permissions")
			default:
				WriteUnauthorized(w, "Authentication required")
			}
		})
	}
}

// WriteUnauthorized writes an RFC 6750 challenge with the JSON error envelope.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

// WriteForbidden writes a 403 with the JSON error envelope.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, CodeForbidden, message, nil)
}
