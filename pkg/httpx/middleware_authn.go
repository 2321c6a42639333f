package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/jwtx"
	"github.com/aussiebroadwan/clinicdesk/pkg/slogx"
)

// BearerPrefix is matched case-sensitively with exactly one space.
const BearerPrefix = "Bearer "

var errNoBearer = errors.New("missing bearer token")

// ExtractIdentity resolves an Authorization header value into a verified
// identity. It returns nil on any failure and never panics.
func ExtractIdentity(header string, v jwtx.Verifier) *authz.Identity {
	id, _ := extractIdentity(header, v)
	return id
}

func extractIdentity(header string, v jwtx.Verifier) (*authz.Identity, error) {
	if !strings.HasPrefix(header, BearerPrefix) {
		return nil, errNoBearer
	}
	raw := header[len(BearerPrefix):]
	if raw == "" {
		return nil, errNoBearer
	}

	claims, err := v.Verify(raw)
	if err != nil {
		return nil, err
	}
	return claims.Identity(), nil
}

// IdentifyMiddleware attaches the caller identity to the request context
// when the Authorization header carries a valid token. It never rejects a
// request; the Require* guards decide what an anonymous caller may do.
func IdentifyMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := extractIdentity(header, v)
			if err != nil {
				slogx.FromContext(r.Context()).Debug("bearer token rejected", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := slogx.WithContext(r.Context(),
				slogx.FromContext(r.Context()).With("sub", id.Subject, "role", id.Role),
			)
			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, id)))
		})
	}
}
