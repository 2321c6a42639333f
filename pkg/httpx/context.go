package httpx

import (
	"context"

	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
)

type ctxKey string

const CtxKeyIdentity ctxKey = "identity"

// WithIdentity attaches a verified identity to ctx. A nil identity leaves
// ctx untouched.
func WithIdentity(ctx context.Context, id *authz.Identity) context.Context {
	if id == nil {
		return ctx
	}
	return context.WithValue(ctx, CtxKeyIdentity, id)
}

// IdentityFromContext returns the verified caller, or nil when the request
// is anonymous.
func IdentityFromContext(ctx context.Context) *authz.Identity {
	if id, ok := ctx.Value(CtxKeyIdentity).(*authz.Identity); ok {
		return id
	}
	return nil
}
