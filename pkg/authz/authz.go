// Package authz holds the access decisions applied to every protected
// request. Everything here is pure: no I/O, no clocks, no shared state.
package authz

import (
	"errors"
	"slices"
)

var (
	ErrUnauthorized = errors.New("authz: authentication required")
	ErrForbidden    = errors.New("authz: insufficient role")
)

// Identity is the verified caller attached to a request. A nil *Identity
// means the caller is not authenticated.
type Identity struct {
	Subject string
	Email   string
	Role    Role
}

// Decision is the outcome of a guard.
type Decision int

const (
	Allow Decision = iota
	Unauthorized
	Forbidden
)

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool { return d == Allow }

// Err returns the sentinel error for a denial, or nil for Allow.
func (d Decision) Err() error {
	switch d {
	case Unauthorized:
		return ErrUnauthorized
	case Forbidden:
		return ErrForbidden
	default:
		return nil
	}
}

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// RequireAuthenticated allows any verified identity.
func RequireAuthenticated(id *Identity) Decision {
	if id == nil {
		return Unauthorized
	}
	return Allow
}

// RequireRole allows only callers holding exactly role.
func RequireRole(id *Identity, role Role) Decision {
	return RequireAnyRole(id, role)
}

// RequireAnyRole allows callers holding one of roles. Authentication is
// always checked first, so a missing identity is Unauthorized even when the
// role set is empty.
func RequireAnyRole(id *Identity, roles ...Role) Decision {
	if d := RequireAuthenticated(id); d != Allow {
		return d
	}
	if !slices.Contains(roles, id.Role) {
		return Forbidden
	}
	return Allow
}

// IsAuthorizedForResource reports whether the caller may act on a resource
// owned by ownerID. Admins may act on anything, members only on their own.
func IsAuthorizedForResource(callerID string, callerRole Role, ownerID string) bool {
	switch callerRole {
	case RoleAdmin:
		return true
	case RoleMember:
		return callerID == ownerID
	default:
		return false
	}
}
