package authz

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Role is the closed set of roles a caller can hold.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ErrUnknownRole reports a role string outside the closed set.
var ErrUnknownRole = errors.New("authz: unknown role")

// Roles lists every valid role, admin first.
func Roles() []Role { return []Role{RoleAdmin, RoleMember} }

// ParseRole maps an exact, case-sensitive role string onto a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleMember:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string { return string(r) }

// UnmarshalJSON rejects unknown roles so they never cross a parse seam.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
