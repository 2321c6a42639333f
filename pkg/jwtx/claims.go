package jwtx

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultAccessTokenTTL is the lifetime used when the caller does not ask
// for one.
const DefaultAccessTokenTTL = 24 * time.Hour

// Claims are the access-token claims. The payload is flat: sub, email,
// role and exp are always present, iat and jti are added on issue but not
// required on verify.
type Claims struct {
	jwt.RegisteredClaims

	Email string     `json:"email"`
	Role  authz.Role `json:"role"`
}

// NewAccessClaims builds minimally-correct claims. exp is truncated to whole
// seconds on the wire.
func NewAccessClaims(subject, email string, role authz.Role, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Email: email,
		Role:  role,
	}
}

// Validate is called by the jwt parser after the registered claims have
// been checked.
func (c Claims) Validate() error {
	if c.Subject == "" {
		return fmt.Errorf("%w: missing sub", ErrInvalidClaim)
	}
	if !c.Role.Valid() {
		return fmt.Errorf("%w: role %q", ErrInvalidClaim, c.Role)
	}
	return nil
}

// Identity converts verified claims into the caller identity used by authz.
func (c Claims) Identity() *authz.Identity {
	return &authz.Identity{
		Subject: c.Subject,
		Email:   c.Email,
		Role:    c.Role,
	}
}
