package domain

import (
	"strconv"
	"time"

	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
)

type User struct {
	ID           int64
	Name         string
	Email        string // stored lower-cased
	PasswordHash string // bcrypt or argon2id encoded, never leaves the service
	Role         authz.Role
	CreatedAt    time.Time
}

// Subject is the token subject for this user.
func (u User) Subject() string { return strconv.FormatInt(u.ID, 10) }

// UserPatch carries the mutable fields of a user; nil leaves a field as is.
type UserPatch struct {
	Name *string
	Role *authz.Role
}
