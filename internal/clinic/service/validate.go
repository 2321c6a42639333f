package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
)

const (
	maxNameLen        = 255
	maxAddressLen     = 500
	minPasswordLength = 6
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkName(fe fieldErrors, field, name string) string {
	name = strings.TrimSpace(name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		fe.add(field, "is required")
	case n > maxNameLen:
		fe.add(field, "must be at most 255 characters")
	}
	return name
}

func checkAddress(fe fieldErrors, address string) string {
	address = strings.TrimSpace(address)
	switch n := utf8.RuneCountInString(address); {
	case n == 0:
		fe.add("address", "is required")
	case n > maxAddressLen:
		fe.add("address", "must be at most 500 characters")
	}
	return address
}

// checkEmail accepts a bare RFC 5322 address, no display name.
func checkEmail(fe fieldErrors, email string) string {
	email = normalizeEmail(email)
	if email == "" {
		fe.add("email", "is required")
		return email
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		fe.add("email", "must be a valid email address")
	}
	return email
}

func checkPassword(fe fieldErrors, password string) {
	if utf8.RuneCountInString(password) < minPasswordLength {
		fe.add("password", "must be at least 6 characters")
	}
}

// checkRole defaults an empty role to member.
func checkRole(fe fieldErrors, role authz.Role) authz.Role {
	if role == "" {
		return authz.RoleMember
	}
	if !role.Valid() {
		fe.add("role", "must be one of admin, member")
	}
	return role
}
