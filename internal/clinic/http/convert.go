package http

import (
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/pkg/clinicsdk"
)

func toUser(u domain.User) clinicsdk.User {
	return clinicsdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toUsers(us []domain.User) []clinicsdk.User {
	out := make([]clinicsdk.User, 0, len(us))
	for _, u := range us {
		out = append(out, toUser(u))
	}
	return out
}

func toClinic(c domain.Clinic) clinicsdk.Clinic {
	return clinicsdk.Clinic{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func toClinics(cs []domain.Clinic) []clinicsdk.Clinic {
	out := make([]clinicsdk.Clinic, 0, len(cs))
	for _, c := range cs {
		out = append(out, toClinic(c))
	}
	return out
}
