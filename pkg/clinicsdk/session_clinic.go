package clinicsdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateClinic adds an active clinic. Requires: admin
func (s *Session) CreateClinic(ctx context.Context, req CreateClinicRequest) (*Clinic, error) {
	return do[Clinic](ctx, s, http.MethodPost, "/clinics", req, http.StatusCreated)
}

// ListClinics returns clinics. Members only see active ones.
func (s *Session) ListClinics(ctx context.Context) ([]Clinic, error) {
	clinics, err := do[[]Clinic](ctx, s, http.MethodGet, "/clinics", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *clinics, nil
}

// GetClinic fetches one clinic. Inactive clinics are not found for members.
func (s *Session) GetClinic(ctx context.Context, id int64) (*Clinic, error) {
	return do[Clinic](ctx, s, http.MethodGet, fmt.Sprintf("/clinics/%d", id), nil, http.StatusOK)
}

// UpdateClinic changes any of name, address and is_active. Requires: admin
func (s *Session) UpdateClinic(ctx context.Context, id int64, req UpdateClinicRequest) (*Clinic, error) {
	return do[Clinic](ctx, s, http.MethodPatch, fmt.Sprintf("/clinics/%d", id), req, http.StatusOK)
}

// DeleteClinic removes a clinic. Requires: admin
func (s *Session) DeleteClinic(ctx context.Context, id int64) error {
	_, err := do[struct{}](ctx, s, http.MethodDelete, fmt.Sprintf("/clinics/%d", id), nil, http.StatusOK)
	return err
}
