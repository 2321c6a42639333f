package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store"
	"github.com/aussiebroadwan/clinicdesk/pkg/slogx"
)

type CreateClinicInput struct {
	Name    string
	Address string
}

type ClinicService struct {
	Store store.Store
}

// Create adds a clinic. New clinics are active.
func (s *ClinicService) Create(ctx context.Context, in CreateClinicInput) (domain.Clinic, error) {
	fe := fieldErrors{}
	c := domain.Clinic{
		Name:      checkName(fe, "name", in.Name),
		Address:   checkAddress(fe, in.Address),
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := fe.err(); err != nil {
		return domain.Clinic{}, err
	}

	c, err := s.Store.Clinics().CreateClinic(ctx, c)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create clinic", slog.Any("error", err))
		return domain.Clinic{}, err
	}
	return c, nil
}

// Get fetches a clinic. With activeOnly an inactive clinic is reported as
// not found.
func (s *ClinicService) Get(ctx context.Context, id int64, activeOnly bool) (domain.Clinic, error) {
	c, err := s.Store.Clinics().GetClinicByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Clinic{}, ErrClinicNotFound
	}
	if err != nil {
		return domain.Clinic{}, err
	}
	if activeOnly && !c.IsActive {
		return domain.Clinic{}, ErrClinicNotFound
	}
	return c, nil
}

func (s *ClinicService) List(ctx context.Context, activeOnly bool) ([]domain.Clinic, error) {
	return s.Store.Clinics().ListClinics(ctx, activeOnly)
}

// Update applies the non-nil fields of patch.
func (s *ClinicService) Update(ctx context.Context, id int64, patch domain.ClinicPatch) (domain.Clinic, error) {
	fe := fieldErrors{}
	var name, address string
	if patch.Name != nil {
		name = checkName(fe, "name", *patch.Name)
	}
	if patch.Address != nil {
		address = checkAddress(fe, *patch.Address)
	}
	if err := fe.err(); err != nil {
		return domain.Clinic{}, err
	}

	var c domain.Clinic
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		c, err = tx.Clinics().GetClinicByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			c.Name = name
		}
		if patch.Address != nil {
			c.Address = address
		}
		if patch.IsActive != nil {
			c.IsActive = *patch.IsActive
		}
		return tx.Clinics().UpdateClinic(ctx, c)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Clinic{}, ErrClinicNotFound
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to update clinic", slog.Int64("clinic_id", id), slog.Any("error", err))
		return domain.Clinic{}, err
	}
	return c, nil
}

func (s *ClinicService) Delete(ctx context.Context, id int64) error {
	err := s.Store.Clinics().DeleteClinic(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrClinicNotFound
	}
	return err
}
