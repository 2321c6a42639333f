package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store/drivers/sqlite/gen"
)

type clinicsRepo struct {
	q *gen.Queries
}

func (r *clinicsRepo) GetClinicByID(ctx context.Context, id int64) (domain.Clinic, error) {
	row, err := r.q.GetClinicByID(ctx, id)
	if err != nil {
		return domain.Clinic{}, mapNotFound(err)
	}
	return mapClinic(row), nil
}

func (r *clinicsRepo) ListClinics(ctx context.Context, activeOnly bool) ([]domain.Clinic, error) {
	var (
		rows []gen.Clinic
		err  error
	)
	if activeOnly {
		rows, err = r.q.ListActiveClinics(ctx)
	} else {
		rows, err = r.q.ListClinics(ctx)
	}
	if err != nil {
		return nil, err
	}

	clinics := make([]domain.Clinic, 0, len(rows))
	for _, row := range rows {
		clinics = append(clinics, mapClinic(row))
	}
	return clinics, nil
}

func (r *clinicsRepo) CreateClinic(ctx context.Context, c domain.Clinic) (domain.Clinic, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	id, err := r.q.CreateClinic(ctx, gen.CreateClinicParams{
		Name:      c.Name,
		Address:   c.Address,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	})
	if err != nil {
		return domain.Clinic{}, mapConstraint(err)
	}

	c.ID = id
	return c, nil
}

func (r *clinicsRepo) UpdateClinic(ctx context.Context, c domain.Clinic) error {
	return requireAffected(r.q.UpdateClinic(ctx, gen.UpdateClinicParams{
		Name:     c.Name,
		Address:  c.Address,
		IsActive: c.IsActive,
		ID:       c.ID,
	}))
}

func (r *clinicsRepo) DeleteClinic(ctx context.Context, id int64) error {
	return requireAffected(r.q.DeleteClinic(ctx, id))
}
