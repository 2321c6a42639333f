package domain

import "time"

type Clinic struct {
	ID        int64
	Name      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
}

// ClinicPatch carries the mutable fields of a clinic; nil leaves a field as is.
type ClinicPatch struct {
	Name     *string
	Address  *string
	IsActive *bool
}
