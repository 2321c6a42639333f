package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories so a transaction can hand out
// the same repos bound to its *sql.Tx.
type Store interface {
	Users() Users
	Clinics() Clinics

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login. Matching is case-insensitive.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user and returns it with its assigned id.
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateUser overwrites name and role.
	UpdateUser(ctx context.Context, id int64, name string, role authz.Role) error

	DeleteUser(ctx context.Context, id int64) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Clinics interface {
	GetClinicByID(ctx context.Context, id int64) (domain.Clinic, error)

	// ListClinics returns clinics ordered by id, optionally only active ones.
	ListClinics(ctx context.Context, activeOnly bool) ([]domain.Clinic, error)

	// CreateClinic inserts a new clinic and returns it with its assigned id.
	CreateClinic(ctx context.Context, c domain.Clinic) (domain.Clinic, error)

	// UpdateClinic overwrites name, address and is_active for c.ID.
	UpdateClinic(ctx context.Context, c domain.Clinic) error

	DeleteClinic(ctx context.Context, id int64) error
}
