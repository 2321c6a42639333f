package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/cryptox"
	"github.com/aussiebroadwan/clinicdesk/pkg/slogx"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     authz.Role // empty means member
}

type UserService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
}

// Create adds an account on behalf of an admin.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (domain.User, error) {
	u, err := newUser(s.Hasher, in.Name, in.Email, in.Password, in.Role)
	if err != nil {
		return domain.User{}, err
	}

	u, err = s.Store.Users().CreateUser(ctx, u)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrEmailTaken
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}
	return u, nil
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Update applies the non-nil fields of patch.
func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	fe := fieldErrors{}
	var name string
	if patch.Name != nil {
		name = checkName(fe, "name", *patch.Name)
	}
	if patch.Role != nil && !patch.Role.Valid() {
		fe.add("role", "must be one of admin, member")
	}
	if err := fe.err(); err != nil {
		return domain.User{}, err
	}

	var u domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		u, err = tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			u.Name = name
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		return tx.Users().UpdateUser(ctx, id, u.Name, u.Role)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to update user", slog.Int64("user_id", id), slog.Any("error", err))
		return domain.User{}, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.Store.Users().DeleteUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
