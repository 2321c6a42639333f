package clinicsdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateUser adds an account. Requires: admin
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	return do[User](ctx, s, http.MethodPost, "/users", req, http.StatusCreated)
}

// ListUsers returns every account. Requires: admin
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	users, err := do[[]User](ctx, s, http.MethodGet, "/users", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *users, nil
}

// GetUser fetches one account. Members may only fetch their own.
func (s *Session) GetUser(ctx context.Context, id int64) (*User, error) {
	return do[User](ctx, s, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, http.StatusOK)
}

// UpdateUser changes name and/or role. Requires: admin
func (s *Session) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	return do[User](ctx, s, http.MethodPatch, fmt.Sprintf("/users/%d", id), req, http.StatusOK)
}

// DeleteUser removes an account. Requires: admin
func (s *Session) DeleteUser(ctx context.Context, id int64) error {
	_, err := do[struct{}](ctx, s, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, http.StatusOK)
	return err
}
