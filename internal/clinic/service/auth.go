package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/cryptox"
	"github.com/aussiebroadwan/clinicdesk/pkg/slogx"
)

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     authz.Role // empty means member
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        domain.User
}

type AuthService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Tokens *TokenService

	decoyOnce sync.Once
	decoy     string
}

// Signup registers a new account. An admin account can only be created this
// way while the system has no accounts at all.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	u, err := newUser(s.Hasher, in.Name, in.Email, in.Password, in.Role)
	if err != nil {
		return domain.User{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if u.Role == authz.RoleAdmin {
			empty, err := tx.Users().IsEmpty(ctx)
			if err != nil {
				return err
			}
			if !empty {
				return ErrAdminSignupClosed
			}
		}

		u, err = tx.Users().CreateUser(ctx, u)
		return err
	})
	switch {
	case errors.Is(err, ErrAdminSignupClosed):
		l.Warn("admin signup refused", slog.String("email", u.Email))
		return domain.User{}, err
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, ErrEmailTaken
	case err != nil:
		l.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	l.Info("user signed up", slog.Int64("user_id", u.ID), slog.String("role", u.Role.String()))
	return u, nil
}

// Login checks the credentials and mints an access token. Unknown emails and
// wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		// Spend the same hashing time as a real check
		s.Hasher.VerifyPassword(password, s.decoyHash(ctx))
		l.Info("login failed", slog.String("reason", "unknown_email"))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		l.Error("failed to load user for login", slog.Any("error", err))
		return LoginResult{}, err
	}

	if !s.Hasher.VerifyPassword(password, u.PasswordHash) {
		l.Info("login failed", slog.String("reason", "bad_password"), slog.Int64("user_id", u.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(ctx, u.Subject(), u.Email, u.Role, 0)
	if err != nil {
		return LoginResult{}, err
	}

	l.Info("login succeeded", slog.Int64("user_id", u.ID))
	return LoginResult{AccessToken: token, ExpiresAt: exp, User: u}, nil
}

// Me loads the stored profile behind a verified identity.
func (s *AuthService) Me(ctx context.Context, id *authz.Identity) (domain.User, error) {
	if id == nil {
		return domain.User{}, authz.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(id.Subject, 10, 64)
	if err != nil {
		return domain.User{}, ErrUserNotFound
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// decoyFallback is a bcrypt hash at DefaultBcryptCost of a throwaway
// password, used when the decoy cannot be hashed at runtime.
const decoyFallback = "$2b$12$0B5W6K9BR98EtFhvos9SDOEjc3itGsPuxHOHFY/UTLkNUL7PA9Woe"

func (s *AuthService) decoyHash(ctx context.Context) string {
	s.decoyOnce.Do(func() {
		s.decoy = loginDecoy(ctx, s.Hasher, "decoy-password")
	})
	return s.decoy
}

// loginDecoy returns a credential that costs a full verification to reject.
func loginDecoy(ctx context.Context, h *cryptox.Hasher, password string) string {
	decoy, err := h.HashPassword(password)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to hash login decoy, using fallback", slog.Any("error", err))
		return decoyFallback
	}
	return decoy
}

// newUser validates the input and hashes the password.
func newUser(h *cryptox.Hasher, name, email, password string, role authz.Role) (domain.User, error) {
	fe := fieldErrors{}
	u := domain.User{
		Name:  checkName(fe, "name", name),
		Email: checkEmail(fe, email),
		Role:  checkRole(fe, role),
	}
	checkPassword(fe, password)
	if err := fe.err(); err != nil {
		return domain.User{}, err
	}

	hash, err := h.HashPassword(password)
	if errors.Is(err, cryptox.ErrPasswordTooLong) {
		return domain.User{}, &ValidationError{Fields: map[string]string{
			"password": "must be at most 72 bytes",
		}}
	}
	if err != nil {
		return domain.User{}, err
	}

	u.PasswordHash = hash
	u.CreatedAt = time.Now().UTC()
	return u, nil
}
