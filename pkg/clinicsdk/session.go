package clinicsdk

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

// ErrSessionExpired is returned before a request is sent once the access
// token has passed its expiry. Log in again to continue.
var ErrSessionExpired = errors.New("clinicsdk: access token expired")

// Session carries an access token for authenticated calls. Tokens cannot be
// refreshed, so a Session stops working when its token expires.
type Session struct {
	client *Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time // zero when unknown
	user        User
}

func newSession(c *Client, login *LoginResponse) *Session {
	return &Session{
		client:      c,
		accessToken: login.AccessToken,
		expiresAt:   time.Now().Add(time.Duration(login.ExpiresIn) * time.Second),
		user:        login.User,
	}
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// User returns the account the session logged in as. It is empty for
// sessions built from a bare token.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// ExpiresAt returns when the access token stops being accepted.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// token returns the access token, or ErrSessionExpired.
func (s *Session) token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.accessToken, nil
}

// do runs an authenticated call and unwraps the success envelope.
func do[T any](ctx context.Context, s *Session, method, path string, body any, expectedStatus int) (*T, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return call[T](ctx, s.client, method, path, token, body, expectedStatus)
}

// Me returns the profile behind the session's token.
func (s *Session) Me(ctx context.Context) (*User, error) {
	return do[User](ctx, s, http.MethodGet, "/auth/me", nil, http.StatusOK)
}
