package clinicsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the Clinic Desk API. It covers the public endpoints and
// creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new account. Only the very first account may ask for
// the admin role; later admin signups fail with ErrForbidden.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	return call[User](ctx, c, http.MethodPost, "/auth/signup", "", req, http.StatusCreated)
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	return call[LoginResponse](ctx, c, http.MethodPost, "/auth/login", "",
		LoginRequest{Email: email, Password: password}, http.StatusOK)
}

// Authenticate logs in and returns a Session bound to the issued token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	login, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return newSession(c, login), nil
}

// NewSessionFromToken wraps an access token obtained elsewhere.
func (c *Client) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}
