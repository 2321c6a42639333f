package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/jwtx"
	"github.com/aussiebroadwan/clinicdesk/pkg/slogx"
)

// TokenService mints and checks access tokens.
type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	DefaultTTL time.Duration    // zero means jwtx.DefaultAccessTokenTTL
	Now        func() time.Time // nil means time.Now
}

// Issue signs a token for the subject. A non-positive ttl uses the default
// lifetime. The returned time is the token's exp.
func (s *TokenService) Issue(ctx context.Context, subject, email string, role authz.Role, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.DefaultTTL
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(subject, email, role, ttl, s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sign access token", slog.Any("error", err))
		return "", time.Time{}, err
	}

	return token, claims.ExpiresAt.Time, nil
}

// Verify returns the claims of a valid token. Every failure is reported as
// an error wrapping one of the jwtx sentinels.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	return s.Verifier.Verify(token)
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
