package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
// Any non-nil error means the token is invalid; callers should not branch
// on the reason beyond logging it.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrAlgMismatch  = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HMACVerifier validates tokens signed by an HMACSigner sharing the same
// secret and algorithm. Expiry is strict: there is no clock-skew leeway.
type HMACVerifier struct {
	parser *jwt.Parser
	secret []byte
}

// VerifierOption tweaks an HMACVerifier.
type VerifierOption func(*verifierOptions)

type verifierOptions struct {
	now func() time.Time
}

// WithClock overrides the time source used for exp/nbf checks.
func WithClock(now func() time.Time) VerifierOption {
	return func(o *verifierOptions) { o.now = now }
}

// NewHMACVerifier creates a verifier restricted to a single HMAC algorithm.
func NewHMACVerifier(alg string, secret []byte, opts ...VerifierOption) (*HMACVerifier, error) {
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	o := verifierOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &HMACVerifier{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(o.now),
			// Non-canonical base64 would let the last signature character vary
			jwt.WithStrictDecoding(),
		),
		secret: secret,
	}, nil
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HMACVerifier) Verify(tokenStr string) (Claims, error) {
	var claims Claims
	token, err := v.parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}
	return claims, nil
}

// classify maps jwt parser errors onto our sentinels so logs stay readable.
func classify(err error) error {
	var sentinel error
	switch {
	case errors.Is(err, ErrInvalidClaim):
		return err
	case errors.Is(err, jwt.ErrTokenExpired):
		sentinel = ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		sentinel = ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenMalformed):
		sentinel = ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		sentinel = ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		sentinel = ErrAlgMismatch
	default:
		sentinel = ErrInvalidClaim
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
