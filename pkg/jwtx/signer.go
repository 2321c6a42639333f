package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

var (
	ErrEmptySecret    = errors.New("jwtx: empty signing secret")
	ErrUnsupportedAlg = errors.New("jwtx: unsupported signing algorithm")
)

// HMACSigner signs tokens with a single shared secret.
type HMACSigner struct {
	method *jwt.SigningMethodHMAC
	secret []byte
}

// NewHMACSigner creates a signer for HS256, HS384 or HS512.
func NewHMACSigner(alg string, secret []byte) (*HMACSigner, error) {
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &HMACSigner{method: method, secret: secret}, nil
}

func (s *HMACSigner) Alg() string { return s.method.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HMACSigner) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// hmacMethod resolves alg and refuses anything that is not an HMAC method,
// so an RS or "none" configuration can never reach the parser.
func hmacMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlg, alg)
	}
	return method, nil
}
