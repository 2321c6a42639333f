package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Supported hashing algorithms for new credentials.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// Argon2id parameters used for new hashes. Verification reads the
// parameters back out of the encoded hash.
const (
	argonSaltLength  = 16
	argonKeyLength   = 32
	argonIterations  = 3
	argonMemory      = 64 * 1024
	argonParallelism = 2
)

// DefaultBcryptCost is tuned so a single hash takes ~100ms+ on commodity
// hardware.
const DefaultBcryptCost = 12

var (
	ErrPasswordTooLong  = errors.New("cryptox: password exceeds 72 bytes")
	ErrUnknownAlgorithm = errors.New("cryptox: unknown hash algorithm")
	ErrInvalidCost      = errors.New("cryptox: bcrypt cost out of range")
)

// Hasher produces and checks self-contained password credentials.
// It holds no mutable state and is safe for concurrent use.
type Hasher struct {
	algorithm string
	cost      int
}

// NewHasher returns a Hasher for the named algorithm. cost only applies to
// bcrypt; zero selects DefaultBcryptCost.
func NewHasher(algorithm string, cost int) (*Hasher, error) {
	if algorithm == "" {
		algorithm = AlgorithmBcrypt
	}

	switch algorithm {
	case AlgorithmBcrypt:
		if cost == 0 {
			cost = DefaultBcryptCost
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
		}
	case AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	return &Hasher{algorithm: algorithm, cost: cost}, nil
}

// Algorithm returns the algorithm used for new hashes.
func (h *Hasher) Algorithm() string { return h.algorithm }

// HashPassword hashes password with a fresh random salt.
func (h *Hasher) HashPassword(password string) (string, error) {
	if h.algorithm == AlgorithmArgon2id {
		return hashArgon2id(password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("cryptox: bcrypt: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the encoded credential.
// Both bcrypt and argon2id credentials are accepted regardless of the
// configured algorithm. Malformed or foreign credentials never match.
func (h *Hasher) VerifyPassword(password, encoded string) bool {
	switch {
	case strings.HasPrefix(encoded, "$argon2id$"):
		return verifyArgon2id(password, encoded) == nil
	case strings.HasPrefix(encoded, "$2a$"),
		strings.HasPrefix(encoded, "$2b$"),
		strings.HasPrefix(encoded, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
	default:
		return false
	}
}

// hashArgon2id generates a PHC-format Argon2id hash string including salt and parameters.
func hashArgon2id(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonIterations,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// verifyArgon2id compares a plaintext password against a PHC-style Argon2id hash.
func verifyArgon2id(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return errors.New("invalid hash format: not argon2id")
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}
	if mem == 0 || iters == 0 || par == 0 {
		return errors.New("invalid hash format: zero parameter")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}
	if len(expectedHash) == 0 {
		return errors.New("invalid hash format: empty hash")
	}

	computed := argon2.IDKey(
		[]byte(password),
		salt,
		iters,
		mem,
		par,
		uint32(len(expectedHash)), // #nosec G115 - If this overflows we have bigger problems
	)

	if subtle.ConstantTimeCompare(computed, expectedHash) == 1 {
		return nil
	}
	return errors.New("password does not match")
}
