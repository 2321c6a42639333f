package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinicdesk/pkg/cryptox"
	"github.com/aussiebroadwan/clinicdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("service-test-secret")

type fixture struct {
	auth    *AuthService
	users   *UserService
	clinics *ClinicService
	tokens  *TokenService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	hasher, err := cryptox.NewHasher(cryptox.AlgorithmBcrypt, bcrypt.MinCost)
	require.NoError(t, err)

	tokens := newTokenService(t, nil)

	return fixture{
		auth:    &AuthService{Store: st, Hasher: hasher, Tokens: tokens},
		users:   &UserService{Store: st, Hasher: hasher},
		clinics: &ClinicService{Store: st},
		tokens:  tokens,
	}
}

func newTokenService(t *testing.T, now func() time.Time) *TokenService {
	t.Helper()

	signer, err := jwtx.NewHMACSigner("HS256", testSecret)
	require.NoError(t, err)

	var opts []jwtx.VerifierOption
	if now != nil {
		opts = append(opts, jwtx.WithClock(now))
	}
	verifier, err := jwtx.NewHMACVerifier("HS256", testSecret, opts...)
	require.NoError(t, err)

	return &TokenService{Signer: signer, Verifier: verifier, Now: now}
}

func ctx() context.Context { return context.Background() }

func ptr[T any](v T) *T { return &v }
