package clinic_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/clinicdesk/pkg/clinicsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies repeated login attempts for one email
// are throttled (strict limit is 5 req/min).
func TestRateLimitLoginEndpoint(t *testing.T) {
	client := clinicsdk.NewClient(setupService(t))

	for i := range 5 {
		_, err := client.Login(t.Context(), "victim@clinic.test", "guess")
		assertStatus(t, err, http.StatusUnauthorized, "request %d should not be rate limited", i+1)
	}

	_, err := client.Login(t.Context(), "victim@clinic.test", "guess")
	require.ErrorIs(t, err, clinicsdk.ErrRateLimited)

	// A different email from the same address has its own bucket
	_, err = client.Login(t.Context(), "other@clinic.test", "guess")
	assertStatus(t, err, http.StatusUnauthorized)
}

// TestRateLimitSignupEndpoint verifies signup is throttled per address.
func TestRateLimitSignupEndpoint(t *testing.T) {
	client := clinicsdk.NewClient(setupService(t))

	for i := range 5 {
		_, err := client.Signup(t.Context(), clinicsdk.SignupRequest{
			Name: "User", Email: fmt.Sprintf("user%d@clinic.test", i), Password: "secret1",
		})
		require.NoError(t, err, "request %d should not be rate limited", i+1)
	}

	_, err := client.Signup(t.Context(), clinicsdk.SignupRequest{
		Name: "User", Email: "user5@clinic.test", Password: "secret1",
	})
	require.ErrorIs(t, err, clinicsdk.ErrRateLimited)
}
