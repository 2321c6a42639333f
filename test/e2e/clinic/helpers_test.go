package clinic_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/app"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/clinicsdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common constants and helper functions for clinic service end-to-end tests.
 * Each test gets its own in-memory database behind a real HTTP listener.
 */

const (
	adminEmail    = "admin@clinic.test"
	adminPassword = "Admin123!"
	memberEmail   = "member@clinic.test"
	memberPass    = "Member123!"
)

// setupService starts the fully wired service and returns its base URL.
func setupService(t *testing.T) string {
	t.Helper()

	application, err := app.New(app.Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		DatabaseFile:        ":memory:",
		JWTSecret:           "e2e-secret-that-is-long-enough-0123456789",
		JWTAlgorithm:        "HS256",
		JWTExpirationHours:  24,
		HashAlgorithm:       "bcrypt",
		HashCost:            4,
		ShutdownGracePeriod: time.Second,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Shutdown()
	})

	return srv.URL
}

// bootstrap signs up the first admin and a member and logs both in.
func bootstrap(t *testing.T, client *clinicsdk.Client) (admin, member *clinicsdk.Session) {
	t.Helper()
	ctx := t.Context()

	_, err := client.Signup(ctx, clinicsdk.SignupRequest{
		Name: "Administrator", Email: adminEmail, Password: adminPassword, Role: authz.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = client.Signup(ctx, clinicsdk.SignupRequest{
		Name: "Member", Email: memberEmail, Password: memberPass,
	})
	require.NoError(t, err)

	admin, err = client.Authenticate(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	member, err = client.Authenticate(ctx, memberEmail, memberPass)
	require.NoError(t, err)

	return admin, member
}

// assertStatus checks that err is an APIError with the given status.
func assertStatus(t *testing.T, err error, status int, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)

	apiErr, ok := clinicsdk.AsAPIError(err)
	require.True(t, ok, "expected *clinicsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode, msgAndArgs...)
}
