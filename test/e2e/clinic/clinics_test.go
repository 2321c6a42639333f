package clinic_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/clinicdesk/pkg/clinicsdk"
	"github.com/stretchr/testify/require"
)

// TestClinicLifecycle covers create, deactivate and delete along with the
// member view of inactive clinics.
func TestClinicLifecycle(t *testing.T) {
	client := clinicsdk.NewClient(setupService(t))
	admin, member := bootstrap(t, client)
	ctx := t.Context()

	north, err := admin.CreateClinic(ctx, clinicsdk.CreateClinicRequest{Name: "North", Address: "1 North St"})
	require.NoError(t, err)
	require.True(t, north.IsActive)

	south, err := admin.CreateClinic(ctx, clinicsdk.CreateClinicRequest{Name: "South", Address: "2 South St"})
	require.NoError(t, err)

	_, err = member.CreateClinic(ctx, clinicsdk.CreateClinicRequest{Name: "Rogue", Address: "0 Nowhere"})
	assertStatus(t, err, http.StatusForbidden)

	inactive := false
	south2, err := admin.UpdateClinic(ctx, south.ID, clinicsdk.UpdateClinicRequest{IsActive: &inactive})
	require.NoError(t, err)
	require.False(t, south2.IsActive)

	memberView, err := member.ListClinics(ctx)
	require.NoError(t, err)
	require.Len(t, memberView, 1)
	require.Equal(t, north.ID, memberView[0].ID)

	_, err = member.GetClinic(ctx, south.ID)
	require.ErrorIs(t, err, clinicsdk.ErrNotFound)

	adminView, err := admin.ListClinics(ctx)
	require.NoError(t, err)
	require.Len(t, adminView, 2)

	require.NoError(t, admin.DeleteClinic(ctx, south.ID))
	_, err = admin.GetClinic(ctx, south.ID)
	require.ErrorIs(t, err, clinicsdk.ErrNotFound)
}
