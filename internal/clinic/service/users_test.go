package service

import (
	"testing"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	admin, err := f.users.Create(ctx(), CreateUserInput{
		Name: "Admin", Email: "admin@example.com", Password: "secret1", Role: authz.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, authz.RoleAdmin, admin.Role)

	member, err := f.users.Create(ctx(), CreateUserInput{
		Name: "Member", Email: "member@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, authz.RoleMember, member.Role)

	t.Run("duplicate", func(t *testing.T) {
		_, err := f.users.Create(ctx(), CreateUserInput{Name: "X", Email: "member@example.com", Password: "secret1"})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("list", func(t *testing.T) {
		users, err := f.users.List(ctx())
		require.NoError(t, err)
		require.Len(t, users, 2)
	})

	t.Run("update patch", func(t *testing.T) {
		got, err := f.users.Update(ctx(), member.ID, domain.UserPatch{Name: ptr("Renamed")})
		require.NoError(t, err)
		require.Equal(t, "Renamed", got.Name)
		require.Equal(t, authz.RoleMember, got.Role)

		got, err = f.users.Update(ctx(), member.ID, domain.UserPatch{Role: ptr(authz.RoleAdmin)})
		require.NoError(t, err)
		require.Equal(t, "Renamed", got.Name)
		require.Equal(t, authz.RoleAdmin, got.Role)

		stored, err := f.users.Get(ctx(), member.ID)
		require.NoError(t, err)
		require.Equal(t, authz.RoleAdmin, stored.Role)
	})

	t.Run("update validation", func(t *testing.T) {
		_, err := f.users.Update(ctx(), member.ID, domain.UserPatch{Name: ptr("  "), Role: ptr(authz.Role("root"))})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Fields, 2)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.users.Get(ctx(), 9999)
		require.ErrorIs(t, err, ErrUserNotFound)
		_, err = f.users.Update(ctx(), 9999, domain.UserPatch{Name: ptr("x")})
		require.ErrorIs(t, err, ErrUserNotFound)
		require.ErrorIs(t, f.users.Delete(ctx(), 9999), ErrUserNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.users.Delete(ctx(), member.ID))
		_, err := f.users.Get(ctx(), member.ID)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
