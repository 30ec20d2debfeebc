package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/services"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

func TestRoleCreate(t *testing.T) {
	f := newFixture(t)

	grid := permission.Grid{}
	grid.Set(permission.ResourceFormGeneration, permission.ActionView, true)
	created, err := f.Roles.Create(f.AdminCtx, "forms", "Forms Operator", "generates forms", grid)
	require.NoError(t, err)
	assert.True(t, created.Can(permission.ResourceFormGeneration, permission.ActionView))
	assert.False(t, created.Can(permission.ResourceUserManagement, permission.ActionEdit))
}

func TestRoleCreateDuplicateID(t *testing.T) {
	f := newFixture(t)

	_, err := f.Roles.Create(f.AdminCtx, "viewer", "Viewer Again", "", permission.Grid{})
	require.ErrorIs(t, err, composables.ErrDuplicate)
}

func TestRoleUpdatePartial(t *testing.T) {
	f := newFixture(t)

	name := "Read Only"
	updated, err := f.Roles.Update(f.AdminCtx, "viewer", services.RoleUpdateParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Read Only", updated.Name())
	// Untouched fields survive.
	assert.True(t, updated.Can(permission.ResourceAccessMatrix, permission.ActionView))
}

func TestRoleUpdatePermissions(t *testing.T) {
	f := newFixture(t)

	grid := permission.ViewOnlyGrid()
	grid.Set(permission.ResourceAccessMatrix, permission.ActionEdit, true)
	updated, err := f.Roles.Update(f.AdminCtx, "viewer", services.RoleUpdateParams{Permissions: grid})
	require.NoError(t, err)
	assert.True(t, updated.Can(permission.ResourceAccessMatrix, permission.ActionEdit))

	// The permission change takes effect for already-authenticated users.
	err = f.Matrix.SetSystemForPosition(f.ViewerCtx, 11, 1, true)
	require.NoError(t, err)
}

func TestRoleDeleteBlockedWhileHeld(t *testing.T) {
	f := newFixture(t)

	err := f.Roles.Delete(f.AdminCtx, "viewer")
	require.ErrorIs(t, err, composables.ErrInUse)
	assert.Contains(t, err.Error(), "viewer")
}

func TestRoleDeletableAfterLastHolderRemoved(t *testing.T) {
	f := newFixture(t)

	viewerUser, err := f.UserRepo.GetByUsername(f.AdminCtx, "viewer")
	require.NoError(t, err)
	require.NoError(t, f.Users.Delete(f.AdminCtx, viewerUser.ID()))

	require.NoError(t, f.Roles.Delete(f.AdminCtx, "viewer"))

	_, err = f.Roles.GetByID(f.AdminCtx, "viewer")
	require.ErrorIs(t, err, composables.ErrNotFound)
}

func TestRoleMutationsForbiddenForViewer(t *testing.T) {
	f := newFixture(t)

	_, err := f.Roles.Create(f.ViewerCtx, "x", "X", "", permission.Grid{})
	require.ErrorIs(t, err, composables.ErrForbidden)

	err = f.Roles.Delete(f.ViewerCtx, "admin")
	require.ErrorIs(t, err, composables.ErrForbidden)
}
