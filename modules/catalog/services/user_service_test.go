package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-altia/accessdesk/modules/catalog/services"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

func TestUserCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.Users.Create(f.AdminCtx, services.CreateUserDTO{
		Username: "carla",
		Password: "carla-pass",
		Name:     "Carla",
		RoleID:   "viewer",
		Active:   true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.PasswordHash(), "$2"))
	assert.True(t, created.CheckPassword("carla-pass"))
}

func TestUserCreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.Users.Create(f.AdminCtx, services.CreateUserDTO{
		Username: "carla",
		Password: "short",
		Name:     "Carla",
		RoleID:   "viewer",
	})
	require.Error(t, err, "passwords under six characters are rejected")

	_, err = f.Users.Create(f.AdminCtx, services.CreateUserDTO{
		Username: "carla",
		Password: "carla-pass",
		Name:     "Carla",
		RoleID:   "ghost",
	})
	require.ErrorIs(t, err, composables.ErrNotFound)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	f := newFixture(t)

	_, err := f.Users.Create(f.AdminCtx, services.CreateUserDTO{
		Username: "admin",
		Password: "other-pass",
		Name:     "Second Admin",
		RoleID:   "admin",
	})
	require.ErrorIs(t, err, composables.ErrDuplicate)
}

func TestUserUpdatePartial(t *testing.T) {
	f := newFixture(t)
	viewerUser, err := f.UserRepo.GetByUsername(f.AdminCtx, "viewer")
	require.NoError(t, err)

	name := "Renamed Viewer"
	updated, err := f.Users.Update(f.AdminCtx, viewerUser.ID(), services.UpdateUserDTO{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Viewer", updated.Name())
	assert.Equal(t, "viewer", updated.Username())
	assert.True(t, updated.CheckPassword("viewer-pass"), "password unchanged when not provided")
}

func TestUserUpdateUsernameCollision(t *testing.T) {
	f := newFixture(t)
	viewerUser, err := f.UserRepo.GetByUsername(f.AdminCtx, "viewer")
	require.NoError(t, err)

	taken := "admin"
	_, err = f.Users.Update(f.AdminCtx, viewerUser.ID(), services.UpdateUserDTO{Username: &taken})
	require.ErrorIs(t, err, composables.ErrDuplicate)
}

func TestUserUpdatePassword(t *testing.T) {
	f := newFixture(t)
	viewerUser, err := f.UserRepo.GetByUsername(f.AdminCtx, "viewer")
	require.NoError(t, err)

	newPass := "fresh-pass"
	updated, err := f.Users.Update(f.AdminCtx, viewerUser.ID(), services.UpdateUserDTO{Password: &newPass})
	require.NoError(t, err)
	assert.True(t, updated.CheckPassword("fresh-pass"))
	assert.False(t, updated.CheckPassword("viewer-pass"))
}

func TestUserDelete(t *testing.T) {
	f := newFixture(t)
	viewerUser, err := f.UserRepo.GetByUsername(f.AdminCtx, "viewer")
	require.NoError(t, err)

	require.NoError(t, f.Users.Delete(f.AdminCtx, viewerUser.ID()))

	_, err = f.Users.GetByID(f.AdminCtx, viewerUser.ID())
	require.ErrorIs(t, err, composables.ErrNotFound)
}

func TestUserMutationsForbiddenForViewer(t *testing.T) {
	f := newFixture(t)

	_, err := f.Users.Create(f.ViewerCtx, services.CreateUserDTO{
		Username: "carla",
		Password: "carla-pass",
		Name:     "Carla",
		RoleID:   "viewer",
	})
	require.ErrorIs(t, err, composables.ErrForbidden)
}
