package seed

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/role"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
)

const (
	AdminRoleID  = "admin"
	ViewerRoleID = "viewer"

	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// EnsureDefaults installs the admin/viewer roles and an initial admin
// account when the catalog has none, so a fresh install can log in. It
// writes directly through the repositories: there is no authenticated
// user yet to satisfy a permission check.
func EnsureDefaults(ctx context.Context, store *persistence.Store, log *logrus.Logger) error {
	roleRepo := persistence.NewRoleRepository(store)
	userRepo := persistence.NewUserRepository(store)

	roles, err := roleRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		admin := role.New(AdminRoleID, "Administrator",
			role.WithDescription("Full access to every resource"),
			role.WithPermissions(permission.FullGrid()),
		)
		if err := roleRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "seeding admin role")
		}
		viewer := role.New(ViewerRoleID, "Viewer",
			role.WithDescription("Read-only access"),
			role.WithPermissions(permission.ViewOnlyGrid()),
		)
		if err := roleRepo.Create(ctx, viewer); err != nil {
			return errors.Wrap(err, "seeding viewer role")
		}
		log.Info("seeded default admin and viewer roles")
	}

	users, err := userRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		admin := user.New(defaultAdminUsername, "Administrator", AdminRoleID)
		if err := admin.SetPassword(defaultAdminPassword); err != nil {
			return errors.Wrap(err, "hashing seed password")
		}
		if _, err := userRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "seeding admin user")
		}
		log.Warnf("seeded default account %q; change its password before real use", defaultAdminUsername)
	}
	return nil
}
