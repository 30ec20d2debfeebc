package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

var validate = validator.New()

// authorize gates a service mutation on the caller's role grid. The
// presentation layer runs the same check to decide which controls to show;
// enforcing here as well keeps the core safe against a stale UI.
func authorize(ctx context.Context, engine *permissions.Engine, resource permission.Resource, action permission.Action) error {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return errors.Wrapf(composables.ErrForbidden, "%s/%s", resource, action)
	}
	if !engine.Check(ctx, u, resource, action) {
		return errors.Wrapf(composables.ErrForbidden, "%s/%s", resource, action)
	}
	return nil
}
