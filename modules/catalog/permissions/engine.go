package permissions

import (
	"context"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/role"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
)

// RoleLookup resolves a role id to its record. Implemented by the role
// repository.
type RoleLookup interface {
	GetByID(ctx context.Context, id string) (*role.Role, error)
}

// Engine answers (user, resource, action) questions against role grids.
// It is pure and fail-closed: a missing user, an unresolvable role, or an
// absent grid cell all deny. Results are not cached; callers check as
// often as they need, typically once per capability the presentation
// layer exposes.
type Engine struct {
	roles RoleLookup
}

func NewEngine(roles RoleLookup) *Engine {
	return &Engine{roles: roles}
}

func (e *Engine) Check(ctx context.Context, u *user.User, resource permission.Resource, action permission.Action) bool {
	if u == nil {
		return false
	}
	r, err := e.roles.GetByID(ctx, u.RoleID())
	if err != nil || r == nil {
		return false
	}
	return r.Can(resource, action)
}
