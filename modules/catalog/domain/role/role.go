package role

import (
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
)

// Role is a named permission grid assignable to users. Role ids are short
// string keys ("admin", "viewer") rather than catalog integers.
type Role struct {
	id          string
	name        string
	description string
	permissions permission.Grid
}

type Option func(*Role)

func WithDescription(description string) Option {
	return func(r *Role) {
		r.description = description
	}
}

func WithPermissions(grid permission.Grid) Option {
	return func(r *Role) {
		r.permissions = grid.Normalize()
	}
}

func New(id string, name string, opts ...Option) *Role {
	r := &Role{
		id:          id,
		name:        name,
		permissions: make(permission.Grid),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Role) ID() string {
	return r.id
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) Description() string {
	return r.description
}

func (r *Role) Permissions() permission.Grid {
	return r.permissions.Clone()
}

// Can reports whether the role's grid allows the given cell. Fail-closed.
func (r *Role) Can(resource permission.Resource, action permission.Action) bool {
	return r.permissions.Allows(resource, action)
}
