package permission

// Resource and Action are closed tag sets. The grid deliberately has no
// wildcards and no inheritance so that an audit of a role is a plain read
// of its table.
type Resource string

type Action string

const (
	ResourceAccessMatrix    Resource = "access_matrix"
	ResourceStaffManagement Resource = "staff_management"
	ResourceFormGeneration  Resource = "form_generation"
	ResourceUserManagement  Resource = "user_management"
	ResourceRoleManagement  Resource = "role_management"
	ResourceSystemSettings  Resource = "system_settings"
)

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

func Resources() []Resource {
	return []Resource{
		ResourceAccessMatrix,
		ResourceStaffManagement,
		ResourceFormGeneration,
		ResourceUserManagement,
		ResourceRoleManagement,
		ResourceSystemSettings,
	}
}

func Actions() []Action {
	return []Action{ActionView, ActionEdit, ActionDelete}
}

func (r Resource) IsValid() bool {
	switch r {
	case ResourceAccessMatrix, ResourceStaffManagement, ResourceFormGeneration,
		ResourceUserManagement, ResourceRoleManagement, ResourceSystemSettings:
		return true
	}
	return false
}

func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionEdit, ActionDelete:
		return true
	}
	return false
}

// Grid is a flat two-level permission table. Every cell that is not
// explicitly present is a deny.
type Grid map[Resource]map[Action]bool

func (g Grid) Allows(resource Resource, action Action) bool {
	actions, ok := g[resource]
	if !ok {
		return false
	}
	return actions[action]
}

func (g Grid) Set(resource Resource, action Action, allowed bool) {
	if !resource.IsValid() || !action.IsValid() {
		return
	}
	actions, ok := g[resource]
	if !ok {
		actions = make(map[Action]bool)
		g[resource] = actions
	}
	actions[action] = allowed
}

func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for resource, actions := range g {
		copied := make(map[Action]bool, len(actions))
		for action, allowed := range actions {
			copied[action] = allowed
		}
		out[resource] = copied
	}
	return out
}

// Normalize drops cells outside the enumerated tag sets. Persisted grids
// from older files may carry keys the application no longer knows about;
// those must stay denies rather than resurface as dynamic resources.
func (g Grid) Normalize() Grid {
	out := make(Grid, len(g))
	for resource, actions := range g {
		if !resource.IsValid() {
			continue
		}
		for action, allowed := range actions {
			if !action.IsValid() {
				continue
			}
			out.Set(resource, action, allowed)
		}
	}
	return out
}

// FullGrid allows every cell. Used for the seeded administrator role.
func FullGrid() Grid {
	g := make(Grid)
	for _, resource := range Resources() {
		for _, action := range Actions() {
			g.Set(resource, action, true)
		}
	}
	return g
}

// ViewOnlyGrid allows only the view action on every resource.
func ViewOnlyGrid() Grid {
	g := make(Grid)
	for _, resource := range Resources() {
		g.Set(resource, ActionView, true)
	}
	return g
}
