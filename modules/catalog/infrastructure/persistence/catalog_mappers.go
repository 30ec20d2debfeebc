package persistence

import (
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/category"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/department"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/role"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/system"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence/models"
)

func toDomainDepartment(m *models.Department) *department.Department {
	positions := make([]department.Position, 0, len(m.Positions))
	for _, p := range m.Positions {
		positions = append(positions, department.NewPosition(p.ID, p.Name))
	}
	return department.New(m.ID, m.Name, department.WithPositions(positions))
}

func toDomainCategory(m *models.Category) *category.Category {
	return category.New(m.ID, m.Name)
}

func toDomainSystem(m *models.System) *system.System {
	return system.New(m.ID, m.Name, m.CategoryID)
}

func toDomainGrid(m map[string]map[string]bool) permission.Grid {
	grid := make(permission.Grid, len(m))
	for resource, actions := range m {
		for action, allowed := range actions {
			grid.Set(permission.Resource(resource), permission.Action(action), allowed)
		}
	}
	return grid
}

func toDBGrid(grid permission.Grid) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(grid))
	for resource, actions := range grid {
		cell := make(map[string]bool, len(actions))
		for action, allowed := range actions {
			cell[string(action)] = allowed
		}
		out[string(resource)] = cell
	}
	return out
}

func toDomainRole(m *models.Role) *role.Role {
	return role.New(
		m.ID,
		m.Name,
		role.WithDescription(m.Description),
		role.WithPermissions(toDomainGrid(m.Permissions)),
	)
}

func toDBRole(entity *role.Role) models.Role {
	return models.Role{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Permissions: toDBGrid(entity.Permissions()),
	}
}

func toDomainUser(m *models.User) *user.User {
	return user.New(
		m.Username,
		m.Name,
		m.Role,
		user.WithID(m.ID),
		user.WithPasswordHash(m.Password),
		user.WithActive(m.Active),
	)
}

func toDBUser(entity *user.User) models.User {
	return models.User{
		ID:       entity.ID(),
		Username: entity.Username(),
		Password: entity.PasswordHash(),
		Name:     entity.Name(),
		Role:     entity.RoleID(),
		Active:   entity.Active(),
	}
}
