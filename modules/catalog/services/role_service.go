package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/role"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/pkg/composables"
	"github.com/grupo-altia/accessdesk/pkg/eventbus"
)

type RoleService struct {
	repo      *persistence.RoleRepository
	users     *persistence.UserRepository
	engine    *permissions.Engine
	publisher eventbus.EventBus
}

func NewRoleService(
	repo *persistence.RoleRepository,
	users *persistence.UserRepository,
	engine *permissions.Engine,
	publisher eventbus.EventBus,
) *RoleService {
	return &RoleService{
		repo:      repo,
		users:     users,
		engine:    engine,
		publisher: publisher,
	}
}

func (s *RoleService) GetAll(ctx context.Context) ([]*role.Role, error) {
	return s.repo.GetAll(ctx)
}

func (s *RoleService) GetByID(ctx context.Context, id string) (*role.Role, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, id, name, description string, grid permission.Grid) (*role.Role, error) {
	if err := authorize(ctx, s.engine, permission.ResourceRoleManagement, permission.ActionEdit); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, errors.New("role id and name are required")
	}
	entity := role.New(id, name, role.WithDescription(description), role.WithPermissions(grid))
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	s.publisher.Publish(&role.CreatedEvent{Result: entity})
	return entity, nil
}

// RoleUpdateParams carries the optional fields of a partial role update;
// nil fields keep their current value.
type RoleUpdateParams struct {
	Name        *string
	Description *string
	Permissions permission.Grid
}

func (s *RoleService) Update(ctx context.Context, id string, params RoleUpdateParams) (*role.Role, error) {
	if err := authorize(ctx, s.engine, permission.ResourceRoleManagement, permission.ActionEdit); err != nil {
		return nil, err
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name := current.Name()
	if params.Name != nil {
		name = strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, errors.New("role name is required")
		}
	}
	description := current.Description()
	if params.Description != nil {
		description = *params.Description
	}
	grid := current.Permissions()
	if params.Permissions != nil {
		grid = params.Permissions
	}
	updated := role.New(id, name, role.WithDescription(description), role.WithPermissions(grid))
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	s.publisher.Publish(&role.UpdatedEvent{Result: updated})
	return updated, nil
}

// Delete refuses while any user still holds the role. The block is
// per-user: once the last holder is gone the role is deletable again.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	if err := authorize(ctx, s.engine, permission.ResourceRoleManagement, permission.ActionDelete); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.RoleID() == id {
			return errors.Wrapf(composables.ErrInUse, "role %q is still assigned to user %q", id, u.Username())
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&role.DeletedEvent{Result: existing})
	return nil
}
