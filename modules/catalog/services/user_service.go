package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/pkg/composables"
	"github.com/grupo-altia/accessdesk/pkg/eventbus"
)

type UserService struct {
	repo      *persistence.UserRepository
	roles     *persistence.RoleRepository
	engine    *permissions.Engine
	publisher eventbus.EventBus
}

func NewUserService(
	repo *persistence.UserRepository,
	roles *persistence.RoleRepository,
	engine *permissions.Engine,
	publisher eventbus.EventBus,
) *UserService {
	return &UserService{
		repo:      repo,
		roles:     roles,
		engine:    engine,
		publisher: publisher,
	}
}

type CreateUserDTO struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required"`
	RoleID   string `validate:"required"`
	Active   bool
}

// UpdateUserDTO carries a partial update; nil fields keep their current
// value. A non-nil Password is re-hashed; a nil one leaves the stored
// credential untouched.
type UpdateUserDTO struct {
	Username *string
	Password *string
	Name     *string
	RoleID   *string
	Active   *bool
}

func (s *UserService) GetAll(ctx context.Context) ([]*user.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *UserService) Create(ctx context.Context, data CreateUserDTO) (*user.User, error) {
	if err := authorize(ctx, s.engine, permission.ResourceUserManagement, permission.ActionEdit); err != nil {
		return nil, err
	}
	data.Username = strings.TrimSpace(data.Username)
	data.Name = strings.TrimSpace(data.Name)
	if err := validate.Struct(data); err != nil {
		return nil, err
	}
	if !s.roles.Exists(ctx, data.RoleID) {
		return nil, errors.Wrapf(composables.ErrNotFound, "role %q", data.RoleID)
	}
	entity := user.New(data.Username, data.Name, data.RoleID, user.WithActive(data.Active))
	if err := entity.SetPassword(data.Password); err != nil {
		return nil, errors.Wrap(err, "hashing password")
	}
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&user.CreatedEvent{Result: created})
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id int, data UpdateUserDTO) (*user.User, error) {
	if err := authorize(ctx, s.engine, permission.ResourceUserManagement, permission.ActionEdit); err != nil {
		return nil, err
	}
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if data.Username != nil {
		username := strings.TrimSpace(*data.Username)
		if username == "" {
			return nil, errors.New("username is required")
		}
		if username != entity.Username() {
			if _, err := s.repo.GetByUsername(ctx, username); err == nil {
				return nil, errors.Wrapf(composables.ErrDuplicate, "username %q", username)
			}
			entity.SetUsername(username)
		}
	}
	if data.RoleID != nil {
		if !s.roles.Exists(ctx, *data.RoleID) {
			return nil, errors.Wrapf(composables.ErrNotFound, "role %q", *data.RoleID)
		}
		entity.SetRoleID(*data.RoleID)
	}
	if data.Name != nil {
		name := strings.TrimSpace(*data.Name)
		if name == "" {
			return nil, errors.New("name is required")
		}
		entity.Rename(name)
	}
	if data.Password != nil {
		if len(*data.Password) < 6 {
			return nil, errors.New("password must be at least 6 characters")
		}
		if err := entity.SetPassword(*data.Password); err != nil {
			return nil, errors.Wrap(err, "hashing password")
		}
	}
	if data.Active != nil {
		entity.SetActive(*data.Active)
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}
	s.publisher.Publish(&user.UpdatedEvent{Result: entity})
	return entity, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := authorize(ctx, s.engine, permission.ResourceUserManagement, permission.ActionDelete); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&user.DeletedEvent{Result: existing})
	return nil
}
