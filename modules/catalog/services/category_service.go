package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/category"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/pkg/composables"
	"github.com/grupo-altia/accessdesk/pkg/eventbus"
)

type CategoryService struct {
	repo      *persistence.CategoryRepository
	systems   *persistence.SystemRepository
	engine    *permissions.Engine
	publisher eventbus.EventBus
}

func NewCategoryService(
	repo *persistence.CategoryRepository,
	systems *persistence.SystemRepository,
	engine *permissions.Engine,
	publisher eventbus.EventBus,
) *CategoryService {
	return &CategoryService{
		repo:      repo,
		systems:   systems,
		engine:    engine,
		publisher: publisher,
	}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]*category.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*category.Category, error) {
	if err := authorize(ctx, s.engine, permission.ResourceStaffManagement, permission.ActionEdit); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}
	created, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&category.CreatedEvent{Result: created})
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, name string) error {
	if err := authorize(ctx, s.engine, permission.ResourceStaffManagement, permission.ActionEdit); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("category name is required")
	}
	if err := s.repo.Update(ctx, id, name); err != nil {
		return err
	}
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.publisher.Publish(&category.UpdatedEvent{Result: updated})
	return nil
}

// Delete refuses to remove a category that still has systems; the caller
// must move or delete those systems first.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if err := authorize(ctx, s.engine, permission.ResourceStaffManagement, permission.ActionDelete); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.systems.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Wrapf(composables.ErrInUse, "category %q has %d system(s); move or delete them first", existing.Name(), count)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&category.DeletedEvent{Result: existing})
	return nil
}
