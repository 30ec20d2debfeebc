package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/category"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/system"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/pkg/composables"
	"github.com/grupo-altia/accessdesk/pkg/eventbus"
)

type SystemService struct {
	repo       *persistence.SystemRepository
	categories *persistence.CategoryRepository
	matrix     *persistence.MatrixRepository
	engine     *permissions.Engine
	publisher  eventbus.EventBus
}

func NewSystemService(
	repo *persistence.SystemRepository,
	categories *persistence.CategoryRepository,
	matrix *persistence.MatrixRepository,
	engine *permissions.Engine,
	publisher eventbus.EventBus,
) *SystemService {
	return &SystemService{
		repo:       repo,
		categories: categories,
		matrix:     matrix,
		engine:     engine,
		publisher:  publisher,
	}
}

func (s *SystemService) GetAll(ctx context.Context) ([]*system.System, error) {
	return s.repo.GetAll(ctx)
}

func (s *SystemService) GetByID(ctx context.Context, id int) (*system.System, error) {
	return s.repo.GetByID(ctx, id)
}

// GetGroupedByCategory returns systems keyed by category id, preserving
// catalog order within each group.
func (s *SystemService) GetGroupedByCategory(ctx context.Context) (map[int][]*system.System, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int][]*system.System)
	for _, sys := range all {
		grouped[sys.CategoryID()] = append(grouped[sys.CategoryID()], sys)
	}
	return grouped, nil
}

func (s *SystemService) validateCategory(ctx context.Context, categoryID int) error {
	if categoryID == category.UncategorizedID {
		return nil
	}
	if !s.categories.Exists(ctx, categoryID) {
		return errors.Wrapf(composables.ErrNotFound, "category %d", categoryID)
	}
	return nil
}

func (s *SystemService) Create(ctx context.Context, name string, categoryID int) (*system.System, error) {
	if err := authorize(ctx, s.engine, permission.ResourceStaffManagement, permission.ActionEdit); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("system name is required")
	}
	if err := s.validateCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, name, categoryID)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&system.CreatedEvent{Result: created})
	return created, nil
}

func (s *SystemService) Update(ctx context.Context, id int, name string, categoryID int) error {
	if err := authorize(ctx, s.engine, permission.ResourceStaffManagement, permission.ActionEdit); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("system name is required")
	}
	if err := s.validateCategory(ctx, categoryID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, name, categoryID); err != nil {
		return err
	}
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.publisher.Publish(&system.UpdatedEvent{Result: updated})
	return nil
}

// Delete removes the system and cascades into the access matrix. The
// catalog write runs first; the matrix cleanup is the cheaper target to
// redo, and dangling matrix ids read as absent until the next write prunes
// them.
func (s *SystemService) Delete(ctx context.Context, id int) error {
	if err := authorize(ctx, s.engine, permission.ResourceStaffManagement, permission.ActionDelete); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.matrix.RemoveSystem(ctx, id); err != nil {
		return errors.Wrap(err, "system removed from catalog but matrix cleanup failed")
	}
	s.publisher.Publish(&system.DeletedEvent{Result: existing})
	return nil
}
