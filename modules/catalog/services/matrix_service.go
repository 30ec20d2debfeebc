package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/matrix"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/pkg/composables"
	"github.com/grupo-altia/accessdesk/pkg/eventbus"
)

type MatrixService struct {
	repo        *persistence.MatrixRepository
	systems     *persistence.SystemRepository
	departments *persistence.DepartmentRepository
	engine      *permissions.Engine
	publisher   eventbus.EventBus
}

func NewMatrixService(
	repo *persistence.MatrixRepository,
	systems *persistence.SystemRepository,
	departments *persistence.DepartmentRepository,
	engine *permissions.Engine,
	publisher eventbus.EventBus,
) *MatrixService {
	return &MatrixService{
		repo:        repo,
		systems:     systems,
		departments: departments,
		engine:      engine,
		publisher:   publisher,
	}
}

// SystemsForPosition returns the assigned system ids for a position,
// filtered against the live system catalog: ids orphaned by an interrupted
// cascade read as absent rather than surfacing.
func (s *MatrixService) SystemsForPosition(ctx context.Context, positionID int) ([]int, error) {
	ids, err := s.repo.SystemsForPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if s.systems.Exists(ctx, id) {
			out = append(out, id)
		}
	}
	return out, nil
}

// Assignments returns the whole relation with dangling ids filtered out.
func (s *MatrixService) Assignments(ctx context.Context) (matrix.Assignments, error) {
	m, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	m.Prune(func(systemID int) bool {
		return s.systems.Exists(ctx, systemID)
	})
	return m, nil
}

// SetSystemForPosition toggles one assignment. Idempotent: re-adding a
// present id or clearing an absent one changes nothing but still triggers
// a normalized re-save. Assigning validates both sides of the relation so
// the stored file only ever references live catalog entries; clearing
// accepts unknown ids, since that is how lingering orphans are removed.
func (s *MatrixService) SetSystemForPosition(ctx context.Context, positionID, systemID int, enabled bool) error {
	if err := authorize(ctx, s.engine, permission.ResourceAccessMatrix, permission.ActionEdit); err != nil {
		return err
	}
	if enabled {
		if !s.systems.Exists(ctx, systemID) {
			return errors.Wrapf(composables.ErrNotFound, "system %d", systemID)
		}
		if _, _, err := s.departments.GetPositionByID(ctx, positionID); err != nil {
			return err
		}
	}
	if err := s.repo.Set(ctx, positionID, systemID, enabled); err != nil {
		return err
	}
	s.publisher.Publish(&matrix.ChangedEvent{
		PositionID: positionID,
		SystemID:   systemID,
		Enabled:    enabled,
	})
	return nil
}
