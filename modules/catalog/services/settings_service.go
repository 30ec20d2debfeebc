package services

import (
	"context"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/pkg/eventbus"
)

// SettingsChangedEvent is published after the global toggle is persisted.
type SettingsChangedEvent struct {
	GenerateCheckedOnly bool
}

type SettingsService struct {
	repo      *persistence.SettingsRepository
	engine    *permissions.Engine
	publisher eventbus.EventBus
}

func NewSettingsService(repo *persistence.SettingsRepository, engine *permissions.Engine, publisher eventbus.EventBus) *SettingsService {
	return &SettingsService{repo: repo, engine: engine, publisher: publisher}
}

func (s *SettingsService) GenerateCheckedOnly(ctx context.Context) (bool, error) {
	return s.repo.GenerateCheckedOnly(ctx)
}

func (s *SettingsService) SetGenerateCheckedOnly(ctx context.Context, enabled bool) error {
	if err := authorize(ctx, s.engine, permission.ResourceSystemSettings, permission.ActionEdit); err != nil {
		return err
	}
	if err := s.repo.SetGenerateCheckedOnly(ctx, enabled); err != nil {
		return err
	}
	s.publisher.Publish(&SettingsChangedEvent{GenerateCheckedOnly: enabled})
	return nil
}
