package persistence

import "context"

// SettingsRepository exposes the single global toggle stored inside the
// catalog document.
type SettingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) GenerateCheckedOnly(ctx context.Context) (bool, error) {
	return r.store.Catalog().Settings.GenerateCheckedOnly, nil
}

func (r *SettingsRepository) SetGenerateCheckedOnly(ctx context.Context, enabled bool) error {
	doc := r.store.Catalog()
	previous := doc.Settings.GenerateCheckedOnly
	doc.Settings.GenerateCheckedOnly = enabled
	if err := r.store.SaveCatalog(); err != nil {
		doc.Settings.GenerateCheckedOnly = previous
		return err
	}
	return nil
}
