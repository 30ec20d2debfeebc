package persistence

import (
	"context"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/system"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence/models"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

type SystemRepository struct {
	store *Store
}

func NewSystemRepository(store *Store) *SystemRepository {
	return &SystemRepository{store: store}
}

// GetAll returns systems in catalog order, which is also the order the
// request and checklist forms render them in.
func (r *SystemRepository) GetAll(ctx context.Context) ([]*system.System, error) {
	doc := r.store.Catalog()
	out := make([]*system.System, 0, len(doc.Systems))
	for i := range doc.Systems {
		out = append(out, toDomainSystem(&doc.Systems[i]))
	}
	return out, nil
}

func (r *SystemRepository) GetByID(ctx context.Context, id int) (*system.System, error) {
	for i := range r.store.Catalog().Systems {
		if r.store.Catalog().Systems[i].ID == id {
			return toDomainSystem(&r.store.Catalog().Systems[i]), nil
		}
	}
	return nil, errors.Wrapf(composables.ErrNotFound, "system %d", id)
}

func (r *SystemRepository) Exists(ctx context.Context, id int) bool {
	_, err := r.GetByID(ctx, id)
	return err == nil
}

func (r *SystemRepository) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	count := 0
	for _, s := range r.store.Catalog().Systems {
		if s.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *SystemRepository) Create(ctx context.Context, name string, categoryID int) (*system.System, error) {
	doc := r.store.Catalog()
	maxID := 0
	for _, s := range doc.Systems {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	m := models.System{ID: maxID + 1, Name: name, CategoryID: categoryID}
	doc.Systems = append(doc.Systems, m)
	if err := r.store.SaveCatalog(); err != nil {
		doc.Systems = doc.Systems[:len(doc.Systems)-1]
		return nil, err
	}
	return toDomainSystem(&m), nil
}

func (r *SystemRepository) Update(ctx context.Context, id int, name string, categoryID int) error {
	doc := r.store.Catalog()
	for i := range doc.Systems {
		if doc.Systems[i].ID == id {
			previous := doc.Systems[i]
			doc.Systems[i].Name = name
			doc.Systems[i].CategoryID = categoryID
			if err := r.store.SaveCatalog(); err != nil {
				doc.Systems[i] = previous
				return err
			}
			return nil
		}
	}
	return errors.Wrapf(composables.ErrNotFound, "system %d", id)
}

// Delete removes the system from the catalog document only. The matrix
// cleanup is a separate write sequenced after this one by the service.
func (r *SystemRepository) Delete(ctx context.Context, id int) error {
	doc := r.store.Catalog()
	for i := range doc.Systems {
		if doc.Systems[i].ID == id {
			removed := doc.Systems[i]
			doc.Systems = append(doc.Systems[:i], doc.Systems[i+1:]...)
			if err := r.store.SaveCatalog(); err != nil {
				doc.Systems = append(doc.Systems, removed)
				return err
			}
			return nil
		}
	}
	return errors.Wrapf(composables.ErrNotFound, "system %d", id)
}
