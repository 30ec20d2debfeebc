package persistence

import (
	"context"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/category"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence/models"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

type CategoryRepository struct {
	store *Store
}

func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*category.Category, error) {
	doc := r.store.Catalog()
	out := make([]*category.Category, 0, len(doc.Categories))
	for i := range doc.Categories {
		out = append(out, toDomainCategory(&doc.Categories[i]))
	}
	return out, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*category.Category, error) {
	for i := range r.store.Catalog().Categories {
		if r.store.Catalog().Categories[i].ID == id {
			return toDomainCategory(&r.store.Catalog().Categories[i]), nil
		}
	}
	return nil, errors.Wrapf(composables.ErrNotFound, "category %d", id)
}

func (r *CategoryRepository) Exists(ctx context.Context, id int) bool {
	_, err := r.GetByID(ctx, id)
	return err == nil
}

// Create assigns max(existing ids)+1, so deleted ids are never reused while
// a higher id remains.
func (r *CategoryRepository) Create(ctx context.Context, name string) (*category.Category, error) {
	doc := r.store.Catalog()
	maxID := 0
	for _, c := range doc.Categories {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	m := models.Category{ID: maxID + 1, Name: name}
	doc.Categories = append(doc.Categories, m)
	if err := r.store.SaveCatalog(); err != nil {
		doc.Categories = doc.Categories[:len(doc.Categories)-1]
		return nil, err
	}
	return toDomainCategory(&m), nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int, name string) error {
	doc := r.store.Catalog()
	for i := range doc.Categories {
		if doc.Categories[i].ID == id {
			previous := doc.Categories[i].Name
			doc.Categories[i].Name = name
			if err := r.store.SaveCatalog(); err != nil {
				doc.Categories[i].Name = previous
				return err
			}
			return nil
		}
	}
	return errors.Wrapf(composables.ErrNotFound, "category %d", id)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	doc := r.store.Catalog()
	for i := range doc.Categories {
		if doc.Categories[i].ID == id {
			removed := doc.Categories[i]
			doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
			if err := r.store.SaveCatalog(); err != nil {
				doc.Categories = append(doc.Categories, removed)
				return err
			}
			return nil
		}
	}
	return errors.Wrapf(composables.ErrNotFound, "category %d", id)
}
