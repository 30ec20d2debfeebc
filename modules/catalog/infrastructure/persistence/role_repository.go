package persistence

import (
	"context"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/role"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

type RoleRepository struct {
	store *Store
}

func NewRoleRepository(store *Store) *RoleRepository {
	return &RoleRepository{store: store}
}

func (r *RoleRepository) GetAll(ctx context.Context) ([]*role.Role, error) {
	doc := r.store.Catalog()
	out := make([]*role.Role, 0, len(doc.Roles))
	for i := range doc.Roles {
		out = append(out, toDomainRole(&doc.Roles[i]))
	}
	return out, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id string) (*role.Role, error) {
	for i := range r.store.Catalog().Roles {
		if r.store.Catalog().Roles[i].ID == id {
			return toDomainRole(&r.store.Catalog().Roles[i]), nil
		}
	}
	return nil, errors.Wrapf(composables.ErrNotFound, "role %q", id)
}

func (r *RoleRepository) Exists(ctx context.Context, id string) bool {
	_, err := r.GetByID(ctx, id)
	return err == nil
}

func (r *RoleRepository) Create(ctx context.Context, entity *role.Role) error {
	doc := r.store.Catalog()
	for i := range doc.Roles {
		if doc.Roles[i].ID == entity.ID() {
			return errors.Wrapf(composables.ErrDuplicate, "role %q", entity.ID())
		}
	}
	doc.Roles = append(doc.Roles, toDBRole(entity))
	if err := r.store.SaveCatalog(); err != nil {
		doc.Roles = doc.Roles[:len(doc.Roles)-1]
		return err
	}
	return nil
}

func (r *RoleRepository) Update(ctx context.Context, entity *role.Role) error {
	doc := r.store.Catalog()
	for i := range doc.Roles {
		if doc.Roles[i].ID == entity.ID() {
			previous := doc.Roles[i]
			doc.Roles[i] = toDBRole(entity)
			if err := r.store.SaveCatalog(); err != nil {
				doc.Roles[i] = previous
				return err
			}
			return nil
		}
	}
	return errors.Wrapf(composables.ErrNotFound, "role %q", entity.ID())
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	doc := r.store.Catalog()
	for i := range doc.Roles {
		if doc.Roles[i].ID == id {
			removed := doc.Roles[i]
			doc.Roles = append(doc.Roles[:i], doc.Roles[i+1:]...)
			if err := r.store.SaveCatalog(); err != nil {
				doc.Roles = append(doc.Roles, removed)
				return err
			}
			return nil
		}
	}
	return errors.Wrapf(composables.ErrNotFound, "role %q", id)
}
