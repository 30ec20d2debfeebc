package persistence

import (
	"context"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	doc := r.store.Catalog()
	out := make([]*user.User, 0, len(doc.Users))
	for i := range doc.Users {
		out = append(out, toDomainUser(&doc.Users[i]))
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*user.User, error) {
	for i := range r.store.Catalog().Users {
		if r.store.Catalog().Users[i].ID == id {
			return toDomainUser(&r.store.Catalog().Users[i]), nil
		}
	}
	return nil, errors.Wrapf(composables.ErrNotFound, "user %d", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for i := range r.store.Catalog().Users {
		if r.store.Catalog().Users[i].Username == username {
			return toDomainUser(&r.store.Catalog().Users[i]), nil
		}
	}
	return nil, errors.Wrapf(composables.ErrNotFound, "user %q", username)
}

func (r *UserRepository) Create(ctx context.Context, entity *user.User) (*user.User, error) {
	doc := r.store.Catalog()
	for i := range doc.Users {
		if doc.Users[i].Username == entity.Username() {
			return nil, errors.Wrapf(composables.ErrDuplicate, "username %q", entity.Username())
		}
	}
	maxID := 0
	for _, u := range doc.Users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	m := toDBUser(entity)
	m.ID = maxID + 1
	doc.Users = append(doc.Users, m)
	if err := r.store.SaveCatalog(); err != nil {
		doc.Users = doc.Users[:len(doc.Users)-1]
		return nil, err
	}
	return toDomainUser(&m), nil
}

func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	doc := r.store.Catalog()
	for i := range doc.Users {
		if doc.Users[i].ID == entity.ID() {
			previous := doc.Users[i]
			doc.Users[i] = toDBUser(entity)
			if err := r.store.SaveCatalog(); err != nil {
				doc.Users[i] = previous
				return err
			}
			return nil
		}
	}
	return errors.Wrapf(composables.ErrNotFound, "user %d", entity.ID())
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	doc := r.store.Catalog()
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			removed := doc.Users[i]
			doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
			if err := r.store.SaveCatalog(); err != nil {
				doc.Users = append(doc.Users, removed)
				return err
			}
			return nil
		}
	}
	return errors.Wrapf(composables.ErrNotFound, "user %d", id)
}
