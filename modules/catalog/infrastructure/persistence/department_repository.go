package persistence

import (
	"context"

	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/department"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

// DepartmentRepository is read-only: departments and positions are seeded
// in the catalog file and have no in-core CRUD.
type DepartmentRepository struct {
	store *Store
}

func NewDepartmentRepository(store *Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*department.Department, error) {
	doc := r.store.Catalog()
	out := make([]*department.Department, 0, len(doc.Departments))
	for i := range doc.Departments {
		out = append(out, toDomainDepartment(&doc.Departments[i]))
	}
	return out, nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*department.Department, error) {
	for i := range r.store.Catalog().Departments {
		if r.store.Catalog().Departments[i].ID == id {
			return toDomainDepartment(&r.store.Catalog().Departments[i]), nil
		}
	}
	return nil, errors.Wrapf(composables.ErrNotFound, "department %d", id)
}

// GetPositionByID resolves a position and its owning department.
func (r *DepartmentRepository) GetPositionByID(ctx context.Context, positionID int) (department.Position, *department.Department, error) {
	doc := r.store.Catalog()
	for i := range doc.Departments {
		for _, p := range doc.Departments[i].Positions {
			if p.ID == positionID {
				return department.NewPosition(p.ID, p.Name), toDomainDepartment(&doc.Departments[i]), nil
			}
		}
	}
	return department.Position{}, nil, errors.Wrapf(composables.ErrNotFound, "position %d", positionID)
}
