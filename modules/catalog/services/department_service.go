package services

import (
	"context"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/department"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
)

// DepartmentService is read-only; departments and positions come seeded in
// the catalog file.
type DepartmentService struct {
	repo *persistence.DepartmentRepository
}

func NewDepartmentService(repo *persistence.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]*department.Department, error) {
	return s.repo.GetAll(ctx)
}

func (s *DepartmentService) GetByID(ctx context.Context, id int) (*department.Department, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DepartmentService) GetPositionByID(ctx context.Context, positionID int) (department.Position, *department.Department, error) {
	return s.repo.GetPositionByID(ctx, positionID)
}
