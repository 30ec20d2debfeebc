package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/system"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	catalogservices "github.com/grupo-altia/accessdesk/modules/catalog/services"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

const matrixSheet = "Access Matrix"

// ExportService writes the access matrix to an Excel workbook: one row per
// position, one column per system, with systems grouped under their
// category headers.
type ExportService struct {
	departments *catalogservices.DepartmentService
	systems     *catalogservices.SystemService
	categories  *catalogservices.CategoryService
	matrix      *catalogservices.MatrixService
	engine      *permissions.Engine
}

func NewExportService(
	departments *catalogservices.DepartmentService,
	systems *catalogservices.SystemService,
	categories *catalogservices.CategoryService,
	matrix *catalogservices.MatrixService,
	engine *permissions.Engine,
) *ExportService {
	return &ExportService{
		departments: departments,
		systems:     systems,
		categories:  categories,
		matrix:      matrix,
		engine:      engine,
	}
}

func (s *ExportService) ExportMatrix(ctx context.Context, path string) error {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return err
	}
	if !s.engine.Check(ctx, u, permission.ResourceAccessMatrix, permission.ActionView) {
		return errors.Wrapf(composables.ErrForbidden, "%s on %s", permission.ActionView, permission.ResourceAccessMatrix)
	}

	columns, err := s.systemColumns(ctx)
	if err != nil {
		return err
	}
	departments, err := s.departments.GetAll(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", matrixSheet); err != nil {
		return errors.Wrap(err, "failed to name sheet")
	}

	if err := s.writeHeader(ctx, f, columns); err != nil {
		return err
	}

	row := 3
	for _, dept := range departments {
		for _, pos := range dept.Positions() {
			assigned, err := s.matrix.SystemsForPosition(ctx, pos.ID())
			if err != nil {
				return err
			}
			set := make(map[int]bool, len(assigned))
			for _, id := range assigned {
				set[id] = true
			}

			if err := setCell(f, 1, row, dept.Name()); err != nil {
				return err
			}
			if err := setCell(f, 2, row, pos.Name()); err != nil {
				return err
			}
			for i, sys := range columns {
				if set[sys.ID()] {
					if err := setCell(f, 3+i, row, "X"); err != nil {
						return err
					}
				}
			}
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", path)
	}
	return nil
}

// systemColumns flattens the catalog into export column order: categories
// ascending by id, systems in catalog order within each category.
func (s *ExportService) systemColumns(ctx context.Context) ([]*system.System, error) {
	grouped, err := s.systems.GetGroupedByCategory(ctx)
	if err != nil {
		return nil, err
	}
	catIDs := make([]int, 0, len(grouped))
	for id := range grouped {
		catIDs = append(catIDs, id)
	}
	sort.Ints(catIDs)

	var columns []*system.System
	for _, catID := range catIDs {
		columns = append(columns, grouped[catID]...)
	}
	return columns, nil
}

func (s *ExportService) writeHeader(ctx context.Context, f *excelize.File, columns []*system.System) error {
	if err := setCell(f, 1, 2, "Department"); err != nil {
		return err
	}
	if err := setCell(f, 2, 2, "Position"); err != nil {
		return err
	}
	for i, sys := range columns {
		title := fmt.Sprintf("Categoría %d", sys.CategoryID())
		if cat, err := s.categories.GetByID(ctx, sys.CategoryID()); err == nil && cat.Name() != "" {
			title = cat.Name()
		}
		if err := setCell(f, 3+i, 1, title); err != nil {
			return err
		}
		if err := setCell(f, 3+i, 2, sys.Name()); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(matrixSheet, cell, value)
}
