package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/system"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	catalogservices "github.com/grupo-altia/accessdesk/modules/catalog/services"
	"github.com/grupo-altia/accessdesk/modules/forms/fill"
	"github.com/grupo-altia/accessdesk/modules/forms/render"
	"github.com/grupo-altia/accessdesk/pkg/composables"
	"github.com/grupo-altia/accessdesk/pkg/configuration"
)

// Date layout used on every generated form, e.g. 05-Mar-26.
const dateLayout = "02-Jan-06"

const (
	sectionsMarker  = "DYNAMIC_SYSTEM_SECTIONS_PLACEHOLDER"
	rowsMarker      = "DYNAMIC_SYSTEM_ROWS_PLACEHOLDER"
	departureMarker = "Content for this section would be dynamically populated or added here"

	dateLabelDefault = "Fecha Ingreso"
)

// DateKind selects which label the date field carries on the request and
// checklist forms.
type DateKind string

const (
	DateKindHire         DateKind = "ingreso"
	DateKindModification DateKind = "modificacion"
	DateKindTermination  DateKind = "retiro"
)

func (k DateKind) Label() string {
	switch k {
	case DateKindHire:
		return "Fecha de Ingreso"
	case DateKindModification:
		return "Fecha de Modificación"
	case DateKindTermination:
		return "Fecha de Retiro"
	}
	return ""
}

func (k DateKind) IsValid() bool {
	return k.Label() != ""
}

type GenerateHireInput struct {
	EmployeeName string
	DepartmentID int
	PositionID   int
	OnQUser      string
	Email        string
	Date         *time.Time
	DateKind     DateKind
}

type GenerateDepartureInput struct {
	EmployeeName string
	DepartmentID int
	PositionID   int
	OnQUser      string
	Date         *time.Time
}

type GenerationService struct {
	departments *catalogservices.DepartmentService
	systems     *catalogservices.SystemService
	categories  *catalogservices.CategoryService
	matrix      *catalogservices.MatrixService
	settings    *catalogservices.SettingsService
	engine      *permissions.Engine
	templates   configuration.TemplateOptions
	outputDir   string
}

func NewGenerationService(
	departments *catalogservices.DepartmentService,
	systems *catalogservices.SystemService,
	categories *catalogservices.CategoryService,
	matrix *catalogservices.MatrixService,
	settings *catalogservices.SettingsService,
	engine *permissions.Engine,
	templates configuration.TemplateOptions,
	outputDir string,
) *GenerationService {
	return &GenerationService{
		departments: departments,
		systems:     systems,
		categories:  categories,
		matrix:      matrix,
		settings:    settings,
		engine:      engine,
		templates:   templates,
		outputDir:   outputDir,
	}
}

// GenerateHireForms renders the access request and the IT checklist for an
// employee and returns the written file paths, request first.
func (s *GenerationService) GenerateHireForms(ctx context.Context, input GenerateHireInput) ([]string, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	if err := s.validateCommon(input.EmployeeName); err != nil {
		return nil, err
	}
	if input.DateKind == DateKindTermination {
		return nil, errors.New("termination date is only valid on the separation checklist")
	}
	if input.DateKind != "" && !input.DateKind.IsValid() {
		return nil, errors.Errorf("unknown date kind %q", input.DateKind)
	}

	pos, dept, err := s.departments.GetPositionByID(ctx, input.PositionID)
	if err != nil {
		return nil, err
	}
	if dept.ID() != input.DepartmentID {
		return nil, errors.Errorf("position %d does not belong to department %d", input.PositionID, input.DepartmentID)
	}

	checked, err := s.checkedSet(ctx, input.PositionID)
	if err != nil {
		return nil, err
	}
	sections, err := s.hireSections(ctx, checked)
	if err != nil {
		return nil, err
	}

	dateValue := formatDate(input.Date)
	log := composables.UseLogger(ctx).WithFields(map[string]any{
		"run_id":   uuid.NewString(),
		"employee": input.EmployeeName,
		"position": pos.Name(),
	})

	stem := sanitizePathElement(input.EmployeeName)
	folder, err := s.ensureOutputFolder(stem)
	if err != nil {
		return nil, err
	}

	requestBlock, err := render.RequestSections(sections)
	if err != nil {
		return nil, err
	}
	requestPath := filepath.Join(folder, stem+" - Solicitud de Acceso.html")
	err = s.renderTemplate(s.templates.RequestPath(), requestPath, func(doc *fill.Document) {
		fillBasicFields(doc, input.EmployeeName, pos.Name(), dept.Name(), dateValue, input.DateKind.Label(), input.OnQUser, input.Email)
		doc.ReplaceComment(sectionsMarker, requestBlock)
	})
	if err != nil {
		return nil, err
	}
	log.WithField("path", requestPath).Info("access request generated")

	var rows []render.Item
	for _, sec := range sections {
		rows = append(rows, sec.Items...)
	}
	rowsBlock, err := render.ChecklistRows(rows)
	if err != nil {
		return nil, err
	}
	checklistPath := filepath.Join(folder, stem+" - IT Checklist.html")
	err = s.renderTemplate(s.templates.ChecklistPath(), checklistPath, func(doc *fill.Document) {
		fillBasicFields(doc, input.EmployeeName, pos.Name(), dept.Name(), dateValue, input.DateKind.Label(), "", "")
		doc.ReplaceComment(rowsMarker, rowsBlock)
	})
	if err != nil {
		return nil, err
	}
	log.WithField("path", checklistPath).Info("it checklist generated")

	return []string{requestPath, checklistPath}, nil
}

// GenerateDepartureForm renders the separation checklist and returns the
// written file path. The systems section lists exactly the position's
// assigned systems, every checkbox pre-checked.
func (s *GenerationService) GenerateDepartureForm(ctx context.Context, input GenerateDepartureInput) (string, error) {
	if err := s.authorize(ctx); err != nil {
		return "", err
	}
	if err := s.validateCommon(input.EmployeeName); err != nil {
		return "", err
	}

	pos, dept, err := s.departments.GetPositionByID(ctx, input.PositionID)
	if err != nil {
		return "", err
	}
	if dept.ID() != input.DepartmentID {
		return "", errors.Errorf("position %d does not belong to department %d", input.PositionID, input.DepartmentID)
	}

	checked, err := s.checkedSet(ctx, input.PositionID)
	if err != nil {
		return "", err
	}
	sections, err := s.departureSections(ctx, checked)
	if err != nil {
		return "", err
	}
	block, err := render.DepartureSections(sections)
	if err != nil {
		return "", err
	}

	dateValue := formatDate(input.Date)
	today := time.Now().Format(dateLayout)

	stem := sanitizePathElement(input.EmployeeName)
	folder, err := s.ensureOutputFolder(stem)
	if err != nil {
		return "", err
	}
	outPath := filepath.Join(folder, stem+" - Separation Checklist.html")
	err = s.renderTemplate(s.templates.DeparturePath(), outPath, func(doc *fill.Document) {
		doc.SetInputValue("departure_employee", input.EmployeeName)
		doc.SetInputValue("departure_position", pos.Name())
		doc.SetInputValue("departure_department", dept.Name())
		doc.SetInputValue("departure_onq", input.OnQUser)
		if dateValue != "" {
			doc.SetInputValue("departure_term_date", dateValue)
			doc.SetInputValue("departure_remove_access", dateValue)
			doc.SetInputValue("departure_process_date", dateValue)
		}
		doc.SetInputValue("departure_today", today)
		doc.ReplaceComment(departureMarker, block)
	})
	if err != nil {
		return "", err
	}

	composables.UseLogger(ctx).WithFields(map[string]any{
		"run_id":   uuid.NewString(),
		"employee": input.EmployeeName,
		"path":     outPath,
	}).Info("separation checklist generated")

	return outPath, nil
}

func (s *GenerationService) authorize(ctx context.Context) error {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return err
	}
	if !s.engine.Check(ctx, u, permission.ResourceFormGeneration, permission.ActionView) {
		return errors.Wrapf(composables.ErrForbidden, "%s on %s", permission.ActionView, permission.ResourceFormGeneration)
	}
	return nil
}

func (s *GenerationService) validateCommon(employee string) error {
	if strings.TrimSpace(employee) == "" {
		return errors.New("employee name is required")
	}
	return nil
}

func (s *GenerationService) checkedSet(ctx context.Context, positionID int) (map[int]bool, error) {
	ids, err := s.matrix.SystemsForPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// hireSections builds the per-category sections for the request and the
// checklist: categories ascending by id, systems in catalog order. With the
// checked-only setting on, unassigned systems and then-empty categories are
// dropped.
func (s *GenerationService) hireSections(ctx context.Context, checked map[int]bool) ([]render.Section, error) {
	grouped, err := s.systems.GetGroupedByCategory(ctx)
	if err != nil {
		return nil, err
	}
	checkedOnly, err := s.settings.GenerateCheckedOnly(ctx)
	if err != nil {
		return nil, err
	}

	catIDs := make([]int, 0, len(grouped))
	for id := range grouped {
		catIDs = append(catIDs, id)
	}
	sort.Ints(catIDs)

	var sections []render.Section
	for _, catID := range catIDs {
		var items []render.Item
		for _, sys := range grouped[catID] {
			if checkedOnly && !checked[sys.ID()] {
				continue
			}
			items = append(items, render.Item{Name: sys.Name(), Checked: checked[sys.ID()]})
		}
		if len(items) == 0 {
			continue
		}
		sections = append(sections, render.Section{
			Title: s.categoryTitle(ctx, catID, fmt.Sprintf("Categoría %d", catID)),
			Items: items,
		})
	}
	return sections, nil
}

// departureSections groups the assigned systems by category, names sorted
// case-insensitively within each category.
func (s *GenerationService) departureSections(ctx context.Context, checked map[int]bool) ([]render.Section, error) {
	ids := make([]int, 0, len(checked))
	for id := range checked {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	grouped := map[int][]*system.System{}
	for _, id := range ids {
		sys, err := s.systems.GetByID(ctx, id)
		if err != nil {
			continue
		}
		grouped[sys.CategoryID()] = append(grouped[sys.CategoryID()], sys)
	}

	catIDs := make([]int, 0, len(grouped))
	for id := range grouped {
		catIDs = append(catIDs, id)
	}
	sort.Ints(catIDs)

	var sections []render.Section
	for _, catID := range catIDs {
		systems := grouped[catID]
		sort.Slice(systems, func(i, j int) bool {
			return strings.ToLower(systems[i].Name()) < strings.ToLower(systems[j].Name())
		})
		fallback := "Uncategorized"
		if catID != 0 {
			fallback = fmt.Sprintf("Category %d", catID)
		}
		items := make([]render.Item, 0, len(systems))
		for _, sys := range systems {
			items = append(items, render.Item{Name: sys.Name(), Checked: true})
		}
		sections = append(sections, render.Section{
			Title: s.categoryTitle(ctx, catID, fallback),
			Items: items,
		})
	}
	return sections, nil
}

func (s *GenerationService) categoryTitle(ctx context.Context, catID int, fallback string) string {
	cat, err := s.categories.GetByID(ctx, catID)
	if err != nil || cat.Name() == "" {
		return fallback
	}
	return cat.Name()
}

// renderTemplate loads the template file, applies mutate, and writes the
// result. Template read failures are fatal, unlike missing fields inside a
// template, which degrade silently.
func (s *GenerationService) renderTemplate(templatePath, outPath string, mutate func(*fill.Document)) error {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return errors.Wrapf(err, "failed to read template %s", templatePath)
	}
	doc, err := fill.ParseString(string(raw))
	if err != nil {
		return errors.Wrapf(err, "failed to parse template %s", templatePath)
	}
	mutate(doc)
	out, err := doc.HTML()
	if err != nil {
		return errors.Wrap(err, "failed to render document")
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", outPath)
	}
	return nil
}

func (s *GenerationService) ensureOutputFolder(stem string) (string, error) {
	folder := filepath.Join(s.outputDir, stem)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create output folder %s", folder)
	}
	return folder, nil
}

// sanitizePathElement keeps the employee name readable while making it safe
// as a single path element. The same stem names the output folder and the
// generated files inside it.
func sanitizePathElement(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	return name
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func fillBasicFields(doc *fill.Document, employee, position, dept, dateValue, dateLabel, onqUser, email string) {
	doc.SetInputValue("nombre", employee)
	doc.SetInputValue("posicion", position)
	doc.SetInputValue("departamento", dept)

	if dateLabel != "" {
		doc.ReplaceText(dateLabelDefault, dateLabel)
	}
	if dateValue == "" {
		dateValue = time.Now().Format(dateLayout)
	}
	doc.SetInputValue("fecha_ingreso", dateValue)

	if onqUser != "" {
		doc.SetInputValue("idm_login", onqUser)
	}
	if email != "" {
		doc.SetInputValue("email", email)
	}
}
