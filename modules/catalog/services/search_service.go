package services

import (
	"context"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/category"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/department"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/system"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
)

// PositionHit pairs a matched position with its owning department.
type PositionHit struct {
	Position   department.Position
	Department *department.Department
}

type SearchResult struct {
	Systems    []*system.System
	Categories []*category.Category
	Positions  []PositionHit
	Users      []*user.User
}

// SearchService backs the collaborator UI's quick-find box with a fuzzy,
// case-insensitive match over catalog names.
type SearchService struct {
	departments *persistence.DepartmentRepository
	categories  *persistence.CategoryRepository
	systems     *persistence.SystemRepository
	users       *persistence.UserRepository
}

func NewSearchService(
	departments *persistence.DepartmentRepository,
	categories *persistence.CategoryRepository,
	systems *persistence.SystemRepository,
	users *persistence.UserRepository,
) *SearchService {
	return &SearchService{
		departments: departments,
		categories:  categories,
		systems:     systems,
		users:       users,
	}
}

func (s *SearchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	result := &SearchResult{}
	if query == "" {
		return result, nil
	}

	systems, err := s.systems.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, sys := range systems {
		if fuzzy.MatchFold(query, sys.Name()) {
			result.Systems = append(result.Systems, sys)
		}
	}

	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, cat := range categories {
		if fuzzy.MatchFold(query, cat.Name()) {
			result.Categories = append(result.Categories, cat)
		}
	}

	departments, err := s.departments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, dept := range departments {
		for _, pos := range dept.Positions() {
			if fuzzy.MatchFold(query, pos.Name()) {
				result.Positions = append(result.Positions, PositionHit{Position: pos, Department: dept})
			}
		}
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if fuzzy.MatchFold(query, u.Username()) || fuzzy.MatchFold(query, u.Name()) {
			result.Users = append(result.Users, u)
		}
	}

	return result, nil
}
