package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/role"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/modules/catalog/services"
	"github.com/grupo-altia/accessdesk/pkg/composables"
	"github.com/grupo-altia/accessdesk/pkg/eventbus"
)

const testCatalog = `{
  "departments": [
    {"id": 1, "name": "IT", "positions": [
      {"id": 10, "name": "Analyst"},
      {"id": 11, "name": "Clerk"}
    ]},
    {"id": 2, "name": "HR", "positions": [{"id": 20, "name": "Recruiter"}]}
  ],
  "systems": [
    {"id": 1, "name": "Alpha ERP", "categoryId": 1},
    {"id": 2, "name": "beta suite", "categoryId": 1},
    {"id": 3, "name": "Gamma BI", "categoryId": 2}
  ],
  "categories": [
    {"id": 1, "name": "Core"},
    {"id": 2, "name": "Apps"}
  ],
  "roles": [],
  "users": [],
  "settings": {"generate_checked_only": false}
}`

const testMatrix = `{"10": [1, 2], "20": [3]}`

type fixture struct {
	store *persistence.Store

	CategoryRepo *persistence.CategoryRepository
	SystemRepo   *persistence.SystemRepository
	RoleRepo     *persistence.RoleRepository
	UserRepo     *persistence.UserRepository
	MatrixRepo   *persistence.MatrixRepository

	Categories  *services.CategoryService
	Systems     *services.SystemService
	Roles       *services.RoleService
	Users       *services.UserService
	Auth        *services.AuthService
	Matrix      *services.MatrixService
	Settings    *services.SettingsService
	Departments *services.DepartmentService
	Search      *services.SearchService

	AdminCtx  context.Context
	ViewerCtx context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(testCatalog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "matrix.json"), []byte(testMatrix), 0o644))

	log := logrus.New()
	store := persistence.NewStore(filepath.Join(dir, "data.json"), filepath.Join(dir, "matrix.json"), log)
	store.Load()

	categoryRepo := persistence.NewCategoryRepository(store)
	systemRepo := persistence.NewSystemRepository(store)
	roleRepo := persistence.NewRoleRepository(store)
	userRepo := persistence.NewUserRepository(store)
	matrixRepo := persistence.NewMatrixRepository(store)
	settingsRepo := persistence.NewSettingsRepository(store)
	departmentRepo := persistence.NewDepartmentRepository(store)

	ctx := context.Background()
	require.NoError(t, roleRepo.Create(ctx, role.New("admin", "Administrator", role.WithPermissions(permission.FullGrid()))))
	require.NoError(t, roleRepo.Create(ctx, role.New("viewer", "Viewer", role.WithPermissions(permission.ViewOnlyGrid()))))

	admin := user.New("admin", "Admin", "admin")
	require.NoError(t, admin.SetPassword("admin-pass"))
	admin, err := userRepo.Create(ctx, admin)
	require.NoError(t, err)

	viewer := user.New("viewer", "Viewer", "viewer")
	require.NoError(t, viewer.SetPassword("viewer-pass"))
	viewer, err = userRepo.Create(ctx, viewer)
	require.NoError(t, err)

	engine := permissions.NewEngine(roleRepo)
	publisher := eventbus.NewEventPublisher(log)

	return &fixture{
		store:        store,
		CategoryRepo: categoryRepo,
		SystemRepo:   systemRepo,
		RoleRepo:     roleRepo,
		UserRepo:     userRepo,
		MatrixRepo:   matrixRepo,
		Categories:   services.NewCategoryService(categoryRepo, systemRepo, engine, publisher),
		Systems:      services.NewSystemService(systemRepo, categoryRepo, matrixRepo, engine, publisher),
		Roles:        services.NewRoleService(roleRepo, userRepo, engine, publisher),
		Users:        services.NewUserService(userRepo, roleRepo, engine, publisher),
		Auth:         services.NewAuthService(userRepo),
		Matrix:       services.NewMatrixService(matrixRepo, systemRepo, departmentRepo, engine, publisher),
		Settings:     services.NewSettingsService(settingsRepo, engine, publisher),
		Departments:  services.NewDepartmentService(departmentRepo),
		Search:       services.NewSearchService(departmentRepo, categoryRepo, systemRepo, userRepo),
		AdminCtx:     composables.WithUser(ctx, admin),
		ViewerCtx:    composables.WithUser(ctx, viewer),
	}
}
