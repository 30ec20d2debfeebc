package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/modules/catalog/permissions"
	"github.com/grupo-altia/accessdesk/modules/catalog/seed"
	catalogservices "github.com/grupo-altia/accessdesk/modules/catalog/services"
	formservices "github.com/grupo-altia/accessdesk/modules/forms/services"
	"github.com/grupo-altia/accessdesk/pkg/composables"
	"github.com/grupo-altia/accessdesk/pkg/configuration"
	"github.com/grupo-altia/accessdesk/pkg/eventbus"
)

var errUsage = errors.New("usage error")

// app wires the storage, the permission engine and every service once per
// invocation. The CLI is stateless, so each command loads the catalog,
// authenticates, and runs a single operation.
type app struct {
	conf   *configuration.Configuration
	logger *logrus.Logger

	Departments *catalogservices.DepartmentService
	Categories  *catalogservices.CategoryService
	Systems     *catalogservices.SystemService
	Roles       *catalogservices.RoleService
	Users       *catalogservices.UserService
	Auth        *catalogservices.AuthService
	Matrix      *catalogservices.MatrixService
	Settings    *catalogservices.SettingsService
	Search      *catalogservices.SearchService
	Generation  *formservices.GenerationService
	Export      *formservices.ExportService
}

func newApp() (*app, error) {
	conf := configuration.Use()
	logger := conf.Logger()

	store := persistence.NewStore(conf.Storage.CatalogPath, conf.Storage.MatrixPath, logger)
	store.Load()
	if err := seed.EnsureDefaults(context.Background(), store, logger); err != nil {
		return nil, err
	}

	departmentRepo := persistence.NewDepartmentRepository(store)
	categoryRepo := persistence.NewCategoryRepository(store)
	systemRepo := persistence.NewSystemRepository(store)
	roleRepo := persistence.NewRoleRepository(store)
	userRepo := persistence.NewUserRepository(store)
	matrixRepo := persistence.NewMatrixRepository(store)
	settingsRepo := persistence.NewSettingsRepository(store)

	engine := permissions.NewEngine(roleRepo)
	publisher := eventbus.NewEventPublisher(logger)
	publisher.Subscribe(func(event interface{}) {
		logger.WithField("event", fmt.Sprintf("%T", event)).Debug("catalog changed")
	})

	departments := catalogservices.NewDepartmentService(departmentRepo)
	categories := catalogservices.NewCategoryService(categoryRepo, systemRepo, engine, publisher)
	systems := catalogservices.NewSystemService(systemRepo, categoryRepo, matrixRepo, engine, publisher)
	matrix := catalogservices.NewMatrixService(matrixRepo, systemRepo, departmentRepo, engine, publisher)
	settings := catalogservices.NewSettingsService(settingsRepo, engine, publisher)

	return &app{
		conf:        conf,
		logger:      logger,
		Departments: departments,
		Categories:  categories,
		Systems:     systems,
		Roles:       catalogservices.NewRoleService(roleRepo, userRepo, engine, publisher),
		Users:       catalogservices.NewUserService(userRepo, roleRepo, engine, publisher),
		Auth:        catalogservices.NewAuthService(userRepo),
		Matrix:      matrix,
		Settings:    settings,
		Search:      catalogservices.NewSearchService(departmentRepo, categoryRepo, systemRepo, userRepo),
		Generation: formservices.NewGenerationService(
			departments, systems, categories, matrix, settings, engine, conf.Templates, conf.OutputDir,
		),
		Export: formservices.NewExportService(departments, systems, categories, matrix, engine),
	}, nil
}

// authedContext authenticates the invoking user from flags or environment
// and returns a context carrying the user and a command-scoped logger.
func (a *app) authedContext(cmd *cobra.Command) (context.Context, error) {
	username, _ := cmd.Flags().GetString("user")
	if username == "" {
		username = os.Getenv("ACCESSDESK_USER")
	}
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("ACCESSDESK_PASSWORD")
	}
	if username == "" {
		return nil, errors.Wrap(errUsage, "--user or $ACCESSDESK_USER is required")
	}

	ctx := cmd.Context()
	u, err := a.Auth.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	ctx = composables.WithUser(ctx, u)
	ctx = composables.WithLogger(ctx, logrus.NewEntry(a.logger).WithField("command", cmd.CommandPath()))
	return ctx, nil
}

// runWithApp builds the app and an authenticated context, then hands both
// to the command body. Every subcommand goes through here.
func runWithApp(fn func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx, err := a.authedContext(cmd)
		if err != nil {
			return err
		}
		return fn(ctx, a, cmd, args)
	}
}
