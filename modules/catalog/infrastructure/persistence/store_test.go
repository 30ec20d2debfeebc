package persistence_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/role"
	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

const storeCatalog = `{
  "departments": [
    {"id": 1, "name": "IT", "positions": [{"id": 10, "name": "Analyst"}]}
  ],
  "systems": [
    {"id": 1, "name": "ERP", "categoryId": 1},
    {"id": 2, "name": "CRM", "categoryId": 1},
    {"id": 5, "name": "VPN", "categoryId": 2}
  ],
  "categories": [
    {"id": 1, "name": "Core"},
    {"id": 2, "name": "Network"}
  ],
  "roles": [
    {"id": "admin", "name": "Administrator", "description": "", "permissions": {"access_matrix": {"view": true}}}
  ],
  "users": [
    {"id": 3, "username": "admin", "password": "secret", "name": "Admin", "role": "admin", "active": true}
  ],
  "settings": {"generate_checked_only": true}
}`

func newStore(t *testing.T, catalog, matrix string) (*persistence.Store, string) {
	t.Helper()
	dir := t.TempDir()
	if catalog != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(catalog), 0o644))
	}
	if matrix != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "matrix.json"), []byte(matrix), 0o644))
	}
	log := logrus.New()
	store := persistence.NewStore(filepath.Join(dir, "data.json"), filepath.Join(dir, "matrix.json"), log)
	store.Load()
	return store, dir
}

func TestLoadMissingFilesDefaults(t *testing.T) {
	store, _ := newStore(t, "", "")

	assert.Empty(t, store.Catalog().Departments)
	assert.Empty(t, store.Catalog().Users)
	assert.False(t, store.Catalog().Settings.GenerateCheckedOnly)
	assert.Empty(t, store.Matrix())
}

func TestLoadMalformedCatalogFallsBackToDefaults(t *testing.T) {
	store, _ := newStore(t, "{not json", `{"10": [1]}`)

	assert.Empty(t, store.Catalog().Systems)
	// The matrix file is independent and still loads.
	assert.Equal(t, []int{1}, store.Matrix().SystemsFor(10))
}

func TestLoadMatrixToleratesStringIDs(t *testing.T) {
	store, _ := newStore(t, storeCatalog, `{"10": [2, "1", 1]}`)

	assert.Equal(t, []int{1, 2}, store.Matrix().SystemsFor(10))
}

func TestLoadMatrixDropsNonNumericKeys(t *testing.T) {
	store, _ := newStore(t, storeCatalog, `{"10": [1], "bogus": [2]}`)

	assert.Equal(t, []int{1}, store.Matrix().SystemsFor(10))
	assert.Len(t, store.Matrix(), 1)
}

func TestSaveCatalogWritesIndentedJSON(t *testing.T) {
	store, dir := newStore(t, storeCatalog, "")
	require.NoError(t, store.SaveCatalog())

	raw, err := os.ReadFile(filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(raw), "\n"))
	assert.Contains(t, string(raw), "\n  \"departments\"")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
}

func TestSaveMatrixUsesStringKeys(t *testing.T) {
	store, dir := newStore(t, storeCatalog, `{"10": [2, 1]}`)
	require.NoError(t, store.SaveMatrix())

	raw, err := os.ReadFile(filepath.Join(dir, "matrix.json"))
	require.NoError(t, err)

	var doc map[string][]int
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, map[string][]int{"10": {1, 2}}, doc)
}

func TestCategoryRepositoryAssignsNextID(t *testing.T) {
	store, _ := newStore(t, storeCatalog, "")
	repo := persistence.NewCategoryRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Security")
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID())

	// Ids do not backfill gaps: max existing plus one.
	require.NoError(t, repo.Delete(ctx, 1))
	next, err := repo.Create(ctx, "Ops")
	require.NoError(t, err)
	assert.Equal(t, 4, next.ID())
}

func TestSystemRepositoryCountByCategory(t *testing.T) {
	store, _ := newStore(t, storeCatalog, "")
	repo := persistence.NewSystemRepository(store)
	ctx := context.Background()

	n, err := repo.CountByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, repo.Delete(ctx, 1))
	n, err = repo.CountByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUserRepositoryCreateAssignsIDAndRejectsDuplicates(t *testing.T) {
	store, _ := newStore(t, storeCatalog, "")
	repo := persistence.NewUserRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, user.New("bob", "Bob", "admin"))
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID())

	_, err = repo.Create(ctx, user.New("bob", "Other Bob", "admin"))
	require.ErrorIs(t, err, composables.ErrDuplicate)
}

func TestRoleRepositoryRoundTrip(t *testing.T) {
	store, _ := newStore(t, storeCatalog, "")
	repo := persistence.NewRoleRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, role.New("viewer", "Viewer")))

	got, err := repo.GetByID(ctx, "viewer")
	require.NoError(t, err)
	assert.Equal(t, "Viewer", got.Name())

	err = repo.Create(ctx, role.New("viewer", "Again"))
	require.ErrorIs(t, err, composables.ErrDuplicate)

	_, err = repo.GetByID(ctx, "nope")
	require.ErrorIs(t, err, composables.ErrNotFound)
}

func TestMatrixRepositorySetPersists(t *testing.T) {
	store, dir := newStore(t, storeCatalog, "")
	repo := persistence.NewMatrixRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, 10, 1, true))
	require.NoError(t, repo.Set(ctx, 10, 2, true))
	require.NoError(t, repo.Set(ctx, 10, 1, false))

	raw, err := os.ReadFile(filepath.Join(dir, "matrix.json"))
	require.NoError(t, err)
	var doc map[string][]int
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, map[string][]int{"10": {2}}, doc)

	// Unsetting the last system removes the position key entirely.
	require.NoError(t, repo.Set(ctx, 10, 2, false))
	raw, err = os.ReadFile(filepath.Join(dir, "matrix.json"))
	require.NoError(t, err)
	doc = nil
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Empty(t, doc)
}

func TestDepartmentRepositoryGetPositionByID(t *testing.T) {
	store, _ := newStore(t, storeCatalog, "")
	repo := persistence.NewDepartmentRepository(store)
	ctx := context.Background()

	pos, dept, err := repo.GetPositionByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Analyst", pos.Name())
	assert.Equal(t, "IT", dept.Name())

	_, _, err = repo.GetPositionByID(ctx, 99)
	require.ErrorIs(t, err, composables.ErrNotFound)
}

func TestSettingsRepositoryPersists(t *testing.T) {
	store, dir := newStore(t, storeCatalog, "")
	repo := persistence.NewSettingsRepository(store)
	ctx := context.Background()

	enabled, err := repo.GenerateCheckedOnly(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, repo.SetGenerateCheckedOnly(ctx, false))
	raw, err := os.ReadFile(filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"generate_checked_only": false`)
}
