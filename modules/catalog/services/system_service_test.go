package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-altia/accessdesk/pkg/composables"
)

func TestSystemCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.Systems.Create(f.AdminCtx, "Delta CRM", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID())
	assert.Equal(t, 2, created.CategoryID())
}

func TestSystemCreateRejectsUnknownCategory(t *testing.T) {
	f := newFixture(t)

	_, err := f.Systems.Create(f.AdminCtx, "Delta CRM", 99)
	require.ErrorIs(t, err, composables.ErrNotFound)
}

func TestSystemCreateAllowsUncategorized(t *testing.T) {
	f := newFixture(t)

	created, err := f.Systems.Create(f.AdminCtx, "Delta CRM", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, created.CategoryID())
}

func TestSystemDeleteCascadesIntoMatrix(t *testing.T) {
	f := newFixture(t)

	// System 1 is assigned to position 10 alongside system 2.
	require.NoError(t, f.Systems.Delete(f.AdminCtx, 1))

	_, err := f.Systems.GetByID(f.AdminCtx, 1)
	require.ErrorIs(t, err, composables.ErrNotFound)

	ids, err := f.Matrix.SystemsForPosition(f.AdminCtx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids)
}

func TestSystemDeleteClearsEmptyMatrixEntries(t *testing.T) {
	f := newFixture(t)

	// System 3 is position 20's only assignment.
	require.NoError(t, f.Systems.Delete(f.AdminCtx, 3))

	assignments, err := f.Matrix.Assignments(f.AdminCtx)
	require.NoError(t, err)
	_, ok := assignments[20]
	assert.False(t, ok)
}

func TestSystemDeleteForbiddenForViewer(t *testing.T) {
	f := newFixture(t)

	err := f.Systems.Delete(f.ViewerCtx, 1)
	require.ErrorIs(t, err, composables.ErrForbidden)
}

func TestSystemGetGroupedByCategoryKeepsCatalogOrder(t *testing.T) {
	f := newFixture(t)

	grouped, err := f.Systems.GetGroupedByCategory(f.AdminCtx)
	require.NoError(t, err)

	require.Len(t, grouped[1], 2)
	assert.Equal(t, "Alpha ERP", grouped[1][0].Name())
	assert.Equal(t, "beta suite", grouped[1][1].Name())
	require.Len(t, grouped[2], 1)
}

func TestSystemUpdate(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.Systems.Update(f.AdminCtx, 1, "Alpha ERP v2", 2))

	got, err := f.Systems.GetByID(f.AdminCtx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alpha ERP v2", got.Name())
	assert.Equal(t, 2, got.CategoryID())
}
