package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-altia/accessdesk/pkg/composables"
)

func TestCategoryCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.Categories.Create(f.AdminCtx, "  Security  ")
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID())
	assert.Equal(t, "Security", created.Name())
}

func TestCategoryCreateRejectsEmptyName(t *testing.T) {
	f := newFixture(t)

	_, err := f.Categories.Create(f.AdminCtx, "   ")
	require.Error(t, err)
}

func TestCategoryCreateForbiddenForViewer(t *testing.T) {
	f := newFixture(t)

	_, err := f.Categories.Create(f.ViewerCtx, "Security")
	require.ErrorIs(t, err, composables.ErrForbidden)
}

func TestCategoryDeleteBlockedWhileReferenced(t *testing.T) {
	f := newFixture(t)

	err := f.Categories.Delete(f.AdminCtx, 1)
	require.ErrorIs(t, err, composables.ErrInUse)

	// Still present after the rejected delete.
	_, err = f.Categories.GetByID(f.AdminCtx, 1)
	require.NoError(t, err)
}

func TestCategoryDeleteSucceedsOnceEmpty(t *testing.T) {
	f := newFixture(t)

	// Category 2 only holds system 3.
	require.NoError(t, f.Systems.Delete(f.AdminCtx, 3))
	require.NoError(t, f.Categories.Delete(f.AdminCtx, 2))

	_, err := f.Categories.GetByID(f.AdminCtx, 2)
	require.ErrorIs(t, err, composables.ErrNotFound)
}

func TestCategoryUpdate(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.Categories.Update(f.AdminCtx, 1, "Platform"))

	got, err := f.Categories.GetByID(f.AdminCtx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Platform", got.Name())
}
