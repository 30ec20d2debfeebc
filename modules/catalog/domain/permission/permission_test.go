package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
)

func TestGridFailClosed(t *testing.T) {
	g := permission.Grid{}
	assert.False(t, g.Allows(permission.ResourceAccessMatrix, permission.ActionView))

	g.Set(permission.ResourceAccessMatrix, permission.ActionView, true)
	assert.True(t, g.Allows(permission.ResourceAccessMatrix, permission.ActionView))
	// Sibling cells stay denied.
	assert.False(t, g.Allows(permission.ResourceAccessMatrix, permission.ActionEdit))
	assert.False(t, g.Allows(permission.ResourceStaffManagement, permission.ActionView))
}

func TestGridSetIgnoresUnknownTags(t *testing.T) {
	g := permission.Grid{}
	g.Set("reports", permission.ActionView, true)
	g.Set(permission.ResourceAccessMatrix, "approve", true)

	assert.Empty(t, g)
}

func TestGridNormalizeDropsUnknownKeys(t *testing.T) {
	g := permission.Grid{
		"reports":                       {"view": true},
		permission.ResourceAccessMatrix: {permission.ActionView: true, "approve": true},
	}

	normalized := g.Normalize()

	assert.True(t, normalized.Allows(permission.ResourceAccessMatrix, permission.ActionView))
	assert.False(t, normalized.Allows("reports", permission.ActionView))
	_, ok := normalized[permission.ResourceAccessMatrix]["approve"]
	assert.False(t, ok)
}

func TestFullGridCoversEveryCell(t *testing.T) {
	g := permission.FullGrid()
	for _, resource := range permission.Resources() {
		for _, action := range permission.Actions() {
			assert.True(t, g.Allows(resource, action), "%s/%s", resource, action)
		}
	}
}

func TestViewOnlyGrid(t *testing.T) {
	g := permission.ViewOnlyGrid()
	for _, resource := range permission.Resources() {
		assert.True(t, g.Allows(resource, permission.ActionView), "%s/view", resource)
		assert.False(t, g.Allows(resource, permission.ActionEdit), "%s/edit", resource)
		assert.False(t, g.Allows(resource, permission.ActionDelete), "%s/delete", resource)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := permission.Grid{}
	g.Set(permission.ResourceAccessMatrix, permission.ActionView, true)

	clone := g.Clone()
	clone.Set(permission.ResourceAccessMatrix, permission.ActionEdit, true)

	assert.False(t, g.Allows(permission.ResourceAccessMatrix, permission.ActionEdit))
}
