package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesAcrossKinds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.Search.Search(ctx, "alp")
	require.NoError(t, err)
	require.Len(t, result.Systems, 1)
	assert.Equal(t, "Alpha ERP", result.Systems[0].Name())

	result, err = f.Search.Search(ctx, "analyst")
	require.NoError(t, err)
	require.Len(t, result.Positions, 1)
	assert.Equal(t, "Analyst", result.Positions[0].Position.Name())
	assert.Equal(t, "IT", result.Positions[0].Department.Name())

	result, err = f.Search.Search(ctx, "admin")
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)

	result, err := f.Search.Search(context.Background(), "CORE")
	require.NoError(t, err)
	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Core", result.Categories[0].Name())
}

func TestSearchNoMatches(t *testing.T) {
	f := newFixture(t)

	result, err := f.Search.Search(context.Background(), "zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, result.Systems)
	assert.Empty(t, result.Categories)
	assert.Empty(t, result.Positions)
	assert.Empty(t, result.Users)
}
