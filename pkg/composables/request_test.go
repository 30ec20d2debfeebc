package composables_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

func TestUseUser(t *testing.T) {
	ctx := context.Background()

	_, err := composables.UseUser(ctx)
	require.ErrorIs(t, err, composables.ErrNoUser)

	u := user.New("ana", "Ana", "admin")
	got, err := composables.UseUser(composables.WithUser(ctx, u))
	require.NoError(t, err)
	assert.Same(t, u, got)
}

func TestUseLoggerDefaults(t *testing.T) {
	entry := composables.UseLogger(context.Background())
	require.NotNil(t, entry)

	custom := logrus.NewEntry(logrus.New()).WithField("command", "test")
	got := composables.UseLogger(composables.WithLogger(context.Background(), custom))
	assert.Same(t, custom, got)
}
