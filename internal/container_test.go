//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/depdiff/internal"
	"github.com/rios0rios0/depdiff/internal/infrastructure/repositories"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the app with every controller", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var app *internal.AppInternal
		err := container.Invoke(func(ai *internal.AppInternal) { app = ai })

		// then
		require.NoError(t, err)
		uses := make([]string, 0, len(app.GetControllers()))
		for _, controller := range app.GetControllers() {
			uses = append(uses, controller.GetBind().Use)
		}
		assert.Equal(t, []string{"compare <job> <current-build> <previous-build>", "serve", "jobs"}, uses)
	})

	t.Run("should register the git and archive sources", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var registry *repositories.SnapshotRegistry
		err := container.Invoke(func(r *repositories.SnapshotRegistry) { registry = r })

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"archive", "git"}, registry.Names())
	})
}
