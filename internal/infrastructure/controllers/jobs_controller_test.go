//go:build unit

package controllers_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/infrastructure/controllers"
)

func TestDescribeJob(t *testing.T) {
	t.Parallel()

	t.Run("should describe a job without mapped builds", func(t *testing.T) {
		t.Parallel()

		// given
		job := entities.Job{Name: "billing", Source: entities.SourceArchive}

		// when
		line := controllers.DescribeJob(job)

		// then
		assert.Equal(t, "billing\tarchive\tpom.xml", line)
	})

	t.Run("should list mapped builds in ascending order", func(t *testing.T) {
		t.Parallel()

		// given
		job := entities.Job{
			Name:       "core",
			Source:     entities.SourceGit,
			Descriptor: "core/pom.xml",
			Builds:     map[int]string{12: "v1.2.0", 3: "v1.0.0"},
		}

		// when
		line := controllers.DescribeJob(job)

		// then
		assert.Equal(t, "core\tgit\tcore/pom.xml\t#3=v1.0.0 #12=v1.2.0", line)
	})
}

func TestJobsController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print one line per configured job", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		controller := controllers.NewJobsControllerWithOutput(&out)
		cmd := newCobraCommand(t, writeConfig(t), nil)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"billing\tarchive\tpom.xml\ncore\tgit\tcore/pom.xml\t#3=v1.0.0 #12=v1.2.0\n",
			out.String(),
		)
	})

	t.Run("should fail when the config cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		controller := controllers.NewJobsControllerWithOutput(&out)
		cmd := newCobraCommand(t, filepath.Join(t.TempDir(), "missing.yaml"), nil)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Empty(t, out.String())
	})
}
