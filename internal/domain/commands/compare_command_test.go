//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdiff/internal/domain/commands"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depdiff/internal/infrastructure/repositories"
	"github.com/rios0rios0/depdiff/internal/report"
	"github.com/rios0rios0/depdiff/test/infrastructure/repositorydoubles"
)

const previousPOM = `<project>
  <dependencies>
    <dependency><groupId>com.google.code.gson</groupId><artifactId>gson</artifactId><version>2.2</version></dependency>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId><version>4.12</version></dependency>
    <dependency><groupId>commons-io</groupId><artifactId>commons-io</artifactId><version>2.4</version></dependency>
  </dependencies>
</project>`

const currentPOM = `<project>
  <dependencies>
    <dependency><groupId>com.google.code.gson</groupId><artifactId>gson</artifactId><version>2.1</version></dependency>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId><version>4.12</version></dependency>
    <dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId><version>1.7.36</version></dependency>
  </dependencies>
</project>`

func newSettings() *entities.Settings {
	return &entities.Settings{
		Jobs: []entities.Job{
			{Name: "billing", Source: "spy", Builds: map[int]string{41: "v1", 42: "v2"}},
			{Name: "orphan", Source: "svn"},
		},
	}
}

func newCommand(spy *repositorydoubles.SpySnapshotRepository) *commands.CompareCommand {
	registry := infraRepos.NewSnapshotRegistry()
	registry.Register(spy)
	return commands.NewCompareCommand(registry)
}

func TestCompareCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should render the HTML diff of two builds", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpySnapshotRepository{
			SourceName:     "spy",
			DescriptorPath: "services/billing/pom.xml",
			Snapshots:      map[int]string{41: previousPOM, 42: currentPOM},
		}
		cmd := newCommand(spy)
		opts := commands.CompareOptions{Job: "billing", CurrentBuild: 42, PreviousBuild: 41}

		// when
		rep, err := cmd.Execute(context.Background(), newSettings(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, "billing", rep.Job)
		assert.Equal(t, report.FormatHTML, rep.Format)
		assert.Equal(t, entities.ReportFileName, rep.FileName)
		assert.Contains(t, rep.Content, "Comparing the current build #42 and build #41")
		assert.Contains(t, rep.Content, "<br> build #41 dependency version: 2.2")
		assert.Contains(t, rep.Content, "<br> artifactId: slf4j-api</br>")
		assert.Contains(t, rep.Content, "<br> artifactId: commons-io</br>")
		assert.Equal(t, []int{41, 42}, spy.FetchedBuilds)
		assert.Equal(t, []string{"services/billing/pom.xml", "services/billing/pom.xml"}, spy.FetchedPaths)
		require.Len(t, spy.ResolvedJobs, 1)
		assert.Equal(t, "billing", spy.ResolvedJobs[0].Name)
	})

	t.Run("should honour the requested format", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpySnapshotRepository{
			SourceName: "spy",
			Snapshots:  map[int]string{41: previousPOM, 42: currentPOM},
		}
		cmd := newCommand(spy)
		opts := commands.CompareOptions{
			Job: "billing", CurrentBuild: 42, PreviousBuild: 41, Format: report.FormatJSON,
		}

		// when
		rep, err := cmd.Execute(context.Background(), newSettings(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, "application/json", rep.ContentType)
		assert.Contains(t, rep.Content, `"previousVersion": "2.2"`)
		assert.Contains(t, rep.Content, `"purl": "pkg:maven/org.slf4j/slf4j-api@1.7.36"`)
	})

	t.Run("should fail with ErrJobNotFound for an unknown job", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpySnapshotRepository{SourceName: "spy"}
		cmd := newCommand(spy)

		// when
		rep, err := cmd.Execute(context.Background(), newSettings(), commands.CompareOptions{Job: "nope"})

		// then
		require.ErrorIs(t, err, entities.ErrJobNotFound)
		assert.Nil(t, rep)
		assert.Empty(t, spy.ResolvedJobs)
	})

	t.Run("should fail with ErrSourceNotFound for an unregistered source", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := newCommand(&repositorydoubles.SpySnapshotRepository{SourceName: "spy"})

		// when
		_, err := cmd.Execute(context.Background(), newSettings(), commands.CompareOptions{Job: "orphan"})

		// then
		require.ErrorIs(t, err, entities.ErrSourceNotFound)
	})

	t.Run("should wrap descriptor resolution failures", func(t *testing.T) {
		t.Parallel()

		// given
		resolveErr := errors.New("config.xml unreadable")
		spy := &repositorydoubles.SpySnapshotRepository{SourceName: "spy", ResolveErr: resolveErr}
		cmd := newCommand(spy)

		// when
		_, err := cmd.Execute(context.Background(), newSettings(), commands.CompareOptions{Job: "billing"})

		// then
		require.ErrorIs(t, err, resolveErr)
		assert.Contains(t, err.Error(), "could not locate dependency manifest")
		assert.Empty(t, spy.FetchedBuilds)
	})

	t.Run("should report an unmapped build", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpySnapshotRepository{
			SourceName: "spy",
			Snapshots:  map[int]string{42: currentPOM},
		}
		cmd := newCommand(spy)
		opts := commands.CompareOptions{Job: "billing", CurrentBuild: 42, PreviousBuild: 7}

		// when
		_, err := cmd.Execute(context.Background(), newSettings(), opts)

		// then
		require.ErrorIs(t, err, entities.ErrBuildNotMapped)
		assert.Contains(t, err.Error(), "could not fetch dependency manifest for build 7")
	})

	t.Run("should surface malformed descriptors", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpySnapshotRepository{
			SourceName: "spy",
			Snapshots:  map[int]string{41: previousPOM, 42: "<project><dependencies>"},
		}
		cmd := newCommand(spy)
		opts := commands.CompareOptions{Job: "billing", CurrentBuild: 42, PreviousBuild: 41}

		// when
		_, err := cmd.Execute(context.Background(), newSettings(), opts)

		// then
		var malformed *entities.MalformedDocumentError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, err.Error(), "could not read dependency manifest for build 42")
	})

	t.Run("should surface dependencies missing a required field", func(t *testing.T) {
		t.Parallel()

		// given
		broken := `<project><dependencies><dependency><groupId>g</groupId><artifactId>a</artifactId></dependency></dependencies></project>`
		spy := &repositorydoubles.SpySnapshotRepository{
			SourceName: "spy",
			Snapshots:  map[int]string{41: broken, 42: currentPOM},
		}
		cmd := newCommand(spy)
		opts := commands.CompareOptions{Job: "billing", CurrentBuild: 42, PreviousBuild: 41}

		// when
		_, err := cmd.Execute(context.Background(), newSettings(), opts)

		// then
		var missing *entities.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "version", missing.Field)
		assert.Equal(t, 1, missing.Position)
	})

	t.Run("should reject an unknown format", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpySnapshotRepository{
			SourceName: "spy",
			Snapshots:  map[int]string{41: previousPOM, 42: currentPOM},
		}
		cmd := newCommand(spy)
		opts := commands.CompareOptions{Job: "billing", CurrentBuild: 42, PreviousBuild: 41, Format: "pdf"}

		// when
		_, err := cmd.Execute(context.Background(), newSettings(), opts)

		// then
		require.ErrorIs(t, err, report.ErrUnknownFormat)
	})
}
