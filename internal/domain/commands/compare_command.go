package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdiff/internal/differ"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depdiff/internal/infrastructure/repositories"
	"github.com/rios0rios0/depdiff/internal/pom"
	"github.com/rios0rios0/depdiff/internal/report"
)

// Compare is the interface for the compare command.
type Compare interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CompareOptions) (*entities.Report, error)
}

// CompareOptions holds runtime options for a single comparison.
type CompareOptions struct {
	Job           string
	CurrentBuild  int
	PreviousBuild int
	Format        string // html (default), text, json or yaml
}

// CompareCommand diffs the descriptors of two builds of a job:
// resolve descriptor -> fetch both snapshots -> parse -> diff -> render.
type CompareCommand struct {
	snapshotRegistry *infraRepos.SnapshotRegistry
}

// NewCompareCommand creates a new CompareCommand with the given snapshot registry.
func NewCompareCommand(snapshotRegistry *infraRepos.SnapshotRegistry) *CompareCommand {
	return &CompareCommand{
		snapshotRegistry: snapshotRegistry,
	}
}

// Execute runs one comparison and returns the rendered report.
func (it *CompareCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CompareOptions,
) (*entities.Report, error) {
	job, err := settings.FindJob(opts.Job)
	if err != nil {
		return nil, err
	}

	source, err := it.snapshotRegistry.Get(job.Source)
	if err != nil {
		return nil, err
	}

	descriptorPath, err := source.ResolveDescriptorPath(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("could not locate dependency manifest of job %q: %w", job.Name, err)
	}
	logger.Infof(
		"[%s] Comparing %s of build #%d against build #%d",
		job.Name, descriptorPath, opts.CurrentBuild, opts.PreviousBuild,
	)

	previous, err := loadDependencies(ctx, source, job, descriptorPath, opts.PreviousBuild)
	if err != nil {
		return nil, err
	}
	current, err := loadDependencies(ctx, source, job, descriptorPath, opts.CurrentBuild)
	if err != nil {
		return nil, err
	}

	diff := differ.Diff(previous, current)
	logger.Infof(
		"[%s] %d modified, %d added, %d deleted",
		job.Name, len(diff.Modified), len(diff.Added), len(diff.Deleted),
	)

	rep, err := report.Render(opts.Format, previous, current, diff, opts.PreviousBuild, opts.CurrentBuild)
	if err != nil {
		return nil, err
	}
	rep.Job = job.Name

	return &rep, nil
}

// loadDependencies fetches and parses the descriptor of a single build.
func loadDependencies(
	ctx context.Context,
	source repositories.SnapshotRepository,
	job entities.Job,
	descriptorPath string,
	build int,
) ([]entities.Dependency, error) {
	data, err := source.FetchDescriptor(ctx, job, descriptorPath, build)
	if err != nil {
		return nil, fmt.Errorf("could not fetch dependency manifest for build %d: %w", build, err)
	}

	deps, err := pom.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not read dependency manifest for build %d: %w", build, err)
	}

	logger.Debugf("[%s] Build #%d declares %d dependencies", job.Name, build, len(deps))
	return deps, nil
}
