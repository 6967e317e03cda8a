package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/pom"
)

// Opener returns the git repository holding the history of a job.
type Opener func(ctx context.Context, job entities.Job) (*gogit.Repository, error)

// SnapshotRepository reads descriptors from the commit each build was made from.
// Builds are mapped to revisions (tags, branches or hashes) in Job.Builds.
// The repository is opened on every fetch so moved branches and tags are
// always resolved against the current history.
type SnapshotRepository struct {
	open     Opener
	readFile func(name string) ([]byte, error)
}

// NewSnapshotRepository creates a SnapshotRepository that opens local
// repositories in place and clones remote ones into memory.
func NewSnapshotRepository() *SnapshotRepository {
	return NewSnapshotRepositoryWithOpener(openRepository)
}

// NewSnapshotRepositoryWithOpener creates a SnapshotRepository using a custom opener.
func NewSnapshotRepositoryWithOpener(open Opener) *SnapshotRepository {
	return &SnapshotRepository{
		open:     open,
		readFile: os.ReadFile,
	}
}

// Name returns the source identifier of git jobs.
func (it *SnapshotRepository) Name() string {
	return entities.SourceGit
}

// ResolveDescriptorPath returns the <rootPOM> of the job configuration file when
// one is configured, falling back to the job descriptor path.
func (it *SnapshotRepository) ResolveDescriptorPath(_ context.Context, job entities.Job) (string, error) {
	if job.ConfigFile == "" {
		return cleanPath(job.DescriptorPath()), nil
	}

	data, err := it.readFile(job.ConfigFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job configuration %q: %w", job.ConfigFile, err)
	}

	rootPOM, err := pom.RootPOM(data)
	if errors.Is(err, pom.ErrRootPOMNotFound) {
		logger.Warnf("No rootPOM in %q, using %q", job.ConfigFile, job.DescriptorPath())
		return cleanPath(job.DescriptorPath()), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to parse job configuration %q: %w", job.ConfigFile, err)
	}

	return cleanPath(rootPOM), nil
}

// FetchDescriptor returns the descriptor content at the revision mapped to the build.
func (it *SnapshotRepository) FetchDescriptor(
	ctx context.Context,
	job entities.Job,
	descriptorPath string,
	build int,
) ([]byte, error) {
	revision, ok := job.Builds[build]
	if !ok || revision == "" {
		return nil, fmt.Errorf("%w: build #%d of job %q", entities.ErrBuildNotMapped, build, job.Name)
	}

	repo, err := it.open(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", job.Repository, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q of build #%d: %w", revision, build, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	file, err := commit.File(descriptorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find %q at %s: %w", descriptorPath, hash.String()[:7], err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q at %s: %w", descriptorPath, hash.String()[:7], err)
	}

	logger.Debugf("Read %s of build #%d from revision %s (%s)", descriptorPath, build, revision, hash)
	return []byte(contents), nil
}

// openRepository opens a local repository or clones a remote one into memory.
func openRepository(ctx context.Context, job entities.Job) (*gogit.Repository, error) {
	if info, err := os.Stat(job.Repository); err == nil && info.IsDir() {
		logger.Debugf("Opening local repository %q", job.Repository)
		//nolint:exhaustruct // Minimal PlainOpenOptions initialization with required fields only
		return gogit.PlainOpenWithOptions(job.Repository, &gogit.PlainOpenOptions{DetectDotGit: true})
	}

	logger.Infof("Cloning %q into memory", job.Repository)
	//nolint:exhaustruct // Minimal CloneOptions initialization with required fields only
	opts := &gogit.CloneOptions{
		URL:  job.Repository,
		Tags: gogit.AllTags,
	}
	if job.Token != "" {
		opts.Auth = &githttp.BasicAuth{
			Username: "oauth2",
			Password: job.Token,
		}
	}

	return gogit.CloneContext(ctx, memory.NewStorage(), nil, opts)
}

// cleanPath turns a configured descriptor path into a slash separated path
// relative to the repository root.
func cleanPath(p string) string {
	cleaned := path.Clean(filepath.ToSlash(strings.TrimSpace(p)))
	return strings.TrimPrefix(cleaned, "/")
}
