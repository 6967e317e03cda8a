package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/pom"
)

const (
	configFileName = "config.xml"
	buildsDirName  = "builds"
)

// FilesystemFactory returns the filesystem rooted at a job archive directory.
type FilesystemFactory func(dir string) billy.Filesystem

// SnapshotRepository reads descriptors from a job directory laid out as
//
//	<archive_dir>/config.xml                   job configuration (optional)
//	<archive_dir>/builds/<n>/<descriptor path>  descriptor archived by build n
type SnapshotRepository struct {
	filesystem FilesystemFactory
}

// NewSnapshotRepository creates a SnapshotRepository backed by the OS filesystem.
func NewSnapshotRepository() *SnapshotRepository {
	return NewSnapshotRepositoryWithFilesystem(func(dir string) billy.Filesystem {
		return osfs.New(dir)
	})
}

// NewSnapshotRepositoryWithFilesystem creates a SnapshotRepository using a custom filesystem.
func NewSnapshotRepositoryWithFilesystem(factory FilesystemFactory) *SnapshotRepository {
	return &SnapshotRepository{filesystem: factory}
}

// Name returns the source identifier of archive jobs.
func (it *SnapshotRepository) Name() string {
	return entities.SourceArchive
}

// ResolveDescriptorPath reads <rootPOM> from the job configuration. The
// configuration is Job.ConfigFile when set, config.xml of the archive otherwise.
// Without a usable configuration the job descriptor path is used.
func (it *SnapshotRepository) ResolveDescriptorPath(_ context.Context, job entities.Job) (string, error) {
	fs := it.filesystem(job.ArchiveDir)

	configPath := job.ConfigFile
	if configPath == "" {
		configPath = configFileName
	}

	data, err := readAll(fs, configPath)
	if errors.Is(err, os.ErrNotExist) && job.ConfigFile == "" {
		return cleanPath(job.DescriptorPath()), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read job configuration %q: %w", configPath, err)
	}

	rootPOM, err := pom.RootPOM(data)
	if errors.Is(err, pom.ErrRootPOMNotFound) {
		logger.Debugf("No rootPOM in %q, using %q", configPath, job.DescriptorPath())
		return cleanPath(job.DescriptorPath()), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to parse job configuration %q: %w", configPath, err)
	}

	return cleanPath(rootPOM), nil
}

// FetchDescriptor returns the descriptor archived under builds/<build>/.
func (it *SnapshotRepository) FetchDescriptor(
	_ context.Context,
	job entities.Job,
	descriptorPath string,
	build int,
) ([]byte, error) {
	fs := it.filesystem(job.ArchiveDir)
	buildDir := path.Join(buildsDirName, strconv.Itoa(build))

	if _, err := fs.Stat(buildDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: build #%d of job %q", entities.ErrBuildNotMapped, build, job.Name)
		}
		return nil, fmt.Errorf("failed to stat %q: %w", buildDir, err)
	}

	filePath := path.Join(buildDir, descriptorPath)
	data, err := readAll(fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q of build #%d: %w", descriptorPath, build, err)
	}

	logger.Debugf("Read %s of build #%d from %s", descriptorPath, build, fs.Join(job.ArchiveDir, filePath))
	return data, nil
}

func readAll(fs billy.Filesystem, name string) ([]byte, error) {
	file, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// cleanPath keeps descriptor paths relative to the build directory.
func cleanPath(p string) string {
	return strings.TrimPrefix(path.Clean(strings.TrimSpace(p)), "/")
}
