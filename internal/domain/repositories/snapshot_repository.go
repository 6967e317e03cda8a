package repositories

import (
	"context"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// SnapshotRepository abstracts where the historical descriptors of a job live
// (a git history, an archive of build directories, etc.).
type SnapshotRepository interface {
	// Name returns the source identifier matched against Job.Source (e.g. "git").
	Name() string

	// ResolveDescriptorPath returns the path of the descriptor tracked for the job.
	ResolveDescriptorPath(ctx context.Context, job entities.Job) (string, error)

	// FetchDescriptor returns the descriptor content as it existed at the given build.
	FetchDescriptor(ctx context.Context, job entities.Job, path string, build int) ([]byte, error)
}
