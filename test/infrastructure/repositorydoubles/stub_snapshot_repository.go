//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

// SpySnapshotRepository implements repositories.SnapshotRepository as a configurable spy.
type SpySnapshotRepository struct {
	// --- identity ---
	SourceName string

	// --- ResolveDescriptorPath ---
	DescriptorPath string
	ResolveErr     error
	ResolvedJobs   []entities.Job

	// --- FetchDescriptor ---
	Snapshots     map[int]string // build -> descriptor content
	FetchErr      error
	FetchedBuilds []int
	FetchedPaths  []string
}

var _ repositories.SnapshotRepository = (*SpySnapshotRepository)(nil)

func (s *SpySnapshotRepository) Name() string { return s.SourceName }

func (s *SpySnapshotRepository) ResolveDescriptorPath(_ context.Context, job entities.Job) (string, error) {
	s.ResolvedJobs = append(s.ResolvedJobs, job)
	if s.ResolveErr != nil {
		return "", s.ResolveErr
	}
	if s.DescriptorPath == "" {
		return entities.DefaultDescriptor, nil
	}
	return s.DescriptorPath, nil
}

func (s *SpySnapshotRepository) FetchDescriptor(
	_ context.Context, _ entities.Job, path string, build int,
) ([]byte, error) {
	s.FetchedBuilds = append(s.FetchedBuilds, build)
	s.FetchedPaths = append(s.FetchedPaths, path)
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	content, ok := s.Snapshots[build]
	if !ok {
		return nil, fmt.Errorf("%w: build #%d", entities.ErrBuildNotMapped, build)
	}
	return []byte(content), nil
}

// DummySnapshotRepository is a no-op implementation of repositories.SnapshotRepository.
type DummySnapshotRepository struct{}

var _ repositories.SnapshotRepository = (*DummySnapshotRepository)(nil)

func (d *DummySnapshotRepository) Name() string { return "dummy" }

func (d *DummySnapshotRepository) ResolveDescriptorPath(_ context.Context, _ entities.Job) (string, error) {
	return entities.DefaultDescriptor, nil
}

func (d *DummySnapshotRepository) FetchDescriptor(
	_ context.Context, _ entities.Job, _ string, _ int,
) ([]byte, error) {
	return nil, nil
}
