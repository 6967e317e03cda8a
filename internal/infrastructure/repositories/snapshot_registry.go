package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depdiff/internal/domain/repositories"
)

// SnapshotRegistry manages all registered snapshot repositories by source name.
type SnapshotRegistry struct {
	repositories map[string]domainRepos.SnapshotRepository
}

// NewSnapshotRegistry creates an empty snapshot registry.
func NewSnapshotRegistry() *SnapshotRegistry {
	return &SnapshotRegistry{
		repositories: make(map[string]domainRepos.SnapshotRepository),
	}
}

// Register adds a snapshot repository under its name.
func (r *SnapshotRegistry) Register(repo domainRepos.SnapshotRepository) {
	r.repositories[repo.Name()] = repo
}

// Get returns the snapshot repository serving the given source.
func (r *SnapshotRegistry) Get(source string) (domainRepos.SnapshotRepository, error) {
	repo, ok := r.repositories[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrSourceNotFound, source)
	}
	return repo, nil
}

// Names returns the sorted list of registered source names.
func (r *SnapshotRegistry) Names() []string {
	names := make([]string, 0, len(r.repositories))
	for name := range r.repositories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
