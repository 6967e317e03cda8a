package repositories

import (
	archiveRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/archive"
	gitRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/git"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register snapshot registry with every supported descriptor source
	if err := container.Provide(func() *SnapshotRegistry {
		reg := NewSnapshotRegistry()
		reg.Register(gitRepo.NewSnapshotRepository())
		reg.Register(archiveRepo.NewSnapshotRepository())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
