//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depdiff/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	groupID    string
	artifactID string
	version    string
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     "com.example",
		artifactID:  "test-artifact",
		version:     "1.0.0",
	}
}

// WithGroupID sets the group identifier.
func (b *DependencyBuilder) WithGroupID(groupID string) *DependencyBuilder {
	b.groupID = groupID
	return b
}

// WithArtifactID sets the artifact identifier.
func (b *DependencyBuilder) WithArtifactID(artifactID string) *DependencyBuilder {
	b.artifactID = artifactID
	return b
}

// WithVersion sets the version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.NewDependency(b.groupID, b.artifactID, b.version)
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = "com.example"
	b.artifactID = "test-artifact"
	b.version = "1.0.0"
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:     b.groupID,
		artifactID:  b.artifactID,
		version:     b.version,
	}
}

// Deps builds a dependency sequence from (groupId, artifactId, version) triples.
func Deps(triples ...[3]string) []entities.Dependency {
	deps := make([]entities.Dependency, 0, len(triples))
	for _, t := range triples {
		deps = append(deps, NewDependencyBuilder().
			WithGroupID(t[0]).
			WithArtifactID(t[1]).
			WithVersion(t[2]).
			BuildDependency())
	}
	return deps
}
