package entities

import (
	packageurl "github.com/package-url/packageurl-go"
)

// Dependency represents a direct dependency declared in a project descriptor.
// GroupID and ArtifactID form its identity; Version is payload.
type Dependency struct {
	GroupID    string `json:"groupId"    yaml:"groupId"`
	ArtifactID string `json:"artifactId" yaml:"artifactId"`
	Version    string `json:"version"    yaml:"version"`
}

// NewDependency creates a Dependency from its three fields.
func NewDependency(groupID, artifactID, version string) Dependency {
	return Dependency{GroupID: groupID, ArtifactID: artifactID, Version: version}
}

// Identity returns the "group:artifact" coordinate of the dependency.
func (it Dependency) Identity() string {
	return it.GroupID + ":" + it.ArtifactID
}

// SameIdentity reports whether both dependencies share group and artifact IDs.
func (it Dependency) SameIdentity(other Dependency) bool {
	return it.GroupID == other.GroupID && it.ArtifactID == other.ArtifactID
}

// PackageURL returns the Maven purl of the dependency, e.g.
// pkg:maven/com.google.code.gson/gson@2.2.
func (it Dependency) PackageURL() string {
	purl := packageurl.NewPackageURL(
		packageurl.TypeMaven, it.GroupID, it.ArtifactID, it.Version, nil, "",
	)
	return purl.ToString()
}
