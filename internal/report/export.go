package report

import (
	"github.com/rios0rios0/depdiff/internal/differ"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// exportEntry is a dependency as written by the structured formats.
type exportEntry struct {
	GroupID         string `json:"groupId"                   yaml:"groupId"`
	ArtifactID      string `json:"artifactId"                yaml:"artifactId"`
	Version         string `json:"version"                   yaml:"version"`
	PreviousVersion string `json:"previousVersion,omitempty" yaml:"previousVersion,omitempty"`
	PURL            string `json:"purl"                      yaml:"purl"`
}

// exportDocument is the structured representation of a dependency diff.
type exportDocument struct {
	CurrentBuild  int           `json:"currentBuild"  yaml:"currentBuild"`
	PreviousBuild int           `json:"previousBuild" yaml:"previousBuild"`
	Modified      []exportEntry `json:"modified"      yaml:"modified"`
	Added         []exportEntry `json:"added"         yaml:"added"`
	Deleted       []exportEntry `json:"deleted"       yaml:"deleted"`
}

func newExportDocument(
	previous []entities.Dependency,
	diff entities.DiffResult,
	previousBuild, currentBuild int,
) exportDocument {
	doc := exportDocument{
		CurrentBuild:  currentBuild,
		PreviousBuild: previousBuild,
		Modified:      make([]exportEntry, 0, len(diff.Modified)),
		Added:         toExportEntries(diff.Added),
		Deleted:       toExportEntries(diff.Deleted),
	}
	for _, dep := range diff.Modified {
		entry := toExportEntry(dep)
		entry.PreviousVersion = differ.PreviousVersion(previous, dep)
		doc.Modified = append(doc.Modified, entry)
	}
	return doc
}

func toExportEntries(deps []entities.Dependency) []exportEntry {
	entries := make([]exportEntry, 0, len(deps))
	for _, dep := range deps {
		entries = append(entries, toExportEntry(dep))
	}
	return entries
}

func toExportEntry(dep entities.Dependency) exportEntry {
	return exportEntry{
		GroupID:    dep.GroupID,
		ArtifactID: dep.ArtifactID,
		Version:    dep.Version,
		PURL:       dep.PackageURL(),
	}
}
