// Package pom extracts the declared dependencies of a Maven project
// descriptor and the descriptor location from a job configuration.
package pom

import (
	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

const (
	dependencyTag = "dependency"
	groupIDTag    = "groupId"
	artifactIDTag = "artifactId"
	versionTag    = "version"
)

// Parse returns every dependency element of the descriptor in document order.
// Each dependency takes the first groupId, artifactId and version found below
// it; a missing or empty one fails the whole parse with a MissingFieldError.
// Duplicated identities are kept as they appear.
func Parse(data []byte) ([]entities.Dependency, error) {
	document, err := readDocument(data)
	if err != nil {
		return nil, err
	}

	elements := document.descendants(dependencyTag)
	dependencies := make([]entities.Dependency, 0, len(elements))
	for i, elem := range elements {
		dependency, fieldErr := readDependency(elem, i+1)
		if fieldErr != nil {
			return nil, fieldErr
		}
		dependencies = append(dependencies, dependency)
	}

	return dependencies, nil
}

// readDependency reads the three required fields of a dependency element.
func readDependency(elem *element, position int) (entities.Dependency, error) {
	values := make(map[string]string, 3) //nolint:mnd // group, artifact, version
	for _, field := range []string{groupIDTag, artifactIDTag, versionTag} {
		child := elem.firstDescendant(field)
		if child == nil || child.directText() == "" {
			return entities.Dependency{}, &entities.MissingFieldError{Field: field, Position: position}
		}
		values[field] = child.directText()
	}

	return entities.NewDependency(values[groupIDTag], values[artifactIDTag], values[versionTag]), nil
}
