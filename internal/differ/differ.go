// Package differ classifies the dependencies of two descriptor snapshots
// into added, deleted and modified buckets.
package differ

import (
	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// MissingVersion is reported as the previous version of a dependency that
// has no identity match in the previous snapshot.
const MissingVersion = "0"

// Diff compares current against previous by (groupId, artifactId) identity.
//
// Behaviour:
//   - A current entry without an identity match in previous is Added.
//   - A current entry is appended to Modified once for every previous entry
//     that shares its identity but not its version. Duplicated identities in
//     previous therefore yield repeated Modified entries.
//   - A previous entry without an identity match in current is Deleted.
//
// Versions are compared as plain strings. Buckets are never nil.
func Diff(previous, current []entities.Dependency) entities.DiffResult {
	result := entities.DiffResult{
		Added:    []entities.Dependency{},
		Deleted:  []entities.Dependency{},
		Modified: []entities.Dependency{},
	}

	for _, dep := range current {
		matched := false
		for _, prev := range previous {
			if !prev.SameIdentity(dep) {
				continue
			}
			matched = true
			if prev.Version != dep.Version {
				result.Modified = append(result.Modified, dep)
			}
		}
		if !matched {
			result.Added = append(result.Added, dep)
		}
	}

	for _, prev := range previous {
		if !containsIdentity(current, prev) {
			result.Deleted = append(result.Deleted, prev)
		}
	}

	return result
}

// PreviousVersion returns the version held by the first entry of previous
// sharing the identity of dep, or MissingVersion when there is none.
func PreviousVersion(previous []entities.Dependency, dep entities.Dependency) string {
	for _, prev := range previous {
		if prev.SameIdentity(dep) {
			return prev.Version
		}
	}
	return MissingVersion
}

func containsIdentity(deps []entities.Dependency, target entities.Dependency) bool {
	for _, dep := range deps {
		if dep.SameIdentity(target) {
			return true
		}
	}
	return false
}
