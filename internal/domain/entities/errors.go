package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrJobNotFound is returned when a job name is not present in the settings.
	ErrJobNotFound = errors.New("job not found")
	// ErrBuildNotMapped is returned when a build number has no known snapshot.
	ErrBuildNotMapped = errors.New("build is not mapped to a snapshot")
	// ErrSourceNotFound is returned when no snapshot repository serves a job source.
	ErrSourceNotFound = errors.New("unknown snapshot source")
)

// MalformedDocumentError is returned when a descriptor is not well-formed markup.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed descriptor document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a dependency element lacks one of
// groupId, artifactId or version. Position is 1-based in document order.
type MissingFieldError struct {
	Field    string
	Position int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("dependency #%d is missing required field %q", e.Position, e.Field)
}
