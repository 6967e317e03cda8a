package pom

import (
	"errors"
)

const rootPOMTag = "rootPOM"

// ErrRootPOMNotFound is returned when a job configuration declares no descriptor path.
var ErrRootPOMNotFound = errors.New("rootPOM not found in job configuration")

// RootPOM returns the descriptor path declared by the first <rootPOM>
// element of a job configuration document.
func RootPOM(configXML []byte) (string, error) {
	document, err := readDocument(configXML)
	if err != nil {
		return "", err
	}

	elem := document.firstDescendant(rootPOMTag)
	if elem == nil || elem.directText() == "" {
		return "", ErrRootPOMNotFound
	}
	return elem.directText(), nil
}
