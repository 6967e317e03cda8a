package pom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// element is a minimal in-memory XML element: its local name, the character
// data placed directly under it, and its child elements in document order.
type element struct {
	name     string
	text     strings.Builder
	children []*element
}

// directText returns the trimmed character data that sits directly under the element.
func (it *element) directText() string {
	return strings.TrimSpace(it.text.String())
}

// descendants returns every element below it whose local name matches,
// in document order (pre-order walk).
func (it *element) descendants(name string) []*element {
	var found []*element
	for _, child := range it.children {
		if child.name == name {
			found = append(found, child)
		}
		found = append(found, child.descendants(name)...)
	}
	return found
}

// firstDescendant returns the first matching descendant, or nil.
func (it *element) firstDescendant(name string) *element {
	for _, child := range it.children {
		if child.name == name {
			return child
		}
		if nested := child.firstDescendant(name); nested != nil {
			return nested
		}
	}
	return nil
}

// xml11Prolog matches an XML 1.1 declaration, which encoding/xml refuses.
// Build server job configurations are commonly saved with it.
var xml11Prolog = regexp.MustCompile(`^(\s*<\?xml\s+version\s*=\s*["'])1\.1(["'])`)

// readDocument parses data into an element tree rooted at a synthetic
// document node. Namespaces are ignored and only local names are kept.
// Any well-formedness error is returned as a MalformedDocumentError.
func readDocument(data []byte) (*element, error) {
	data = xml11Prolog.ReplaceAll(data, []byte("${1}1.0${2}"))

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = true
	decoder.CharsetReader = charset.NewReaderLabel

	document := &element{}
	stack := []*element{document}
	hasRoot := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &entities.MalformedDocumentError{Err: err}
		}

		atTopLevel := len(stack) == 1
		switch tok := token.(type) {
		case xml.StartElement:
			if atTopLevel && hasRoot {
				return nil, &entities.MalformedDocumentError{
					Err: fmt.Errorf("unexpected element <%s> after the root element", tok.Name.Local),
				}
			}
			child := &element{name: tok.Name.Local}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, child)
			stack = append(stack, child)
			hasRoot = true
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if atTopLevel {
				if len(bytes.TrimSpace(tok)) > 0 {
					return nil, &entities.MalformedDocumentError{
						Err: errors.New("character data outside the root element"),
					}
				}
				continue
			}
			stack[len(stack)-1].text.Write(tok)
		}
	}

	if !hasRoot {
		return nil, &entities.MalformedDocumentError{Err: errors.New("document has no root element")}
	}
	if len(stack) > 1 {
		return nil, &entities.MalformedDocumentError{Err: io.ErrUnexpectedEOF}
	}

	return document, nil
}
