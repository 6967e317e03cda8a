package report

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/depdiff/internal/differ"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

const htmlHead = `<!DOCTYPE html><html>
<head>
<title></title>
<style type="text/css">
.left { width: 30%; float: left; clear: right; background-color: #BCF5A9; }
.center { width: 30%; float: left; clear: right; background-color: #81DAF5; }
.right { width: 30%; float: left; clear: right; background-color: #FA5858; }
.both { width: 100%; clear: both; background-color: #696969; }
</style>
</head>
`

const entrySeparator = "<hr>\n<br />\n"

// HTML renders a standalone page with the modified, added and deleted
// dependencies side by side. Modified entries already carry the current
// version, so only previous is consulted. Field values are written verbatim, without
// HTML escaping, so the page must only be shown for trusted descriptors.
func HTML(
	previous, _ []entities.Dependency,
	diff entities.DiffResult,
	previousBuild, currentBuild int,
) string {
	var html strings.Builder
	html.WriteString(htmlHead)
	html.WriteString("<body>\n")
	html.WriteString("<div>\n")
	fmt.Fprintf(&html,
		"<div><p><b><font size=\"3\">Comparing the current build #%d and build #%d</font></b></p>",
		currentBuild, previousBuild,
	)

	html.WriteString("<div class=\"left\">\n")
	html.WriteString("<b>Dependency modified:</b><br />\n")
	for _, dep := range diff.Modified {
		writeIdentity(&html, dep)
		fmt.Fprintf(&html, "<br> build #%d dependency version: %s</br>\n", currentBuild, dep.Version)
		fmt.Fprintf(&html, "<br> build #%d dependency version: %s",
			previousBuild, differ.PreviousVersion(previous, dep))
		html.WriteString(entrySeparator)
	}
	html.WriteString("</div>\n")

	html.WriteString("<div class=\"center\">\n")
	fmt.Fprintf(&html, "<b>Dependency added to build #%d</b><br />\n", currentBuild)
	writeEntries(&html, diff.Added)
	html.WriteString("</div>\n")

	html.WriteString("<div class=\"right\">\n")
	fmt.Fprintf(&html, "<b>Dependency deleted from build #%d</b><br />\n", previousBuild)
	writeEntries(&html, diff.Deleted)
	html.WriteString("</div>\n")

	html.WriteString("</div>\n")
	html.WriteString("</body>\n")
	html.WriteString("</html>")
	return html.String()
}

func writeIdentity(html *strings.Builder, dep entities.Dependency) {
	fmt.Fprintf(html, "<br> groupId: %s</br>\n", dep.GroupID)
	fmt.Fprintf(html, "<br> artifactId: %s</br>\n", dep.ArtifactID)
}

func writeEntries(html *strings.Builder, deps []entities.Dependency) {
	for _, dep := range deps {
		writeIdentity(html, dep)
		fmt.Fprintf(html, "<br> version: %s</br>\n", dep.Version)
		html.WriteString(entrySeparator)
	}
}
