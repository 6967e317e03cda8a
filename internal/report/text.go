package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rios0rios0/depdiff/internal/differ"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// Text renders the diff as terminal tables, one per bucket, in the same
// order and with the same titles as the HTML page.
func Text(
	previous, _ []entities.Dependency,
	diff entities.DiffResult,
	previousBuild, currentBuild int,
) string {
	titleStyle := lipgloss.NewStyle().Bold(true)

	var out strings.Builder
	fmt.Fprintln(&out, titleStyle.Render(
		fmt.Sprintf("Comparing the current build #%d and build #%d", currentBuild, previousBuild),
	))

	modifiedRows := make([][]string, 0, len(diff.Modified))
	for _, dep := range diff.Modified {
		modifiedRows = append(modifiedRows, []string{
			dep.GroupID, dep.ArtifactID, dep.Version, differ.PreviousVersion(previous, dep),
		})
	}
	writeTable(&out, titleStyle, "Dependency modified:", []string{
		"groupId",
		"artifactId",
		fmt.Sprintf("build #%d", currentBuild),
		fmt.Sprintf("build #%d", previousBuild),
	}, modifiedRows)

	writeTable(&out, titleStyle, fmt.Sprintf("Dependency added to build #%d", currentBuild),
		[]string{"groupId", "artifactId", "version"}, plainRows(diff.Added))

	writeTable(&out, titleStyle, fmt.Sprintf("Dependency deleted from build #%d", previousBuild),
		[]string{"groupId", "artifactId", "version"}, plainRows(diff.Deleted))

	return out.String()
}

func plainRows(deps []entities.Dependency) [][]string {
	rows := make([][]string, 0, len(deps))
	for _, dep := range deps {
		rows = append(rows, []string{dep.GroupID, dep.ArtifactID, dep.Version})
	}
	return rows
}

func writeTable(out *strings.Builder, titleStyle lipgloss.Style, title string, headers []string, rows [][]string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render(title))

	if len(rows) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Align(lipgloss.Left).PaddingRight(1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(out, t)
}
