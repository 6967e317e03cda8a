// Package report renders dependency diffs as HTML pages, terminal tables,
// or structured JSON and YAML exports.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

const (
	FormatHTML = "html"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned when a report format is not supported.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported report formats, the default first.
func Formats() []string {
	return []string{FormatHTML, FormatText, FormatJSON, FormatYAML}
}

// Render produces the report for the given format. An empty format means HTML.
func Render(
	format string,
	previous, current []entities.Dependency,
	diff entities.DiffResult,
	previousBuild, currentBuild int,
) (entities.Report, error) {
	if format == "" {
		format = FormatHTML
	}
	if !slices.Contains(Formats(), format) {
		return entities.Report{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	rep := entities.Report{
		Format:        format,
		FileName:      FileName(format),
		CurrentBuild:  currentBuild,
		PreviousBuild: previousBuild,
	}

	switch format {
	case FormatText:
		rep.ContentType = "text/plain; charset=utf-8"
		rep.Content = Text(previous, current, diff, previousBuild, currentBuild)
	case FormatJSON:
		data, err := json.MarshalIndent(newExportDocument(previous, diff, previousBuild, currentBuild), "", "  ")
		if err != nil {
			return entities.Report{}, fmt.Errorf("failed to encode json report: %w", err)
		}
		rep.ContentType = "application/json"
		rep.Content = string(data)
	case FormatYAML:
		data, err := yaml.Marshal(newExportDocument(previous, diff, previousBuild, currentBuild))
		if err != nil {
			return entities.Report{}, fmt.Errorf("failed to encode yaml report: %w", err)
		}
		rep.ContentType = "application/yaml"
		rep.Content = string(data)
	default:
		rep.ContentType = "text/html; charset=utf-8"
		rep.Content = HTML(previous, current, diff, previousBuild, currentBuild)
	}

	return rep, nil
}

// FileName returns the conventional file name of a report in the given format.
func FileName(format string) string {
	switch format {
	case FormatText:
		return "dependency_diff.txt"
	case FormatJSON:
		return "dependency_diff.json"
	case FormatYAML:
		return "dependency_diff.yaml"
	default:
		return entities.ReportFileName
	}
}
