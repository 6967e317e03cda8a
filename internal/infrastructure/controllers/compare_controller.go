package controllers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdiff/internal/domain/commands"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/report"
)

const stdoutPath = "-"

// CompareController handles the "compare" subcommand.
type CompareController struct {
	command commands.Compare
	stdout  io.Writer
}

// NewCompareController creates a new CompareController.
func NewCompareController(command commands.Compare) *CompareController {
	return &CompareController{command: command, stdout: os.Stdout}
}

// GetBind returns the Cobra command metadata for the compare controller.
func (it *CompareController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "compare <job> <current-build> <previous-build>",
		Short: "Compare the dependencies of two builds of a job",
		Long: `Compare the dependencies declared in the project descriptor (pom.xml)
of two builds of the same job and write a report of what was modified,
added and deleted.

The HTML report is written to dependency_diff.html unless --output is set.
Use --output - to print the report to stdout.`,
	}
}

// Execute runs one comparison and writes the report.
func (it *CompareController) Execute(cmd *cobra.Command, args []string) error {
	applyVerbosity(cmd)

	opts, err := parseCompareArgs(args)
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	opts.Format, _ = cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	rep, err := it.command.Execute(context.Background(), settings, opts)
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	if writeErr := it.writeReport(rep, output); writeErr != nil {
		return fmt.Errorf("failed to write report: %w", writeErr)
	}
	return nil
}

// AddFlags adds the compare-specific flags to the given Cobra command.
func (it *CompareController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", report.FormatHTML,
		fmt.Sprintf("Report format (%s)", strings.Join(report.Formats(), ", ")))
	cmd.Flags().StringP("output", "o", "",
		"Report destination, '-' for stdout (default: dependency_diff.<format>)")
}

func (it *CompareController) writeReport(rep *entities.Report, output string) error {
	if output == stdoutPath {
		_, err := io.WriteString(it.stdout, rep.Content)
		return err
	}

	if output == "" {
		output = rep.FileName
	}
	if err := os.WriteFile(output, []byte(rep.Content), 0o644); err != nil { //nolint:gosec,mnd // report is not sensitive
		return err
	}

	logger.Infof("Report written to %s", output)
	return nil
}

// parseCompareArgs reads the job name and the two build numbers.
func parseCompareArgs(args []string) (commands.CompareOptions, error) {
	if len(args) != 3 { //nolint:mnd // job, current, previous
		return commands.CompareOptions{}, fmt.Errorf(
			"expected <job> <current-build> <previous-build>, got %d argument(s)", len(args),
		)
	}

	current, err := strconv.Atoi(args[1])
	if err != nil {
		return commands.CompareOptions{}, fmt.Errorf("current build %q is not a number", args[1])
	}
	previous, err := strconv.Atoi(args[2])
	if err != nil {
		return commands.CompareOptions{}, fmt.Errorf("previous build %q is not a number", args[2])
	}

	return commands.CompareOptions{
		Job:           args[0],
		CurrentBuild:  current,
		PreviousBuild: previous,
	}, nil
}
