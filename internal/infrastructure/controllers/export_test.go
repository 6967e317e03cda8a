package controllers

import (
	"io"

	"github.com/rios0rios0/depdiff/internal/domain/commands"
)

// ParseCompareArgs exports parseCompareArgs for testing.
var ParseCompareArgs = parseCompareArgs //nolint:gochecknoglobals // test export

// DescribeJob exports describeJob for testing.
var DescribeJob = describeJob //nolint:gochecknoglobals // test export

// NewCompareControllerWithOutput creates a CompareController writing stdout reports to w.
func NewCompareControllerWithOutput(command commands.Compare, w io.Writer) *CompareController {
	return &CompareController{command: command, stdout: w}
}

// NewJobsControllerWithOutput creates a JobsController printing to w.
func NewJobsControllerWithOutput(w io.Writer) *JobsController {
	return &JobsController{stdout: w}
}
