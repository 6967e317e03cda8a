package controllers

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// JobsController handles the "jobs" subcommand.
type JobsController struct {
	stdout io.Writer
}

// NewJobsController creates a new JobsController.
func NewJobsController() *JobsController {
	return &JobsController{stdout: os.Stdout}
}

// GetBind returns the Cobra command metadata for the jobs controller.
func (it *JobsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "jobs",
		Short: "List the configured jobs",
		Long:  `List the jobs of the config file with their source, descriptor and mapped builds.`,
	}
}

// Execute prints one line per configured job.
func (it *JobsController) Execute(cmd *cobra.Command, _ []string) error {
	applyVerbosity(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	for _, job := range settings.Jobs {
		if _, writeErr := fmt.Fprintln(it.stdout, describeJob(job)); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

func describeJob(job entities.Job) string {
	line := fmt.Sprintf("%s\t%s\t%s", job.Name, job.Source, job.DescriptorPath())
	if len(job.Builds) == 0 {
		return line
	}

	builds := make([]int, 0, len(job.Builds))
	for build := range job.Builds {
		builds = append(builds, build)
	}
	slices.Sort(builds)

	labels := make([]string, 0, len(builds))
	for _, build := range builds {
		labels = append(labels, fmt.Sprintf("#%d=%s", build, job.Builds[build]))
	}
	return line + "\t" + strings.Join(labels, " ")
}
