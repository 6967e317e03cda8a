// Package server exposes dependency diff reports over HTTP.
package server

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdiff/internal/domain/commands"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/report"
)

// jobView is the JSON shape of a configured job.
type jobView struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Descriptor string `json:"descriptor"`
	Builds     []int  `json:"builds,omitempty"`
}

// exportView mirrors the report export callbacks: the file name the report
// is conventionally stored under and the HTML page itself.
type exportView struct {
	FileName string `json:"fileName"`
	HTML     string `json:"html"`
}

// NewFiberApp creates the Fiber app serving reports for the configured jobs.
func NewFiberApp(compare commands.Compare, settings *entities.Settings) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "depdiff",
		ReadTimeout:           60 * time.Second, //nolint:mnd // seconds
		DisableStartupMessage: true,
	})

	app.Use(fiberrecover.New())
	app.Use(fiberlogger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	app.Get("/jobs", listJobs(settings))
	app.Get("/jobs/:job/dependencyDiff", dependencyDiff(compare, settings))
	app.Get("/jobs/:job/dependencyDiff/export", exportDependencyDiff(compare, settings))

	return app
}

func listJobs(settings *entities.Settings) fiber.Handler {
	return func(c *fiber.Ctx) error {
		views := make([]jobView, 0, len(settings.Jobs))
		for _, job := range settings.Jobs {
			views = append(views, newJobView(job))
		}
		return c.JSON(views)
	}
}

func dependencyDiff(compare commands.Compare, settings *entities.Settings) fiber.Handler {
	return func(c *fiber.Ctx) error {
		opts, err := compareOptions(c, c.Query("format", report.FormatHTML))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, err)
		}

		rep, err := compare.Execute(c.UserContext(), settings, opts)
		if err != nil {
			return writeError(c, statusFor(err), err)
		}

		c.Set(fiber.HeaderContentType, rep.ContentType)
		return c.SendString(rep.Content)
	}
}

func exportDependencyDiff(compare commands.Compare, settings *entities.Settings) fiber.Handler {
	return func(c *fiber.Ctx) error {
		opts, err := compareOptions(c, report.FormatHTML)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, err)
		}

		rep, err := compare.Execute(c.UserContext(), settings, opts)
		if err != nil {
			return writeError(c, statusFor(err), err)
		}

		return c.JSON(exportView{FileName: rep.FileName, HTML: rep.Content})
	}
}

// compareOptions reads the job path parameter and the build query parameters.
func compareOptions(c *fiber.Ctx, format string) (commands.CompareOptions, error) {
	current, err := buildNumber(c, "current")
	if err != nil {
		return commands.CompareOptions{}, err
	}
	previous, err := buildNumber(c, "previous")
	if err != nil {
		return commands.CompareOptions{}, err
	}

	return commands.CompareOptions{
		Job:           c.Params("job"),
		CurrentBuild:  current,
		PreviousBuild: previous,
		Format:        format,
	}, nil
}

func buildNumber(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, errors.New("query parameter \"" + key + "\" is required")
	}
	number, err := strconv.Atoi(raw)
	if err != nil || number < 0 {
		return 0, errors.New("query parameter \"" + key + "\" must be a build number")
	}
	return number, nil
}

// statusFor maps comparison failures to HTTP status codes.
func statusFor(err error) int {
	var malformed *entities.MalformedDocumentError
	var missing *entities.MissingFieldError

	switch {
	case errors.Is(err, entities.ErrJobNotFound), errors.Is(err, entities.ErrBuildNotMapped):
		return fiber.StatusNotFound
	case errors.Is(err, report.ErrUnknownFormat):
		return fiber.StatusBadRequest
	case errors.As(err, &malformed), errors.As(err, &missing):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, status int, err error) error {
	if status >= fiber.StatusInternalServerError {
		logger.Errorf("%s %s failed: %v", c.Method(), c.OriginalURL(), err)
	} else {
		logger.Debugf("%s %s rejected: %v", c.Method(), c.OriginalURL(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func newJobView(job entities.Job) jobView {
	view := jobView{
		Name:       job.Name,
		Source:     job.Source,
		Descriptor: job.DescriptorPath(),
	}
	for build := range job.Builds {
		view.Builds = append(view.Builds, build)
	}
	slices.Sort(view.Builds)
	return view
}
