package controllers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdiff/internal/domain/commands"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/infrastructure/server"
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	command commands.Compare
}

// NewServeController creates a new ServeController.
func NewServeController(command commands.Compare) *ServeController {
	return &ServeController{command: command}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Serve dependency diff reports over HTTP",
		Long: `Start an HTTP server that renders dependency diff reports on demand.

Routes:
  GET /jobs
  GET /jobs/{job}/dependencyDiff?current=N&previous=M[&format=html|text|json|yaml]
  GET /jobs/{job}/dependencyDiff/export?current=N&previous=M`,
	}
}

// Execute starts the server and blocks until it is interrupted.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) error {
	applyVerbosity(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = settings.Server.Addr
	}

	app := server.NewFiberApp(it.command, settings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		if shutdownErr := app.Shutdown(); shutdownErr != nil {
			logger.Errorf("Failed to shut down server: %v", shutdownErr)
		}
	}()

	logger.Infof("Serving %d job(s) on %s", len(settings.Jobs), addr)
	if listenErr := app.Listen(addr); listenErr != nil {
		return fmt.Errorf("server stopped: %w", listenErr)
	}
	return nil
}

// AddFlags adds the serve-specific flags to the given Cobra command.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "Listen address (default: server.addr from config, or :8080)")
}
