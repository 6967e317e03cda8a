package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// loadSettings reads the --config flag, auto-detecting the file when unset.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = entities.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w\nSpecify one with --config or create depdiff.yaml", err,
			)
		}
	}

	logger.Debugf("Using config file: %s", configPath)

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// applyVerbosity switches to debug logging when --verbose is set.
func applyVerbosity(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
}
