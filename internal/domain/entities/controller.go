package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra metadata a controller is mounted with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entrypoint bound to a Cobra subcommand. A returned
// error fails the subcommand with a non-zero exit status.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
