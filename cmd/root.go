package cmd

import (
	"github.com/spf13/cobra"

	branchcmd "github.com/fleetdeck/fleetdeck/internal/cli/branch"
	vehiclecmd "github.com/fleetdeck/fleetdeck/internal/cli/vehicle"
)

var rootCmd = &cobra.Command{
	Use:   "fleetdeck",
	Short: "Fleetdeck - a terminal fleet dashboard",
	Long:  `Fleetdeck manages fleet vehicles and the branches that own them. Run without arguments for the dashboard, or use subcommands for scripting.`,
}

func init() {
	rootCmd.AddCommand(branchcmd.Cmd())
	rootCmd.AddCommand(vehiclecmd.Cmd())
}

// Execute runs the CLI command tree.
func Execute() error {
	return rootCmd.Execute()
}
