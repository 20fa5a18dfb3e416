// Package branch provides the branch subcommands.
package branch

import "github.com/spf13/cobra"

// Cmd returns the branch command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Manage branches",
		Long:  "Create, list, rename, and delete the branches that own fleet vehicles.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
