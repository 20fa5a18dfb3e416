package branch

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/cli"
)

// UpdateCmd returns the branch update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a branch",
		Long:  "Rename the branch with the given id. The new name must be unique.",
		Args:  cobra.ExactArgs(2),
		RunE:  runUpdate,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		_ = formatter.Error("VALIDATION_ERROR", fmt.Sprintf("invalid branch id %q", args[0]))
		return err
	}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	updated, err := cliInstance.App.BranchService.UpdateBranch(ctx, id, args[1])
	if err != nil {
		_ = formatter.ServiceError(err)
		return err
	}

	if jsonOutput {
		return formatter.Success(updated)
	}

	fmt.Printf("Renamed branch [%d] to %s\n", updated.ID, updated.Name)
	return nil
}
