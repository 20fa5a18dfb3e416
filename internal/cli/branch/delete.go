package branch

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/cli"
)

// DeleteCmd returns the branch delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a branch",
		Long:  "Delete the branch with the given id. Fails while vehicles are still associated with it.",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.BranchService.DeleteBranch(ctx, id); err != nil {
		_ = formatter.ServiceError(err)
		return err
	}

	if jsonOutput {
		return formatter.Success(map[string]int{"id": id})
	}

	fmt.Printf("Deleted branch [%d]\n", id)
	return nil
}
