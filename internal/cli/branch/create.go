package branch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/cli"
)

// CreateCmd returns the branch create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a branch",
		Long:  "Create a branch with the given name. Names are trimmed and must be unique.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreate,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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

	created, err := cliInstance.App.BranchService.CreateBranch(ctx, args[0])
	if err != nil {
		_ = formatter.ServiceError(err)
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", created.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(created)
	}

	fmt.Printf("Created branch [%d] %s\n", created.ID, created.Name)
	return nil
}
