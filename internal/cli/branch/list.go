package branch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/cli"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

// ListCmd returns the branch list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all branches",
		Long:  "List all branches ordered by name.",
		RunE:  runList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	branches, err := cliInstance.App.BranchService.ListBranches(ctx)
	if err != nil {
		// Reads degrade to an empty listing; the diagnostic goes to the log.
		slog.Error("failed to fetch branches", "error", err)
		branches = []*models.Branch{}
	}

	if quietMode {
		for _, b := range branches {
			fmt.Printf("%d\n", b.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"branches": branches,
		})
	}

	if len(branches) == 0 {
		fmt.Println("No branches found")
		return nil
	}

	fmt.Printf("Found %d branches:\n\n", len(branches))
	for _, b := range branches {
		fmt.Printf("  [%d] %s\n", b.ID, b.Name)
	}

	return nil
}
