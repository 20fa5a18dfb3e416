package vehicle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/cli"
	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/tableview"
)

// ListCmd returns the vehicle list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		Long:  "List all vehicles, or the vehicles of one branch with --branch.",
		RunE:  runList,
	}

	cmd.Flags().Int("branch", 0, "Only vehicles of this branch id")
	cmd.Flags().String("filter", "", "Filter by fleet number (substring, case-insensitive)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	branchID, _ := cmd.Flags().GetInt("branch")
	filter, _ := cmd.Flags().GetString("filter")
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

	var vehicles []*models.Vehicle
	if branchID > 0 {
		vehicles, err = cliInstance.App.VehicleService.ListVehiclesByBranch(ctx, branchID)
	} else {
		vehicles, err = cliInstance.App.VehicleService.ListVehicles(ctx)
	}
	if err != nil {
		// Reads degrade to an empty listing; the diagnostic goes to the log.
		slog.Error("failed to fetch vehicles", "error", err, "branch_id", branchID)
		vehicles = []*models.Vehicle{}
	}

	// The same filter the dashboard table applies
	if filter != "" {
		state := tableview.NewViewState(len(vehicles) + 1)
		state.SetFilterText(filter)
		vehicles = tableview.Render(vehicles, state).VisibleRows
	}

	if quietMode {
		for _, v := range vehicles {
			fmt.Printf("%d\n", v.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"vehicles": vehicles,
		})
	}

	if len(vehicles) == 0 {
		fmt.Println("No vehicles found")
		return nil
	}

	fmt.Printf("Found %d vehicles:\n\n", len(vehicles))
	for _, v := range vehicles {
		fmt.Printf("  [%d] %s (branch %d)", v.ID, v.FleetNumber, v.BranchID)
		if v.RegistrationNumber != nil {
			fmt.Printf(" %s", *v.RegistrationNumber)
		}
		fmt.Println()
	}

	return nil
}
