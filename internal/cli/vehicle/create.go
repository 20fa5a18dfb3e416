package vehicle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/cli"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

// CreateCmd returns the vehicle create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a vehicle",
		Long:  "Create a vehicle. --branch and --fleet-number are required; everything else is optional.",
		RunE:  runCreate,
	}

	cmd.Flags().Int("branch", 0, "Owning branch id (required)")
	cmd.Flags().String("fleet-number", "", "Fleet number (required)")
	addFieldFlags(cmd)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	_ = cmd.MarkFlagRequired("branch")
	_ = cmd.MarkFlagRequired("fleet-number")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	branchID, _ := cmd.Flags().GetInt("branch")
	fleetNumber, _ := cmd.Flags().GetString("fleet-number")

	// Field requiredness is this layer's job; the service trusts its caller.
	if branchID <= 0 {
		_ = formatter.Error("VALIDATION_ERROR", "a valid --branch id is required")
		return fmt.Errorf("invalid branch id %d", branchID)
	}
	if strings.TrimSpace(fleetNumber) == "" {
		_ = formatter.Error("VALIDATION_ERROR", "--fleet-number cannot be empty")
		return fmt.Errorf("empty fleet number")
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

	created, err := cliInstance.App.VehicleService.CreateVehicle(ctx, models.NewVehicle{
		BranchID:           branchID,
		FleetNumber:        fleetNumber,
		RegistrationNumber: stringFlag(cmd, "registration"),
		Make:               stringFlag(cmd, "make"),
		EngineModel:        stringFlag(cmd, "engine-model"),
		VIN:                stringFlag(cmd, "vin"),
		ManufactureYear:    intFlag(cmd, "year"),
		YearDetails:        stringFlag(cmd, "year-details"),
		VehicleType:        stringFlag(cmd, "type"),
		TareWeightKg:       floatFlag(cmd, "tare-kg"),
		PermissionWeight:   floatFlag(cmd, "permission-weight"),
		PermissionUnit:     stringFlag(cmd, "permission-unit"),
		VolumeLitres:       floatFlag(cmd, "volume-litres"),
		PalletCapacity:     intFlag(cmd, "pallet-capacity"),
		TyreSpecification:  stringFlag(cmd, "tyre-spec"),
		WheelCount:         intFlag(cmd, "wheel-count"),
		ValueZAR:           floatFlag(cmd, "value-zar"),
		Notes:              stringFlag(cmd, "notes"),
	})
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

	fmt.Printf("Created vehicle [%d] %s in branch %d\n", created.ID, created.FleetNumber, created.BranchID)
	return nil
}
