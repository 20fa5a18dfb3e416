package vehicle

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/cli"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

// UpdateCmd returns the vehicle update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a vehicle",
		Long:  "Partially update a vehicle: only the flags you set are written; every other field keeps its stored value.",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}

	cmd.Flags().Int("branch", 0, "Owning branch id")
	cmd.Flags().String("fleet-number", "", "Fleet number")
	addFieldFlags(cmd)
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		_ = formatter.Error("VALIDATION_ERROR", fmt.Sprintf("invalid vehicle id %q", args[0]))
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

	patch := models.VehiclePatch{
		BranchID:           intFlag(cmd, "branch"),
		FleetNumber:        stringFlag(cmd, "fleet-number"),
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
	}

	updated, err := cliInstance.App.VehicleService.UpdateVehicle(ctx, id, patch)
	if err != nil {
		_ = formatter.ServiceError(err)
		return err
	}

	if jsonOutput {
		return formatter.Success(updated)
	}

	fmt.Printf("Updated vehicle [%d] %s\n", updated.ID, updated.FleetNumber)
	return nil
}
