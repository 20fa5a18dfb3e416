// Package vehicle provides the vehicle subcommands.
package vehicle

import (
	"github.com/spf13/cobra"
)

// Cmd returns the vehicle command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Manage fleet vehicles",
		Long:  "Create, list, update, and delete fleet vehicles.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addFieldFlags registers the optional vehicle field flags shared by create
// and update.
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("registration", "", "Registration number")
	cmd.Flags().String("make", "", "Make")
	cmd.Flags().String("engine-model", "", "Engine model")
	cmd.Flags().String("vin", "", "VIN")
	cmd.Flags().Int("year", 0, "Manufacture year")
	cmd.Flags().String("year-details", "", "Year details")
	cmd.Flags().String("type", "", "Vehicle type")
	cmd.Flags().Float64("tare-kg", 0, "Tare weight (kg)")
	cmd.Flags().Float64("permission-weight", 0, "Permission weight")
	cmd.Flags().String("permission-unit", "", "Permission unit")
	cmd.Flags().Float64("volume-litres", 0, "Volume (litres)")
	cmd.Flags().Int("pallet-capacity", 0, "Pallet capacity")
	cmd.Flags().String("tyre-spec", "", "Tyre specification")
	cmd.Flags().Int("wheel-count", 0, "Wheel count")
	cmd.Flags().Float64("value-zar", 0, "Value (ZAR)")
	cmd.Flags().String("notes", "", "Notes (markdown)")
}

// Flag pointer helpers: only flags the user actually set become part of the
// write set, which is what makes partial updates possible from the CLI.

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}
