package huhforms

import (
	"testing"

	"github.com/fleetdeck/fleetdeck/internal/models"
)

func TestToNewVehicleParsesNumericFields(t *testing.T) {
	values := VehicleValues{
		BranchID:        3,
		FleetNumber:     "  F12 ",
		Make:            "Isuzu",
		ManufactureYear: "2019",
		TareWeightKg:    "3500.5",
		WheelCount:      " 6 ",
	}

	nv, err := values.ToNewVehicle()
	if err != nil {
		t.Fatalf("ToNewVehicle failed: %v", err)
	}
	if nv.BranchID != 3 {
		t.Errorf("Expected branch 3, got %d", nv.BranchID)
	}
	if nv.FleetNumber != "F12" {
		t.Errorf("Expected trimmed fleet number, got %q", nv.FleetNumber)
	}
	if nv.Make == nil || *nv.Make != "Isuzu" {
		t.Errorf("Expected make Isuzu, got %v", nv.Make)
	}
	if nv.ManufactureYear == nil || *nv.ManufactureYear != 2019 {
		t.Errorf("Expected year 2019, got %v", nv.ManufactureYear)
	}
	if nv.TareWeightKg == nil || *nv.TareWeightKg != 3500.5 {
		t.Errorf("Expected tare 3500.5, got %v", nv.TareWeightKg)
	}
	if nv.WheelCount == nil || *nv.WheelCount != 6 {
		t.Errorf("Expected 6 wheels, got %v", nv.WheelCount)
	}
	if nv.VIN != nil || nv.Notes != nil {
		t.Errorf("Blank fields must stay nil: vin=%v notes=%v", nv.VIN, nv.Notes)
	}
}

func TestToNewVehicleRejectsBadNumbers(t *testing.T) {
	values := VehicleValues{BranchID: 1, FleetNumber: "F1", ManufactureYear: "soon"}
	if _, err := values.ToNewVehicle(); err == nil {
		t.Error("Expected error for non-numeric year")
	}

	values = VehicleValues{BranchID: 1, FleetNumber: "F1", ValueZAR: "lots"}
	if _, err := values.ToNewVehicle(); err == nil {
		t.Error("Expected error for non-numeric value")
	}
}

func TestVehicleValuesRoundTrip(t *testing.T) {
	reg := "CA 123-456"
	year := 2019
	tare := 3500.5

	v := &models.Vehicle{
		ID:                 7,
		BranchID:           2,
		FleetNumber:        "F7",
		RegistrationNumber: &reg,
		ManufactureYear:    &year,
		TareWeightKg:       &tare,
	}

	values := VehicleValuesFrom(v)
	if values.BranchID != 2 || values.FleetNumber != "F7" {
		t.Errorf("Identity fields lost: %+v", values)
	}
	if values.ManufactureYear != "2019" || values.TareWeightKg != "3500.5" {
		t.Errorf("Numeric fields not stringified: %+v", values)
	}

	patch, err := values.ToPatch()
	if err != nil {
		t.Fatalf("ToPatch failed: %v", err)
	}
	if patch.BranchID == nil || *patch.BranchID != 2 {
		t.Errorf("Expected branch in patch, got %v", patch.BranchID)
	}
	if patch.RegistrationNumber == nil || *patch.RegistrationNumber != reg {
		t.Errorf("Expected registration in patch, got %v", patch.RegistrationNumber)
	}
	if patch.ManufactureYear == nil || *patch.ManufactureYear != 2019 {
		t.Errorf("Expected year in patch, got %v", patch.ManufactureYear)
	}
	if patch.Make != nil {
		t.Errorf("Unset make should stay nil in patch, got %v", patch.Make)
	}
}
