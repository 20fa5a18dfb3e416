package database

import (
	"context"
	"testing"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

func strPtrT(s string) *string    { return &s }
func intPtrT(n int) *int          { return &n }
func floatPtrT(f float64) *float64 { return &f }

func createTestBranch(t *testing.T, repo *Repository, name string) *models.Branch {
	t.Helper()
	branch, err := repo.InsertBranch(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create branch %s: %v", name, err)
	}
	return branch
}

func TestVehicleLifecycle(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	branch := createTestBranch(t, repo, "Cape Town")

	created, err := repo.InsertVehicle(ctx, models.NewVehicle{
		BranchID:           branch.ID,
		FleetNumber:        "F12",
		RegistrationNumber: strPtrT("CA 123-456"),
		Make:               strPtrT("Isuzu"),
		ManufactureYear:    intPtrT(2019),
		TareWeightKg:       floatPtrT(3500.5),
		WheelCount:         intPtrT(6),
		Notes:              strPtrT("Serviced in March."),
	})
	if err != nil {
		t.Fatalf("Failed to insert vehicle: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("Expected positive id, got %d", created.ID)
	}
	if created.FleetNumber != "F12" {
		t.Errorf("Expected fleet number F12, got %q", created.FleetNumber)
	}
	if created.Make == nil || *created.Make != "Isuzu" {
		t.Errorf("Expected make Isuzu, got %v", created.Make)
	}
	if created.ManufactureYear == nil || *created.ManufactureYear != 2019 {
		t.Errorf("Expected year 2019, got %v", created.ManufactureYear)
	}
	if created.TareWeightKg == nil || *created.TareWeightKg != 3500.5 {
		t.Errorf("Expected tare 3500.5, got %v", created.TareWeightKg)
	}
	if created.VIN != nil {
		t.Errorf("Expected unset VIN to stay nil, got %v", created.VIN)
	}

	if err := repo.DeleteVehicle(ctx, created.ID); err != nil {
		t.Fatalf("Failed to delete vehicle: %v", err)
	}
	vehicles, err := repo.GetAllVehicles(ctx)
	if err != nil {
		t.Fatalf("Failed to list vehicles: %v", err)
	}
	if len(vehicles) != 0 {
		t.Errorf("Expected no vehicles after delete, got %d", len(vehicles))
	}
}

func TestUpdateVehiclePreservesUntouchedFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	branch := createTestBranch(t, repo, "Durban")

	created, err := repo.InsertVehicle(ctx, models.NewVehicle{
		BranchID:        branch.ID,
		FleetNumber:     "F1",
		Make:            strPtrT("Scania"),
		ManufactureYear: intPtrT(2015),
	})
	if err != nil {
		t.Fatalf("Failed to insert vehicle: %v", err)
	}

	updated, err := repo.UpdateVehicle(ctx, created.ID, models.VehiclePatch{
		RegistrationNumber: strPtrT("ND 777-888"),
	})
	if err != nil {
		t.Fatalf("Failed to update vehicle: %v", err)
	}
	if updated == nil {
		t.Fatal("Expected updated vehicle, got nil")
	}
	if updated.RegistrationNumber == nil || *updated.RegistrationNumber != "ND 777-888" {
		t.Errorf("Expected patched registration, got %v", updated.RegistrationNumber)
	}
	if updated.Make == nil || *updated.Make != "Scania" {
		t.Errorf("Untouched make changed: %v", updated.Make)
	}
	if updated.ManufactureYear == nil || *updated.ManufactureYear != 2015 {
		t.Errorf("Untouched year changed: %v", updated.ManufactureYear)
	}
	if updated.FleetNumber != "F1" {
		t.Errorf("Untouched fleet number changed: %q", updated.FleetNumber)
	}
}

func TestUpdateVehicleMissingIsNil(t *testing.T) {
	repo := setupTestRepo(t)

	vehicle, err := repo.UpdateVehicle(context.Background(), 404, models.VehiclePatch{
		Make: strPtrT("Ghost"),
	})
	if err != nil {
		t.Fatalf("Expected no error for missing vehicle, got: %v", err)
	}
	if vehicle != nil {
		t.Errorf("Expected nil for missing vehicle, got %+v", vehicle)
	}
}

func TestGetVehiclesByBranchScopesRows(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	capeTown := createTestBranch(t, repo, "Cape Town")
	durban := createTestBranch(t, repo, "Durban")

	for _, fn := range []string{"F1", "F2"} {
		if _, err := repo.InsertVehicle(ctx, models.NewVehicle{BranchID: capeTown.ID, FleetNumber: fn}); err != nil {
			t.Fatalf("Failed to insert %s: %v", fn, err)
		}
	}
	if _, err := repo.InsertVehicle(ctx, models.NewVehicle{BranchID: durban.ID, FleetNumber: "D1"}); err != nil {
		t.Fatalf("Failed to insert D1: %v", err)
	}

	scoped, err := repo.GetVehiclesByBranch(ctx, capeTown.ID)
	if err != nil {
		t.Fatalf("Failed to list by branch: %v", err)
	}
	if len(scoped) != 2 {
		t.Errorf("Expected 2 vehicles in Cape Town, got %d", len(scoped))
	}
	for _, v := range scoped {
		if v.BranchID != capeTown.ID {
			t.Errorf("Vehicle %s belongs to branch %d, expected %d", v.FleetNumber, v.BranchID, capeTown.ID)
		}
	}
}

func TestHasVehiclesInBranch(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	branch := createTestBranch(t, repo, "Polokwane")

	has, err := repo.HasVehiclesInBranch(ctx, branch.ID)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if has {
		t.Error("Expected empty branch to have no vehicles")
	}

	if _, err := repo.InsertVehicle(ctx, models.NewVehicle{BranchID: branch.ID, FleetNumber: "P1"}); err != nil {
		t.Fatalf("Failed to insert vehicle: %v", err)
	}

	has, err = repo.HasVehiclesInBranch(ctx, branch.ID)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if !has {
		t.Error("Expected branch with a vehicle to report true")
	}
}

func TestInsertVehicleUnknownBranchIsForeignKeyViolation(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.InsertVehicle(context.Background(), models.NewVehicle{
		BranchID:    12345,
		FleetNumber: "X1",
	})
	if err == nil {
		t.Fatal("Expected foreign key violation")
	}
	if !store.IsForeignKey(err) {
		t.Errorf("Expected IsForeignKey to report true, got: %v", err)
	}
}
