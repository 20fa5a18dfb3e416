package database

import (
	"context"
	"errors"
	"testing"

	"github.com/fleetdeck/fleetdeck/internal/models"
	branchservice "github.com/fleetdeck/fleetdeck/internal/services/branch"
)

// Full-stack check of the branch delete guard against a real store.
func TestDeleteBranchGuardEndToEnd(t *testing.T) {
	repo := setupTestRepo(t)
	svc := branchservice.NewService(repo.BranchRepo, repo.VehicleRepo)
	ctx := context.Background()

	capeTown, err := svc.CreateBranch(ctx, "Cape Town")
	if err != nil {
		t.Fatalf("Failed to create branch: %v", err)
	}

	vehicle, err := repo.InsertVehicle(ctx, models.NewVehicle{
		BranchID:    capeTown.ID,
		FleetNumber: "F1",
	})
	if err != nil {
		t.Fatalf("Failed to insert vehicle: %v", err)
	}

	// Delete must be rejected while F1 references the branch.
	err = svc.DeleteBranch(ctx, capeTown.ID)
	if !errors.Is(err, branchservice.ErrBranchHasVehicles) {
		t.Fatalf("Expected ErrBranchHasVehicles, got %v", err)
	}

	remaining, err := repo.GetBranchByID(ctx, capeTown.ID)
	if err != nil || remaining == nil {
		t.Fatalf("Branch should still exist, got %+v, %v", remaining, err)
	}

	// After the vehicle is gone the delete goes through.
	if err := repo.DeleteVehicle(ctx, vehicle.ID); err != nil {
		t.Fatalf("Failed to delete vehicle: %v", err)
	}
	if err := svc.DeleteBranch(ctx, capeTown.ID); err != nil {
		t.Fatalf("Expected delete to succeed on empty branch, got %v", err)
	}

	gone, err := repo.GetBranchByID(ctx, capeTown.ID)
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if gone != nil {
		t.Errorf("Expected branch removed, got %+v", gone)
	}
}
