package vehicle

import (
	"context"
	"errors"
	"testing"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

type fakeRepo struct {
	vehicles []*models.Vehicle

	insertErr error
	updateErr error

	updateCalls int
	lastPatch   models.VehiclePatch
}

func (f *fakeRepo) GetAllVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return f.vehicles, nil
}

func (f *fakeRepo) GetVehiclesByBranch(ctx context.Context, branchID int) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range f.vehicles {
		if v.BranchID == branchID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) InsertVehicle(ctx context.Context, nv models.NewVehicle) (*models.Vehicle, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	v := &models.Vehicle{
		ID:          len(f.vehicles) + 1,
		BranchID:    nv.BranchID,
		FleetNumber: nv.FleetNumber,
		Make:        nv.Make,
	}
	f.vehicles = append(f.vehicles, v)
	return v, nil
}

func (f *fakeRepo) UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error) {
	f.updateCalls++
	f.lastPatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for _, v := range f.vehicles {
		if v.ID == id {
			if patch.Make != nil {
				v.Make = patch.Make
			}
			if patch.FleetNumber != nil {
				v.FleetNumber = *patch.FleetNumber
			}
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) DeleteVehicle(ctx context.Context, id int) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateVehicleUnknownBranch(t *testing.T) {
	repo := &fakeRepo{
		insertErr: &store.Error{Op: "insert", Table: "vehicles", Kind: store.KindForeignKey, Err: errors.New("constraint failed")},
	}
	svc := NewService(repo)

	_, err := svc.CreateVehicle(context.Background(), models.NewVehicle{BranchID: 42, FleetNumber: "F1"})
	if !errors.Is(err, ErrBranchMissing) {
		t.Errorf("Expected ErrBranchMissing, got %v", err)
	}
}

func TestCreateVehicleReturnsPersistedRow(t *testing.T) {
	svc := NewService(&fakeRepo{})

	created, err := svc.CreateVehicle(context.Background(), models.NewVehicle{
		BranchID:    1,
		FleetNumber: "F12",
		Make:        strPtr("Isuzu"),
	})
	if err != nil {
		t.Fatalf("CreateVehicle failed: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("Expected assigned id, got %d", created.ID)
	}
	if created.FleetNumber != "F12" {
		t.Errorf("Expected fleet number F12, got %q", created.FleetNumber)
	}
}

func TestUpdateVehicleValidation(t *testing.T) {
	repo := &fakeRepo{vehicles: []*models.Vehicle{{ID: 1, BranchID: 1, FleetNumber: "F1"}}}
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.UpdateVehicle(ctx, 0, models.VehiclePatch{Make: strPtr("Isuzu")}); !errors.Is(err, ErrInvalidVehicleID) {
		t.Errorf("Expected ErrInvalidVehicleID, got %v", err)
	}
	if _, err := svc.UpdateVehicle(ctx, 1, models.VehiclePatch{}); !errors.Is(err, ErrEmptyPatch) {
		t.Errorf("Expected ErrEmptyPatch, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Errorf("Store was invoked for invalid input, %d calls", repo.updateCalls)
	}
}

func TestUpdateVehiclePassesPatchThrough(t *testing.T) {
	repo := &fakeRepo{vehicles: []*models.Vehicle{{ID: 1, BranchID: 1, FleetNumber: "F1", Make: strPtr("Scania")}}}
	svc := NewService(repo)

	updated, err := svc.UpdateVehicle(context.Background(), 1, models.VehiclePatch{Make: strPtr("Isuzu")})
	if err != nil {
		t.Fatalf("UpdateVehicle failed: %v", err)
	}
	if updated.Make == nil || *updated.Make != "Isuzu" {
		t.Errorf("Expected updated make, got %v", updated.Make)
	}
	if updated.FleetNumber != "F1" {
		t.Errorf("Untouched fleet number changed: %q", updated.FleetNumber)
	}
	if repo.lastPatch.FleetNumber != nil {
		t.Error("Patch gained a fleet number field it was not given")
	}
}

func TestUpdateVehicleMissing(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.UpdateVehicle(context.Background(), 404, models.VehiclePatch{Make: strPtr("Ghost")})
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("Expected ErrVehicleNotFound, got %v", err)
	}
}

func TestDeleteVehicleValidatesID(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if err := svc.DeleteVehicle(context.Background(), 0); !errors.Is(err, ErrInvalidVehicleID) {
		t.Errorf("Expected ErrInvalidVehicleID, got %v", err)
	}
	if err := svc.DeleteVehicle(context.Background(), 1); err != nil {
		t.Errorf("DeleteVehicle failed: %v", err)
	}
}
