package database

import (
	"context"
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

// VehicleRepo handles all vehicle-related store operations.
type VehicleRepo struct {
	store store.Client
}

// GetAllVehicles retrieves all vehicles in store-default order.
func (r *VehicleRepo) GetAllVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	rows, err := r.store.Select(ctx, store.Query{Table: "vehicles"})
	if err != nil {
		return nil, fmt.Errorf("failed to query all vehicles: %w", err)
	}
	return toVehicleModels(rows), nil
}

// GetVehiclesByBranch retrieves the vehicles belonging to one branch.
func (r *VehicleRepo) GetVehiclesByBranch(ctx context.Context, branchID int) ([]*models.Vehicle, error) {
	rows, err := r.store.Select(ctx, store.Query{
		Table:   "vehicles",
		Filters: []store.Filter{{Column: "branch_id", Value: branchID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles for branch %d: %w", branchID, err)
	}
	return toVehicleModels(rows), nil
}

// HasVehiclesInBranch reports whether at least one vehicle references the
// branch. The probe is limited to a single row.
func (r *VehicleRepo) HasVehiclesInBranch(ctx context.Context, branchID int) (bool, error) {
	rows, err := r.store.Select(ctx, store.Query{
		Table:   "vehicles",
		Filters: []store.Filter{{Column: "branch_id", Value: branchID}},
		Limit:   1,
	})
	if err != nil {
		return false, fmt.Errorf("failed to probe vehicles for branch %d: %w", branchID, err)
	}
	return len(rows) > 0, nil
}

// InsertVehicle inserts a vehicle record and returns the persisted row.
func (r *VehicleRepo) InsertVehicle(ctx context.Context, v models.NewVehicle) (*models.Vehicle, error) {
	row, err := r.store.Insert(ctx, "vehicles", newVehicleRow(v))
	if err != nil {
		return nil, err
	}
	return toVehicleModel(row), nil
}

// UpdateVehicle applies a partial update keyed by id. The id is used solely
// as the match predicate. Returns nil, nil when no row matched.
func (r *VehicleRepo) UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error) {
	rows, err := r.store.Update(ctx, "vehicles",
		vehiclePatchRow(patch),
		[]store.Filter{{Column: "id", Value: id}},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toVehicleModel(rows[0]), nil
}

// DeleteVehicle removes a vehicle by id. Vehicles have no dependents, so the
// delete is unconditional.
func (r *VehicleRepo) DeleteVehicle(ctx context.Context, id int) error {
	if err := r.store.Delete(ctx, "vehicles", []store.Filter{{Column: "id", Value: id}}); err != nil {
		return fmt.Errorf("failed to delete vehicle %d: %w", id, err)
	}
	return nil
}

func toVehicleModels(rows []store.Row) []*models.Vehicle {
	vehicles := make([]*models.Vehicle, len(rows))
	for i, row := range rows {
		vehicles[i] = toVehicleModel(row)
	}
	return vehicles
}
