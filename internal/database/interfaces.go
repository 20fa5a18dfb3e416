// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/fleetdeck/fleetdeck/internal/models"
)

// BranchReader defines read operations for branches.
type BranchReader interface {
	GetAllBranches(ctx context.Context) ([]*models.Branch, error)
	GetBranchByID(ctx context.Context, id int) (*models.Branch, error)
}

// BranchWriter defines write operations for branches.
type BranchWriter interface {
	InsertBranch(ctx context.Context, name string) (*models.Branch, error)
	UpdateBranchName(ctx context.Context, id int, name string) (*models.Branch, error)
	DeleteBranch(ctx context.Context, id int) error
}

// BranchRepository combines all branch-related operations.
type BranchRepository interface {
	BranchReader
	BranchWriter
}

// VehicleReader defines read operations for vehicles.
type VehicleReader interface {
	GetAllVehicles(ctx context.Context) ([]*models.Vehicle, error)
	GetVehiclesByBranch(ctx context.Context, branchID int) ([]*models.Vehicle, error)
	HasVehiclesInBranch(ctx context.Context, branchID int) (bool, error)
}

// VehicleWriter defines write operations for vehicles.
type VehicleWriter interface {
	InsertVehicle(ctx context.Context, v models.NewVehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int) error
}

// VehicleRepository combines all vehicle-related operations.
type VehicleRepository interface {
	VehicleReader
	VehicleWriter
}

// DataStore is the unified interface over every repository operation,
// satisfied by *Repository. Consumers that only need one entity should
// depend on the narrower interfaces above.
type DataStore interface {
	BranchRepository
	VehicleRepository
}
