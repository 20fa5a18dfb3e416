package vehicle

import (
	"context"
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

// Service defines all vehicle-related business operations.
//
// Field requiredness (branch id, fleet number) is validated by the form and
// CLI layers before a request reaches this service; beyond that, only the
// store's constraints apply.
type Service interface {
	// Read operations
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	ListVehiclesByBranch(ctx context.Context, branchID int) ([]*models.Vehicle, error)

	// Write operations
	CreateVehicle(ctx context.Context, v models.NewVehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int) error
}

// repository defines the data access methods needed by the vehicle service.
type repository interface {
	GetAllVehicles(ctx context.Context) ([]*models.Vehicle, error)
	GetVehiclesByBranch(ctx context.Context, branchID int) ([]*models.Vehicle, error)
	InsertVehicle(ctx context.Context, v models.NewVehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int) error
}

type service struct {
	repo repository
}

// NewService creates a new vehicle service.
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// ListVehicles retrieves all vehicles in store-default order.
func (s *service) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return s.repo.GetAllVehicles(ctx)
}

// ListVehiclesByBranch retrieves the vehicles owned by one branch.
func (s *service) ListVehiclesByBranch(ctx context.Context, branchID int) ([]*models.Vehicle, error) {
	return s.repo.GetVehiclesByBranch(ctx, branchID)
}

// CreateVehicle inserts a vehicle and returns the persisted row, including
// the store-assigned id and timestamps.
func (s *service) CreateVehicle(ctx context.Context, v models.NewVehicle) (*models.Vehicle, error) {
	created, err := s.repo.InsertVehicle(ctx, v)
	if err != nil {
		if store.IsForeignKey(err) {
			return nil, fmt.Errorf("%w: branch %d", ErrBranchMissing, v.BranchID)
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return created, nil
}

// UpdateVehicle replaces only the supplied patch fields on one vehicle.
func (s *service) UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error) {
	if id <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	updated, err := s.repo.UpdateVehicle(ctx, id, patch)
	if err != nil {
		if store.IsForeignKey(err) {
			return nil, fmt.Errorf("%w", ErrBranchMissing)
		}
		return nil, fmt.Errorf("failed to update vehicle %d: %w", id, err)
	}
	if updated == nil {
		return nil, ErrVehicleNotFound
	}
	return updated, nil
}

// DeleteVehicle removes a vehicle unconditionally; nothing depends on it.
func (s *service) DeleteVehicle(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidVehicleID
	}
	return s.repo.DeleteVehicle(ctx, id)
}
