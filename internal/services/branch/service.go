package branch

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

// Service defines all branch-related business operations.
type Service interface {
	// Read operations
	ListBranches(ctx context.Context) ([]*models.Branch, error)
	GetBranchByID(ctx context.Context, id int) (*models.Branch, error)

	// Write operations
	CreateBranch(ctx context.Context, name string) (*models.Branch, error)
	UpdateBranch(ctx context.Context, id int, name string) (*models.Branch, error)
	DeleteBranch(ctx context.Context, id int) error
}

// repository defines the data access methods needed by the branch service.
// This interface is private to the service layer.
type repository interface {
	GetAllBranches(ctx context.Context) ([]*models.Branch, error)
	GetBranchByID(ctx context.Context, id int) (*models.Branch, error)
	InsertBranch(ctx context.Context, name string) (*models.Branch, error)
	UpdateBranchName(ctx context.Context, id int, name string) (*models.Branch, error)
	DeleteBranch(ctx context.Context, id int) error
}

// vehicleProbe checks for vehicles still referencing a branch. Needed for the
// delete guard.
type vehicleProbe interface {
	HasVehiclesInBranch(ctx context.Context, branchID int) (bool, error)
}

type service struct {
	repo     repository
	vehicles vehicleProbe
}

// NewService creates a new branch service.
func NewService(repo repository, vehicles vehicleProbe) Service {
	return &service{repo: repo, vehicles: vehicles}
}

// ListBranches retrieves all branches ordered by name. Errors are returned
// strictly; the UI boundary decides whether to degrade to an empty list.
func (s *service) ListBranches(ctx context.Context) ([]*models.Branch, error) {
	return s.repo.GetAllBranches(ctx)
}

// GetBranchByID retrieves a specific branch.
func (s *service) GetBranchByID(ctx context.Context, id int) (*models.Branch, error) {
	if id <= 0 {
		return nil, ErrInvalidBranchID
	}
	b, err := s.repo.GetBranchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBranchNotFound
	}
	return b, nil
}

// CreateBranch creates a branch after trimming and validating the name.
// The store is never invoked for an empty trimmed name.
func (s *service) CreateBranch(ctx context.Context, name string) (*models.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	created, err := s.repo.InsertBranch(ctx, name)
	if err != nil {
		if store.IsUnique(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return created, nil
}

// UpdateBranch renames a branch with the same validation and conflict
// mapping as CreateBranch.
func (s *service) UpdateBranch(ctx context.Context, id int, name string) (*models.Branch, error) {
	if id <= 0 {
		return nil, ErrInvalidBranchID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	updated, err := s.repo.UpdateBranchName(ctx, id, name)
	if err != nil {
		if store.IsUnique(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("failed to update branch %d: %w", id, err)
	}
	if updated == nil {
		return nil, ErrBranchNotFound
	}
	return updated, nil
}

// DeleteBranch deletes a branch unless vehicles still reference it.
//
// The existence probe must complete and be evaluated before the delete is
// attempted; if the probe itself fails the delete is not issued (fail
// closed). The probe is best effort under concurrency; the store's RESTRICT
// foreign key closes the remaining window, and that constraint failure is
// surfaced as the same conflict.
func (s *service) DeleteBranch(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidBranchID
	}

	inUse, err := s.vehicles.HasVehiclesInBranch(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check branch vehicles: %w", err)
	}
	if inUse {
		return ErrBranchHasVehicles
	}

	if err := s.repo.DeleteBranch(ctx, id); err != nil {
		if store.IsForeignKey(err) {
			return ErrBranchHasVehicles
		}
		return fmt.Errorf("failed to delete branch %d: %w", id, err)
	}
	return nil
}
