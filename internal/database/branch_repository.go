package database

import (
	"context"
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

// BranchRepo handles all branch-related store operations.
// No business rules live here; validation and the delete guard belong to the
// branch service.
type BranchRepo struct {
	store store.Client
}

// GetAllBranches retrieves all branches ordered by name ascending.
func (r *BranchRepo) GetAllBranches(ctx context.Context) ([]*models.Branch, error) {
	rows, err := r.store.Select(ctx, store.Query{
		Table: "branches",
		Order: &store.Order{Column: "name"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query all branches: %w", err)
	}

	branches := make([]*models.Branch, len(rows))
	for i, row := range rows {
		branches[i] = toBranchModel(row)
	}
	return branches, nil
}

// GetBranchByID retrieves a branch by its ID.
func (r *BranchRepo) GetBranchByID(ctx context.Context, id int) (*models.Branch, error) {
	rows, err := r.store.Select(ctx, store.Query{
		Table:   "branches",
		Filters: []store.Filter{{Column: "id", Value: id}},
		Limit:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get branch %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toBranchModel(rows[0]), nil
}

// InsertBranch inserts a branch record and returns the persisted row.
func (r *BranchRepo) InsertBranch(ctx context.Context, name string) (*models.Branch, error) {
	row, err := r.store.Insert(ctx, "branches", store.Row{"name": name})
	if err != nil {
		return nil, err
	}
	return toBranchModel(row), nil
}

// UpdateBranchName updates a branch's name by id. Returns nil, nil when no
// row matched.
func (r *BranchRepo) UpdateBranchName(ctx context.Context, id int, name string) (*models.Branch, error) {
	rows, err := r.store.Update(ctx, "branches",
		store.Row{"name": name},
		[]store.Filter{{Column: "id", Value: id}},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toBranchModel(rows[0]), nil
}

// DeleteBranch removes a branch by id.
func (r *BranchRepo) DeleteBranch(ctx context.Context, id int) error {
	if err := r.store.Delete(ctx, "branches", []store.Filter{{Column: "id", Value: id}}); err != nil {
		return fmt.Errorf("failed to delete branch %d: %w", id, err)
	}
	return nil
}
