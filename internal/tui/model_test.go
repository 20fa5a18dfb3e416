package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdeck/fleetdeck/internal/app"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

type stubBranchService struct {
	branches []*models.Branch
	err      error
}

func (s *stubBranchService) ListBranches(ctx context.Context) ([]*models.Branch, error) {
	return s.branches, s.err
}

func (s *stubBranchService) GetBranchByID(ctx context.Context, id int) (*models.Branch, error) {
	for _, b := range s.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("branch not found")
}

func (s *stubBranchService) CreateBranch(ctx context.Context, name string) (*models.Branch, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBranchService) UpdateBranch(ctx context.Context, id int, name string) (*models.Branch, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBranchService) DeleteBranch(ctx context.Context, id int) error {
	return errors.New("not implemented")
}

type stubVehicleService struct {
	vehicles []*models.Vehicle
	err      error
}

func (s *stubVehicleService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return s.vehicles, s.err
}

func (s *stubVehicleService) ListVehiclesByBranch(ctx context.Context, branchID int) ([]*models.Vehicle, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.Vehicle
	for _, v := range s.vehicles {
		if v.BranchID == branchID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubVehicleService) CreateVehicle(ctx context.Context, v models.NewVehicle) (*models.Vehicle, error) {
	return nil, errors.New("not implemented")
}

func (s *stubVehicleService) UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error) {
	return nil, errors.New("not implemented")
}

func (s *stubVehicleService) DeleteVehicle(ctx context.Context, id int) error {
	return errors.New("not implemented")
}

func newTestModel(branches *stubBranchService, vehicles *stubVehicleService) Model {
	a := &app.App{
		BranchService:  branches,
		VehicleService: vehicles,
	}
	return InitialModel(context.Background(), a, config.Default())
}

func TestInitialModelLoadsBranchesAndVehicles(t *testing.T) {
	branches := &stubBranchService{branches: []*models.Branch{
		{ID: 1, Name: "Cape Town"},
		{ID: 2, Name: "Durban"},
	}}
	vehicles := &stubVehicleService{vehicles: []*models.Vehicle{
		{ID: 10, BranchID: 1, FleetNumber: "F1"},
		{ID: 11, BranchID: 2, FleetNumber: "D1"},
	}}

	m := newTestModel(branches, vehicles)

	require.Len(t, m.Branches, 2)
	assert.Equal(t, "Cape Town", m.Branches[0].Name)
	assert.Nil(t, m.currentBranch(), "model starts scoped to all branches")
	assert.Equal(t, 2, m.Tbl.TotalFilteredCount)
}

func TestBranchScopeReloadsVehicles(t *testing.T) {
	branches := &stubBranchService{branches: []*models.Branch{
		{ID: 1, Name: "Cape Town"},
		{ID: 2, Name: "Durban"},
	}}
	vehicles := &stubVehicleService{vehicles: []*models.Vehicle{
		{ID: 10, BranchID: 1, FleetNumber: "F1"},
		{ID: 11, BranchID: 1, FleetNumber: "F2"},
		{ID: 12, BranchID: 2, FleetNumber: "D1"},
	}}

	m := newTestModel(branches, vehicles)
	m.BranchIdx = 1
	m.reloadVehicles()

	require.NotNil(t, m.currentBranch())
	assert.Equal(t, "Durban", m.currentBranch().Name)
	assert.Equal(t, 1, m.Tbl.TotalFilteredCount)
	assert.Equal(t, "D1", m.Tbl.VisibleRows[0].FleetNumber)
}

func TestInitialModelDegradesOnReadErrors(t *testing.T) {
	branches := &stubBranchService{err: errors.New("store unavailable")}
	vehicles := &stubVehicleService{err: errors.New("store unavailable")}

	m := newTestModel(branches, vehicles)

	assert.Empty(t, m.Branches)
	assert.Empty(t, m.Vehicles)
	assert.Equal(t, 0, m.Tbl.TotalFilteredCount)
	assert.Nil(t, m.currentBranch())
}

func TestReloadBranchesClampsStaleScope(t *testing.T) {
	branches := &stubBranchService{branches: []*models.Branch{
		{ID: 1, Name: "Cape Town"},
		{ID: 2, Name: "Durban"},
	}}
	m := newTestModel(branches, &stubVehicleService{})
	m.BranchIdx = 1

	// The scoped branch disappears underneath the dashboard.
	branches.branches = branches.branches[:1]
	m.reloadBranches()

	assert.Equal(t, -1, m.BranchIdx, "stale scope falls back to all branches")
	assert.Nil(t, m.currentBranch())
}
