// Package app wires repositories and services into one container.
package app

import (
	"github.com/fleetdeck/fleetdeck/internal/database"
	branchservice "github.com/fleetdeck/fleetdeck/internal/services/branch"
	vehicleservice "github.com/fleetdeck/fleetdeck/internal/services/vehicle"
)

// App holds all application services and provides dependency injection.
type App struct {
	repo *database.Repository

	BranchService  branchservice.Service
	VehicleService vehicleservice.Service
}

// New creates a new App with all services initialized.
func New(repo *database.Repository) *App {
	return &App{
		repo:           repo,
		BranchService:  branchservice.NewService(repo.BranchRepo, repo.VehicleRepo),
		VehicleService: vehicleservice.NewService(repo.VehicleRepo),
	}
}

// Repo returns the underlying repository for direct data access.
func (a *App) Repo() database.DataStore {
	return a.repo
}
