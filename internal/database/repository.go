package database

import (
	"database/sql"

	"github.com/fleetdeck/fleetdeck/internal/store"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*BranchRepo
	*VehicleRepo
}

// NewRepository creates a Repository on top of a store client.
func NewRepository(client store.Client) *Repository {
	return &Repository{
		BranchRepo:  &BranchRepo{store: client},
		VehicleRepo: &VehicleRepo{store: client},
	}
}

// NewSQLRepository wires a Repository directly to an open database
// connection through the SQL store client.
func NewSQLRepository(db *sql.DB) *Repository {
	return NewRepository(store.NewSQLClient(db))
}
