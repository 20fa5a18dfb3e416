package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed.
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create branches table. Name uniqueness is case-sensitive exact match;
	// callers trim before persisting.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS branches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Create vehicles table. ON DELETE RESTRICT backs up the client-side
	// delete guard: a vehicle inserted between the guard's existence check
	// and the delete still blocks the delete at the store.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS vehicles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			branch_id INTEGER NOT NULL,
			fleet_number TEXT NOT NULL,
			registration_number TEXT,
			make TEXT,
			engine_model TEXT,
			vin TEXT,
			manufacture_year INTEGER,
			year_details TEXT,
			vehicle_type TEXT,
			tare_weight_kg REAL,
			permission_weight REAL,
			permission_unit TEXT,
			volume_litres REAL,
			pallet_capacity INTEGER,
			tyre_specification TEXT,
			wheel_count INTEGER,
			value_zar REAL,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (branch_id) REFERENCES branches(id) ON DELETE RESTRICT
		)
	`)
	if err != nil {
		return err
	}

	// Index for branch-scoped fetches and the delete-guard probe
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_vehicles_branch
		ON vehicles(branch_id)
	`)
	if err != nil {
		return err
	}

	// Keep updated_at authoritative at the store instead of trusting writers
	_, err = db.ExecContext(ctx, `
		CREATE TRIGGER IF NOT EXISTS trg_vehicles_updated_at
		AFTER UPDATE ON vehicles
		FOR EACH ROW
		BEGIN
			UPDATE vehicles SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
		END
	`)
	return err
}
