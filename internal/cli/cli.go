// Package cli implements the scripting interface to the fleet database.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/app"
	"github.com/fleetdeck/fleetdeck/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App
	db  *sql.DB
	ctx context.Context
}

// NewCLI initializes the CLI with the fleet database.
func NewCLI(ctx context.Context) (*CLI, error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewSQLRepository(db)

	return &CLI{
		App: app.New(repo),
		db:  db,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.db.Close()
}
