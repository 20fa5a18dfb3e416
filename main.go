package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/fleetdeck/fleetdeck/cmd"
	"github.com/fleetdeck/fleetdeck/internal/app"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/database"
	"github.com/fleetdeck/fleetdeck/internal/logging"
	"github.com/fleetdeck/fleetdeck/internal/tui"
)

// fatal reports a startup failure on stderr and exits. The log file carries
// the slog copy; stderr is for the human who just ran the command.
func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// With arguments, run the scripting CLI instead of the dashboard.
	if len(os.Args) > 1 {
		if err := cmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		fatal("failed to initialize database", err)
	}
	defer db.Close()

	repo := database.NewSQLRepository(db)
	model := tui.InitialModel(ctx, app.New(repo), cfg)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fatal("dashboard exited with error", err)
	}
}
