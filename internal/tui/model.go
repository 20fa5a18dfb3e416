// Package tui implements the interactive fleet dashboard.
// It follows the Model-View-Update pattern: all state lives on Model,
// Update mutates it in response to messages, View renders it.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/fleetdeck/fleetdeck/internal/app"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/tableview"
	"github.com/fleetdeck/fleetdeck/internal/tui/components"
)

// mode identifies which input handler owns the keyboard.
type mode int

const (
	normalMode mode = iota
	filterMode
	branchPickerMode
	branchFormMode
	vehicleFormMode
	deleteBranchConfirmMode
	deleteVehicleConfirmMode
	columnsMode
	notesMode
	helpMode
)

// Model holds all TUI state.
type Model struct {
	Ctx context.Context
	App *app.App
	Cfg *config.Config

	// Loaded data. Read failures downgrade to empty slices so the
	// dashboard always renders.
	Branches []*models.Branch
	Vehicles []*models.Vehicle

	// BranchIdx indexes Branches; -1 means all branches.
	BranchIdx int

	// Table is the pure view state; Tbl is the last rendered slice.
	Table *tableview.ViewState
	Tbl   tableview.View

	// Cursor is the highlighted row within the current page.
	Cursor int

	Mode        mode
	FilterInput textinput.Model

	// Form state, populated when entering a form mode.
	BranchForm  *branchFormState
	VehicleForm *vehicleFormState

	// PickerIdx is the highlighted entry in the branch picker.
	PickerIdx int

	Notes *components.NotesViewer

	// Status is a one-line notification shown in the footer.
	Status      string
	StatusIsErr bool

	Styles styles

	Width  int
	Height int
}

// InitialModel creates the starting model and loads data from the services.
// Load failures are logged and rendered as an empty dashboard rather than
// aborting startup.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "fleet number..."
	ti.CharLimit = 64

	state := tableview.NewViewState(cfg.Table.PageSize)
	for _, id := range cfg.Table.HiddenColumns {
		state.SetColumnVisible(tableview.Column(id), false)
	}

	m := Model{
		Ctx:         ctx,
		App:         a,
		Cfg:         cfg,
		BranchIdx:   -1,
		Table:       state,
		FilterInput: ti,
		Notes:       components.NewNotesViewer(),
		Styles:      newStyles(cfg.Theme),
	}
	m.reloadBranches()
	m.reloadVehicles()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// reloadBranches refreshes the branch list, downgrading errors to empty.
func (m *Model) reloadBranches() {
	branches, err := m.App.BranchService.ListBranches(m.Ctx)
	if err != nil {
		slog.Error("failed to load branches", "error", err)
		branches = nil
	}
	m.Branches = branches
	if m.BranchIdx >= len(m.Branches) {
		m.BranchIdx = -1
	}
}

// reloadVehicles refreshes the vehicle list for the current branch scope
// and re-renders the table. Errors downgrade to an empty table.
func (m *Model) reloadVehicles() {
	var (
		vehicles []*models.Vehicle
		err      error
	)
	if b := m.currentBranch(); b != nil {
		vehicles, err = m.App.VehicleService.ListVehiclesByBranch(m.Ctx, b.ID)
	} else {
		vehicles, err = m.App.VehicleService.ListVehicles(m.Ctx)
	}
	if err != nil {
		slog.Error("failed to load vehicles", "error", err)
		vehicles = nil
	}
	m.Vehicles = vehicles
	m.renderTable()
}

// renderTable recomputes the visible page and keeps the cursor in bounds.
func (m *Model) renderTable() {
	m.Tbl = tableview.Render(m.Vehicles, m.Table)
	if m.Cursor >= len(m.Tbl.VisibleRows) {
		m.Cursor = len(m.Tbl.VisibleRows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// currentBranch returns the branch scoping the table, or nil for all.
func (m *Model) currentBranch() *models.Branch {
	if m.BranchIdx < 0 || m.BranchIdx >= len(m.Branches) {
		return nil
	}
	return m.Branches[m.BranchIdx]
}

// cursorVehicle returns the vehicle under the cursor, or nil when the
// page is empty.
func (m *Model) cursorVehicle() *models.Vehicle {
	if m.Cursor < 0 || m.Cursor >= len(m.Tbl.VisibleRows) {
		return nil
	}
	return m.Tbl.VisibleRows[m.Cursor]
}

// setStatus replaces the footer notification.
func (m *Model) setStatus(text string, isErr bool) {
	m.Status = text
	m.StatusIsErr = isErr
}
