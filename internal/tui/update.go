package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	branchservice "github.com/fleetdeck/fleetdeck/internal/services/branch"
	vehicleservice "github.com/fleetdeck/fleetdeck/internal/services/vehicle"
	"github.com/fleetdeck/fleetdeck/internal/tableview"
)

// knownErrors are service errors whose text is safe to show verbatim.
var knownErrors = []error{
	branchservice.ErrEmptyName,
	branchservice.ErrInvalidBranchID,
	branchservice.ErrNameTaken,
	branchservice.ErrBranchNotFound,
	branchservice.ErrBranchHasVehicles,
	vehicleservice.ErrInvalidVehicleID,
	vehicleservice.ErrVehicleNotFound,
	vehicleservice.ErrEmptyPatch,
	vehicleservice.ErrBranchMissing,
}

// userMessage maps a service error to the footer notification text.
// Unknown errors are logged and reported generically.
func userMessage(err error) string {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	slog.Error("operation failed", "error", err)
	return "Something went wrong, see the log for details"
}

// Update implements tea.Model. It dispatches messages to the handler for
// the current mode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width = ws.Width
		m.Height = ws.Height
		return m, nil
	}

	// Form modes need every message, not just key presses.
	switch m.Mode {
	case branchFormMode:
		return m.updateBranchForm(msg)
	case vehicleFormMode:
		return m.updateVehicleForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.Mode {
	case filterMode:
		return m.updateFilterMode(msg, key)
	case branchPickerMode:
		return m.updateBranchPicker(key)
	case deleteBranchConfirmMode:
		return m.updateDeleteBranchConfirm(key)
	case deleteVehicleConfirmMode:
		return m.updateDeleteVehicleConfirm(key)
	case columnsMode:
		return m.updateColumnsMode(key)
	case notesMode, helpMode:
		// Any key dismisses the overlay.
		m.Mode = normalMode
		return m, nil
	default:
		return m.updateNormalMode(key)
	}
}

// ----------------------------------------------------------------------------
// Normal mode

func (m Model) updateNormalMode(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Status = ""

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.FilterInput.SetValue(m.Table.FilterText())
		m.FilterInput.Focus()
		m.Mode = filterMode
		return m, nil

	case "j", "down":
		if m.Cursor < len(m.Tbl.VisibleRows)-1 {
			m.Cursor++
		}
		return m, nil

	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case "h", "left":
		m.Table.PrevPage()
		m.renderTable()
		return m, nil

	case "l", "right":
		m.Table.NextPage(m.Tbl.PageCount)
		m.renderTable()
		return m, nil

	case "g":
		m.Table.FirstPage()
		m.renderTable()
		return m, nil

	case "G":
		m.Table.LastPage(m.Tbl.PageCount)
		m.renderTable()
		return m, nil

	case " ":
		if v := m.cursorVehicle(); v != nil {
			m.Table.ToggleRowSelected(v.ID)
			m.renderTable()
		}
		return m, nil

	case "c":
		m.Table.ClearSelection()
		m.renderTable()
		return m, nil

	case "x":
		m.Table.SetFilterText("")
		m.Table.SetSort(nil)
		m.renderTable()
		return m, nil

	case "1", "2", "3", "4", "5", "6":
		idx := int(key.String()[0] - '1')
		if idx < len(tableview.DefaultColumns) {
			m.Table.CycleSort(tableview.DefaultColumns[idx])
			m.renderTable()
		}
		return m, nil

	case "v":
		m.Mode = columnsMode
		return m, nil

	case "b":
		m.PickerIdx = m.BranchIdx + 1
		m.Mode = branchPickerMode
		return m, nil

	case "a":
		m.openVehicleForm(nil)
		return m, nil

	case "e", "enter":
		if v := m.cursorVehicle(); v != nil {
			m.openVehicleForm(v)
		}
		return m, nil

	case "d":
		if m.cursorVehicle() != nil {
			m.Mode = deleteVehicleConfirmMode
		}
		return m, nil

	case "n":
		if m.cursorVehicle() != nil {
			m.Mode = notesMode
		}
		return m, nil

	case "B":
		m.openBranchForm(nil)
		return m, nil

	case "R":
		if b := m.currentBranch(); b != nil {
			m.openBranchForm(b)
		} else {
			m.setStatus("Switch to a branch first", true)
		}
		return m, nil

	case "D":
		if m.currentBranch() != nil {
			m.Mode = deleteBranchConfirmMode
		} else {
			m.setStatus("Switch to a branch first", true)
		}
		return m, nil

	case "?":
		m.Mode = helpMode
		return m, nil
	}

	return m, nil
}

// ----------------------------------------------------------------------------
// Filter mode

func (m Model) updateFilterMode(msg tea.Msg, key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		m.FilterInput.Blur()
		m.Mode = normalMode
		return m, nil
	case "esc":
		m.FilterInput.Blur()
		m.FilterInput.SetValue("")
		m.Table.SetFilterText("")
		m.renderTable()
		m.Mode = normalMode
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	m.Table.SetFilterText(m.FilterInput.Value())
	m.renderTable()
	return m, cmd
}

// ----------------------------------------------------------------------------
// Branch picker

func (m Model) updateBranchPicker(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Entry 0 is "All branches"; entries 1..n map to Branches[i-1].
	switch key.String() {
	case "j", "down":
		if m.PickerIdx < len(m.Branches) {
			m.PickerIdx++
		}
	case "k", "up":
		if m.PickerIdx > 0 {
			m.PickerIdx--
		}
	case "enter":
		m.BranchIdx = m.PickerIdx - 1
		m.Cursor = 0
		m.Table.FirstPage()
		m.reloadVehicles()
		m.Mode = normalMode
	case "esc", "b":
		m.Mode = normalMode
	}
	return m, nil
}

// ----------------------------------------------------------------------------
// Column visibility

func (m Model) updateColumnsMode(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := key.String(); s {
	case "esc", "enter", "v", "q":
		m.persistHiddenColumns()
		m.Mode = normalMode
	case "1", "2", "3", "4", "5", "6":
		idx := int(s[0] - '1')
		if idx < len(tableview.DefaultColumns) {
			m.Table.ToggleColumnVisible(tableview.DefaultColumns[idx])
			m.renderTable()
		}
	}
	return m, nil
}

// persistHiddenColumns saves the column toggles back to the config file so
// they survive restarts. Save failures only log.
func (m *Model) persistHiddenColumns() {
	var hidden []string
	for _, col := range tableview.DefaultColumns {
		if !m.Table.IsColumnVisible(col) {
			hidden = append(hidden, string(col))
		}
	}
	m.Cfg.Table.HiddenColumns = hidden
	if err := m.Cfg.Save(); err != nil {
		slog.Error("failed to save config", "error", err)
	}
}

// ----------------------------------------------------------------------------
// Delete confirmations

func (m Model) updateDeleteBranchConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "enter":
		b := m.currentBranch()
		m.Mode = normalMode
		if b == nil {
			return m, nil
		}
		if err := m.App.BranchService.DeleteBranch(m.Ctx, b.ID); err != nil {
			m.setStatus(userMessage(err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Deleted branch %q", b.Name), false)
		m.BranchIdx = -1
		m.reloadBranches()
		m.reloadVehicles()
	case "n", "esc", "q":
		m.Mode = normalMode
	}
	return m, nil
}

func (m Model) updateDeleteVehicleConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "enter":
		v := m.cursorVehicle()
		m.Mode = normalMode
		if v == nil {
			return m, nil
		}
		if err := m.App.VehicleService.DeleteVehicle(m.Ctx, v.ID); err != nil {
			m.setStatus(userMessage(err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Deleted vehicle %s", v.FleetNumber), false)
		m.reloadVehicles()
	case "n", "esc", "q":
		m.Mode = normalMode
	}
	return m, nil
}

// ----------------------------------------------------------------------------
// Forms

func (m Model) updateBranchForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.BranchForm
	model, cmd := fs.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		fs.form = f
	}

	switch fs.form.State {
	case huh.StateAborted:
		m.BranchForm = nil
		m.Mode = normalMode
		return m, nil

	case huh.StateCompleted:
		m.BranchForm = nil
		m.Mode = normalMode
		if !fs.confirm {
			return m, nil
		}
		if fs.id == 0 {
			created, err := m.App.BranchService.CreateBranch(m.Ctx, fs.name)
			if err != nil {
				m.setStatus(userMessage(err), true)
				return m, nil
			}
			m.setStatus(fmt.Sprintf("Created branch %q", created.Name), false)
		} else {
			updated, err := m.App.BranchService.UpdateBranch(m.Ctx, fs.id, fs.name)
			if err != nil {
				m.setStatus(userMessage(err), true)
				return m, nil
			}
			m.setStatus(fmt.Sprintf("Renamed branch to %q", updated.Name), false)
		}
		m.reloadBranches()
		return m, nil
	}

	return m, cmd
}

func (m Model) updateVehicleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.VehicleForm
	model, cmd := fs.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		fs.form = f
	}

	switch fs.form.State {
	case huh.StateAborted:
		m.VehicleForm = nil
		m.Mode = normalMode
		return m, nil

	case huh.StateCompleted:
		m.VehicleForm = nil
		m.Mode = normalMode
		if !fs.values.Confirm {
			return m, nil
		}
		if fs.id == 0 {
			payload, err := fs.values.ToNewVehicle()
			if err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			created, err := m.App.VehicleService.CreateVehicle(m.Ctx, payload)
			if err != nil {
				m.setStatus(userMessage(err), true)
				return m, nil
			}
			m.setStatus(fmt.Sprintf("Created vehicle %s", created.FleetNumber), false)
		} else {
			patch, err := fs.values.ToPatch()
			if err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			updated, err := m.App.VehicleService.UpdateVehicle(m.Ctx, fs.id, patch)
			if err != nil {
				m.setStatus(userMessage(err), true)
				return m, nil
			}
			m.setStatus(fmt.Sprintf("Updated vehicle %s", updated.FleetNumber), false)
		}
		m.reloadVehicles()
		return m, nil
	}

	return m, cmd
}
