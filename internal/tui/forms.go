package tui

import (
	"charm.land/huh/v2"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/tui/huhforms"
)

// branchFormState backs the create/rename branch modal.
// An id of zero means a create.
type branchFormState struct {
	id      int
	name    string
	confirm bool
	form    *huh.Form
}

// vehicleFormState backs the create/edit vehicle modal.
// An id of zero means a create.
type vehicleFormState struct {
	id     int
	values huhforms.VehicleValues
	form   *huh.Form
}

// openBranchForm enters the branch modal, pre-populated when renaming.
func (m *Model) openBranchForm(b *models.Branch) {
	fs := &branchFormState{}
	title := "Create this branch?"
	if b != nil {
		fs.id = b.ID
		fs.name = b.Name
		title = "Rename this branch?"
	}
	fs.form = huhforms.BranchForm(title, &fs.name, &fs.confirm, m.Cfg.Theme)
	m.BranchForm = fs
	m.Mode = branchFormMode
}

// openVehicleForm enters the vehicle modal, pre-populated when editing.
// Creating requires at least one branch to attach the vehicle to.
func (m *Model) openVehicleForm(v *models.Vehicle) {
	if len(m.Branches) == 0 {
		m.setStatus("Create a branch before adding vehicles", true)
		return
	}

	fs := &vehicleFormState{}
	title := "Create this vehicle?"
	if v != nil {
		fs.id = v.ID
		fs.values = huhforms.VehicleValuesFrom(v)
		title = "Save changes?"
	} else {
		fs.values.BranchID = m.Branches[0].ID
		if b := m.currentBranch(); b != nil {
			fs.values.BranchID = b.ID
		}
	}
	fs.form = huhforms.VehicleForm(title, &fs.values, m.Branches, m.Cfg.Theme)
	m.VehicleForm = fs
	m.Mode = vehicleFormMode
}
