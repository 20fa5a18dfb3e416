package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	branchservice "github.com/fleetdeck/fleetdeck/internal/services/branch"
	vehicleservice "github.com/fleetdeck/fleetdeck/internal/services/vehicle"
	"github.com/fleetdeck/fleetdeck/internal/tableview"
)

func TestPadAndTruncate(t *testing.T) {
	assert.Equal(t, "abc  ", pad("abc", 5))
	assert.Equal(t, "abcde", pad("abcde", 5))
	assert.Equal(t, "abcde", pad("abcde", 3), "pad never cuts")

	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestSortIndicator(t *testing.T) {
	m := Model{Table: tableview.NewViewState(10)}

	assert.Empty(t, m.sortIndicator(tableview.ColMake))

	m.Table.CycleSort(tableview.ColMake)
	assert.Equal(t, " ▲", m.sortIndicator(tableview.ColMake))

	m.Table.CycleSort(tableview.ColMake)
	assert.Equal(t, " ▼", m.sortIndicator(tableview.ColMake))

	// With multiple keys the indicator carries the priority.
	m.Table.SetSort([]tableview.SortKey{
		{Column: tableview.ColMake},
		{Column: tableview.ColManufactureYear, Desc: true},
	})
	assert.Equal(t, " ▲1", m.sortIndicator(tableview.ColMake))
	assert.Equal(t, " ▼2", m.sortIndicator(tableview.ColManufactureYear))
	assert.Empty(t, m.sortIndicator(tableview.ColVIN))
}

func TestUserMessageShowsKnownErrorsVerbatim(t *testing.T) {
	assert.Equal(t,
		"A branch with this name already exists.",
		userMessage(branchservice.ErrNameTaken))
	assert.Equal(t,
		"Cannot delete branch: Vehicles are still associated with it.",
		userMessage(fmt.Errorf("saving: %w", branchservice.ErrBranchHasVehicles)))
	assert.Equal(t,
		vehicleservice.ErrEmptyPatch.Error(),
		userMessage(vehicleservice.ErrEmptyPatch))

	assert.Equal(t,
		"Something went wrong, see the log for details",
		userMessage(errors.New("i/o timeout")))
}
