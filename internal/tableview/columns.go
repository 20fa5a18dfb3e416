// Package tableview is the in-memory engine behind the vehicles table.
//
// It is a pure transform: given an immutable vehicle collection and the
// current view state, it produces the visible slice. It performs no I/O and
// never mutates its input, so it can be tested by replaying state changes
// against a fixed fixture.
package tableview

import (
	"strconv"

	"github.com/fleetdeck/fleetdeck/internal/models"
)

// Column identifies a table column. The ids double as persisted column names
// so visibility settings survive restarts via the config file.
type Column string

const (
	ColFleetNumber     Column = "fleet_number"
	ColRegistration    Column = "registration_number"
	ColMake            Column = "make"
	ColVehicleType     Column = "vehicle_type"
	ColManufactureYear Column = "manufacture_year"
	ColVIN             Column = "vin"
)

// DefaultColumns is the table's column order.
var DefaultColumns = []Column{
	ColFleetNumber,
	ColRegistration,
	ColMake,
	ColVehicleType,
	ColManufactureYear,
	ColVIN,
}

// Title returns the column header label.
func (c Column) Title() string {
	switch c {
	case ColFleetNumber:
		return "Fleet Number"
	case ColRegistration:
		return "Registration"
	case ColMake:
		return "Make"
	case ColVehicleType:
		return "Type"
	case ColManufactureYear:
		return "Year"
	case ColVIN:
		return "VIN"
	default:
		return string(c)
	}
}

// CellValue returns the display value of a column for one vehicle.
// Absent optionals render as "-".
func (c Column) CellValue(v *models.Vehicle) string {
	switch c {
	case ColFleetNumber:
		return v.FleetNumber
	case ColRegistration:
		return orDash(v.RegistrationNumber)
	case ColMake:
		return orDash(v.Make)
	case ColVehicleType:
		return orDash(v.VehicleType)
	case ColManufactureYear:
		if v.ManufactureYear == nil {
			return "-"
		}
		return strconv.Itoa(*v.ManufactureYear)
	case ColVIN:
		return orDash(v.VIN)
	default:
		return ""
	}
}

// compare orders two vehicles by this column. Absent values order after
// present ones.
func (c Column) compare(a, b *models.Vehicle) int {
	if c == ColManufactureYear {
		return compareIntPtr(a.ManufactureYear, b.ManufactureYear)
	}
	return compareStrings(c.sortValue(a), c.sortValue(b))
}

// sortValue returns the raw string used for ordering; nil means absent.
func (c Column) sortValue(v *models.Vehicle) *string {
	switch c {
	case ColFleetNumber:
		return &v.FleetNumber
	case ColRegistration:
		return v.RegistrationNumber
	case ColMake:
		return v.Make
	case ColVehicleType:
		return v.VehicleType
	case ColVIN:
		return v.VIN
	default:
		return nil
	}
}

func compareStrings(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func compareIntPtr(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
