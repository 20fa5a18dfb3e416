package models

import "time"

// Vehicle is a fleet asset belonging to exactly one branch.
// Every field beyond the fleet number is optional; nil means the value was
// never captured.
type Vehicle struct {
	ID                 int
	BranchID           int
	FleetNumber        string
	RegistrationNumber *string
	Make               *string
	EngineModel        *string
	VIN                *string
	ManufactureYear    *int
	YearDetails        *string
	VehicleType        *string
	TareWeightKg       *float64
	PermissionWeight   *float64
	PermissionUnit     *string
	VolumeLitres       *float64
	PalletCapacity     *int
	TyreSpecification  *string
	WheelCount         *int
	ValueZAR           *float64
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// GetID supports the CLI's quiet output mode.
func (v *Vehicle) GetID() int {
	return v.ID
}

// NewVehicle carries the caller-supplied fields for a vehicle create.
// The id and timestamps are assigned by the store.
type NewVehicle struct {
	BranchID           int
	FleetNumber        string
	RegistrationNumber *string
	Make               *string
	EngineModel        *string
	VIN                *string
	ManufactureYear    *int
	YearDetails        *string
	VehicleType        *string
	TareWeightKg       *float64
	PermissionWeight   *float64
	PermissionUnit     *string
	VolumeLitres       *float64
	PalletCapacity     *int
	TyreSpecification  *string
	WheelCount         *int
	ValueZAR           *float64
	Notes              *string
}

// VehiclePatch is a partial update: only non-nil fields enter the write set.
// Clearing a stored value is expressed by pointing at the zero value, which
// is written as-is; there is no tombstone distinct from "leave unchanged".
type VehiclePatch struct {
	BranchID           *int
	FleetNumber        *string
	RegistrationNumber *string
	Make               *string
	EngineModel        *string
	VIN                *string
	ManufactureYear    *int
	YearDetails        *string
	VehicleType        *string
	TareWeightKg       *float64
	PermissionWeight   *float64
	PermissionUnit     *string
	VolumeLitres       *float64
	PalletCapacity     *int
	TyreSpecification  *string
	WheelCount         *int
	ValueZAR           *float64
	Notes              *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p VehiclePatch) IsEmpty() bool {
	return p.BranchID == nil && p.FleetNumber == nil &&
		p.RegistrationNumber == nil && p.Make == nil && p.EngineModel == nil &&
		p.VIN == nil && p.ManufactureYear == nil && p.YearDetails == nil &&
		p.VehicleType == nil && p.TareWeightKg == nil && p.PermissionWeight == nil &&
		p.PermissionUnit == nil && p.VolumeLitres == nil && p.PalletCapacity == nil &&
		p.TyreSpecification == nil && p.WheelCount == nil && p.ValueZAR == nil &&
		p.Notes == nil
}
