package database

import (
	"time"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

// Row values come back from the store loosely typed (SQLite storage classes:
// int64, float64, string, time.Time for declared timestamps). The helpers
// below normalize them into model fields.

func rowInt(v any) int {
	switch val := v.(type) {
	case int64:
		return int(val)
	case int:
		return val
	default:
		return 0
	}
}

func rowString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func rowIntPtr(v any) *int {
	if v == nil {
		return nil
	}
	n := rowInt(v)
	return &n
}

func rowStringPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := rowString(v)
	return &s
}

func rowFloatPtr(v any) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case int64:
		f := float64(val)
		return &f
	default:
		return nil
	}
}

func rowTime(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if t, err := time.Parse(layout, val); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func toBranchModel(row store.Row) *models.Branch {
	return &models.Branch{
		ID:        rowInt(row["id"]),
		Name:      rowString(row["name"]),
		CreatedAt: rowTime(row["created_at"]),
	}
}

func toVehicleModel(row store.Row) *models.Vehicle {
	return &models.Vehicle{
		ID:                 rowInt(row["id"]),
		BranchID:           rowInt(row["branch_id"]),
		FleetNumber:        rowString(row["fleet_number"]),
		RegistrationNumber: rowStringPtr(row["registration_number"]),
		Make:               rowStringPtr(row["make"]),
		EngineModel:        rowStringPtr(row["engine_model"]),
		VIN:                rowStringPtr(row["vin"]),
		ManufactureYear:    rowIntPtr(row["manufacture_year"]),
		YearDetails:        rowStringPtr(row["year_details"]),
		VehicleType:        rowStringPtr(row["vehicle_type"]),
		TareWeightKg:       rowFloatPtr(row["tare_weight_kg"]),
		PermissionWeight:   rowFloatPtr(row["permission_weight"]),
		PermissionUnit:     rowStringPtr(row["permission_unit"]),
		VolumeLitres:       rowFloatPtr(row["volume_litres"]),
		PalletCapacity:     rowIntPtr(row["pallet_capacity"]),
		TyreSpecification:  rowStringPtr(row["tyre_specification"]),
		WheelCount:         rowIntPtr(row["wheel_count"]),
		ValueZAR:           rowFloatPtr(row["value_zar"]),
		Notes:              rowStringPtr(row["notes"]),
		CreatedAt:          rowTime(row["created_at"]),
		UpdatedAt:          rowTime(row["updated_at"]),
	}
}

// newVehicleRow flattens a NewVehicle into the insert write set.
// Nil optionals are written as NULL.
func newVehicleRow(v models.NewVehicle) store.Row {
	return store.Row{
		"branch_id":           v.BranchID,
		"fleet_number":        v.FleetNumber,
		"registration_number": strPtrValue(v.RegistrationNumber),
		"make":                strPtrValue(v.Make),
		"engine_model":        strPtrValue(v.EngineModel),
		"vin":                 strPtrValue(v.VIN),
		"manufacture_year":    intPtrValue(v.ManufactureYear),
		"year_details":        strPtrValue(v.YearDetails),
		"vehicle_type":        strPtrValue(v.VehicleType),
		"tare_weight_kg":      floatPtrValue(v.TareWeightKg),
		"permission_weight":   floatPtrValue(v.PermissionWeight),
		"permission_unit":     strPtrValue(v.PermissionUnit),
		"volume_litres":       floatPtrValue(v.VolumeLitres),
		"pallet_capacity":     intPtrValue(v.PalletCapacity),
		"tyre_specification":  strPtrValue(v.TyreSpecification),
		"wheel_count":         intPtrValue(v.WheelCount),
		"value_zar":           floatPtrValue(v.ValueZAR),
		"notes":               strPtrValue(v.Notes),
	}
}

// vehiclePatchRow flattens a VehiclePatch into the update write set.
// Only supplied fields appear; the id never enters the write set.
func vehiclePatchRow(p models.VehiclePatch) store.Row {
	row := store.Row{}
	if p.BranchID != nil {
		row["branch_id"] = *p.BranchID
	}
	if p.FleetNumber != nil {
		row["fleet_number"] = *p.FleetNumber
	}
	if p.RegistrationNumber != nil {
		row["registration_number"] = *p.RegistrationNumber
	}
	if p.Make != nil {
		row["make"] = *p.Make
	}
	if p.EngineModel != nil {
		row["engine_model"] = *p.EngineModel
	}
	if p.VIN != nil {
		row["vin"] = *p.VIN
	}
	if p.ManufactureYear != nil {
		row["manufacture_year"] = *p.ManufactureYear
	}
	if p.YearDetails != nil {
		row["year_details"] = *p.YearDetails
	}
	if p.VehicleType != nil {
		row["vehicle_type"] = *p.VehicleType
	}
	if p.TareWeightKg != nil {
		row["tare_weight_kg"] = *p.TareWeightKg
	}
	if p.PermissionWeight != nil {
		row["permission_weight"] = *p.PermissionWeight
	}
	if p.PermissionUnit != nil {
		row["permission_unit"] = *p.PermissionUnit
	}
	if p.VolumeLitres != nil {
		row["volume_litres"] = *p.VolumeLitres
	}
	if p.PalletCapacity != nil {
		row["pallet_capacity"] = *p.PalletCapacity
	}
	if p.TyreSpecification != nil {
		row["tyre_specification"] = *p.TyreSpecification
	}
	if p.WheelCount != nil {
		row["wheel_count"] = *p.WheelCount
	}
	if p.ValueZAR != nil {
		row["value_zar"] = *p.ValueZAR
	}
	if p.Notes != nil {
		row["notes"] = *p.Notes
	}
	return row
}

func strPtrValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtrValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func floatPtrValue(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
