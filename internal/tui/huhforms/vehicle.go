package huhforms

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

// VehicleValues backs the vehicle form. Numeric fields are edited as text
// and parsed on submit; an empty string means the field stays unset.
type VehicleValues struct {
	BranchID          int
	FleetNumber       string
	Registration      string
	Make              string
	EngineModel       string
	VIN               string
	ManufactureYear   string
	YearDetails       string
	VehicleType       string
	TareWeightKg      string
	PermissionWeight  string
	PermissionUnit    string
	VolumeLitres      string
	PalletCapacity    string
	TyreSpecification string
	WheelCount        string
	ValueZAR          string
	Notes             string
	Confirm           bool
}

// VehicleValuesFrom pre-populates form values from an existing vehicle.
func VehicleValuesFrom(v *models.Vehicle) VehicleValues {
	return VehicleValues{
		BranchID:          v.BranchID,
		FleetNumber:       v.FleetNumber,
		Registration:      strOr(v.RegistrationNumber),
		Make:              strOr(v.Make),
		EngineModel:       strOr(v.EngineModel),
		VIN:               strOr(v.VIN),
		ManufactureYear:   intOr(v.ManufactureYear),
		YearDetails:       strOr(v.YearDetails),
		VehicleType:       strOr(v.VehicleType),
		TareWeightKg:      floatOr(v.TareWeightKg),
		PermissionWeight:  floatOr(v.PermissionWeight),
		PermissionUnit:    strOr(v.PermissionUnit),
		VolumeLitres:      floatOr(v.VolumeLitres),
		PalletCapacity:    intOr(v.PalletCapacity),
		TyreSpecification: strOr(v.TyreSpecification),
		WheelCount:        intOr(v.WheelCount),
		ValueZAR:          floatOr(v.ValueZAR),
		Notes:             strOr(v.Notes),
	}
}

// ToNewVehicle parses the form values into a create payload.
func (v *VehicleValues) ToNewVehicle() (models.NewVehicle, error) {
	nv := models.NewVehicle{
		BranchID:           v.BranchID,
		FleetNumber:        strings.TrimSpace(v.FleetNumber),
		RegistrationNumber: optStr(v.Registration),
		Make:               optStr(v.Make),
		EngineModel:        optStr(v.EngineModel),
		VIN:                optStr(v.VIN),
		YearDetails:        optStr(v.YearDetails),
		VehicleType:        optStr(v.VehicleType),
		PermissionUnit:     optStr(v.PermissionUnit),
		TyreSpecification:  optStr(v.TyreSpecification),
		Notes:              optStr(v.Notes),
	}

	var err error
	if nv.ManufactureYear, err = optInt("manufacture year", v.ManufactureYear); err != nil {
		return nv, err
	}
	if nv.PalletCapacity, err = optInt("pallet capacity", v.PalletCapacity); err != nil {
		return nv, err
	}
	if nv.WheelCount, err = optInt("wheel count", v.WheelCount); err != nil {
		return nv, err
	}
	if nv.TareWeightKg, err = optFloat("tare weight", v.TareWeightKg); err != nil {
		return nv, err
	}
	if nv.PermissionWeight, err = optFloat("permission weight", v.PermissionWeight); err != nil {
		return nv, err
	}
	if nv.VolumeLitres, err = optFloat("volume", v.VolumeLitres); err != nil {
		return nv, err
	}
	if nv.ValueZAR, err = optFloat("value", v.ValueZAR); err != nil {
		return nv, err
	}
	return nv, nil
}

// ToPatch parses the form values into a full-field patch for an edit.
// The form shows every field pre-populated, so the patch carries them all;
// clearing a text field writes the empty value.
func (v *VehicleValues) ToPatch() (models.VehiclePatch, error) {
	nv, err := v.ToNewVehicle()
	if err != nil {
		return models.VehiclePatch{}, err
	}
	return models.VehiclePatch{
		BranchID:           &nv.BranchID,
		FleetNumber:        &nv.FleetNumber,
		RegistrationNumber: nv.RegistrationNumber,
		Make:               nv.Make,
		EngineModel:        nv.EngineModel,
		VIN:                nv.VIN,
		ManufactureYear:    nv.ManufactureYear,
		YearDetails:        nv.YearDetails,
		VehicleType:        nv.VehicleType,
		TareWeightKg:       nv.TareWeightKg,
		PermissionWeight:   nv.PermissionWeight,
		PermissionUnit:     nv.PermissionUnit,
		VolumeLitres:       nv.VolumeLitres,
		PalletCapacity:     nv.PalletCapacity,
		TyreSpecification:  nv.TyreSpecification,
		WheelCount:         nv.WheelCount,
		ValueZAR:           nv.ValueZAR,
		Notes:              nv.Notes,
	}, nil
}

// VehicleForm builds the multi-page create/edit vehicle form.
func VehicleForm(title string, v *VehicleValues, branches []*models.Branch, theme config.Theme) *huh.Form {
	branchOpts := make([]huh.Option[int], 0, len(branches))
	for _, b := range branches {
		branchOpts = append(branchOpts, huh.NewOption(b.Name, b.ID))
	}

	identity := huh.NewGroup(
		huh.NewSelect[int]().
			Key("branch").
			Title("Branch").
			Options(branchOpts...).
			Value(&v.BranchID),
		huh.NewInput().
			Key("fleet_number").
			Title("Fleet Number").
			Placeholder("e.g. F12").
			Validate(requireText("fleet number")).
			Value(&v.FleetNumber),
		huh.NewInput().Key("registration").Title("Registration Number").Value(&v.Registration),
		huh.NewInput().Key("make").Title("Make").Value(&v.Make),
		huh.NewInput().Key("vehicle_type").Title("Vehicle Type").Value(&v.VehicleType),
	)

	engine := huh.NewGroup(
		huh.NewInput().Key("engine_model").Title("Engine Model").Value(&v.EngineModel),
		huh.NewInput().Key("vin").Title("VIN").Value(&v.VIN),
		huh.NewInput().
			Key("manufacture_year").
			Title("Manufacture Year").
			Validate(numericText("manufacture year")).
			Value(&v.ManufactureYear),
		huh.NewInput().Key("year_details").Title("Year Details").Value(&v.YearDetails),
	)

	capacity := huh.NewGroup(
		huh.NewInput().
			Key("tare_weight_kg").
			Title("Tare Weight (kg)").
			Validate(decimalText("tare weight")).
			Value(&v.TareWeightKg),
		huh.NewInput().
			Key("permission_weight").
			Title("Permission Weight").
			Validate(decimalText("permission weight")).
			Value(&v.PermissionWeight),
		huh.NewInput().Key("permission_unit").Title("Permission Unit").Value(&v.PermissionUnit),
		huh.NewInput().
			Key("volume_litres").
			Title("Volume (litres)").
			Validate(decimalText("volume")).
			Value(&v.VolumeLitres),
		huh.NewInput().
			Key("pallet_capacity").
			Title("Pallet Capacity").
			Validate(numericText("pallet capacity")).
			Value(&v.PalletCapacity),
	)

	misc := huh.NewGroup(
		huh.NewInput().Key("tyre_specification").Title("Tyre Specification").Value(&v.TyreSpecification),
		huh.NewInput().
			Key("wheel_count").
			Title("Wheel Count").
			Validate(numericText("wheel count")).
			Value(&v.WheelCount),
		huh.NewInput().
			Key("value_zar").
			Title("Value (ZAR)").
			Validate(decimalText("value")).
			Value(&v.ValueZAR),
		huh.NewText().
			Key("notes").
			Title("Notes").
			CharLimit(2000).
			Lines(4).
			Value(&v.Notes),
		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	)

	form := huh.NewForm(identity, engine, capacity, misc)
	return form.WithKeyMap(formKeyMap()).WithTheme(FormTheme(theme))
}

func requireText(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func numericText(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("%s must be a whole number", name)
		}
		return nil
	}
}

func decimalText(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		return nil
	}
}

func strOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func floatOr(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optInt(name, s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number", name)
	}
	return &n, nil
}

func optFloat(name, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &f, nil
}
