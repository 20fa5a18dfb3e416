package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	branchservice "github.com/fleetdeck/fleetdeck/internal/services/branch"
	vehicleservice "github.com/fleetdeck/fleetdeck/internal/services/vehicle"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs a successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	fmt.Printf("%+v\n", data)
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]interface{}{
				"code":    code,
				"message": message,
			},
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	return nil
}

// ServiceError maps a service failure to an error code for output.
func (f *OutputFormatter) ServiceError(err error) error {
	return f.Error(errorCode(err), err.Error())
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, branchservice.ErrEmptyName),
		errors.Is(err, branchservice.ErrInvalidBranchID),
		errors.Is(err, vehicleservice.ErrInvalidVehicleID),
		errors.Is(err, vehicleservice.ErrEmptyPatch):
		return "VALIDATION_ERROR"
	case errors.Is(err, branchservice.ErrNameTaken),
		errors.Is(err, branchservice.ErrBranchHasVehicles):
		return "CONFLICT"
	case errors.Is(err, branchservice.ErrBranchNotFound),
		errors.Is(err, vehicleservice.ErrVehicleNotFound),
		errors.Is(err, vehicleservice.ErrBranchMissing):
		return "NOT_FOUND"
	default:
		return "STORE_ERROR"
	}
}
