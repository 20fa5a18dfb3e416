package vehicle

import "errors"

// Domain errors for vehicle service
var (
	ErrInvalidVehicleID = errors.New("invalid vehicle ID")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrEmptyPatch       = errors.New("no fields to update")

	// ErrBranchMissing surfaces the store's foreign key constraint when a
	// vehicle references a branch that does not exist.
	ErrBranchMissing = errors.New("branch does not exist")
)
