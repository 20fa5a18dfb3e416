package branch

import "errors"

// Domain errors for branch service
var (
	// Validation errors
	ErrEmptyName       = errors.New("branch name cannot be empty")
	ErrInvalidBranchID = errors.New("invalid branch ID")

	// Business logic errors. The conflict messages are shown to users
	// verbatim, hence the sentence casing.
	ErrNameTaken         = errors.New("A branch with this name already exists.")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrBranchHasVehicles = errors.New("Cannot delete branch: Vehicles are still associated with it.")
)
