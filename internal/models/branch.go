package models

import "time"

// Branch is an organizational grouping that owns zero or more vehicles.
// Branch names are unique across the fleet.
type Branch struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

// GetID supports the CLI's quiet output mode.
func (b *Branch) GetID() int {
	return b.ID
}
