// Package store provides a table-scoped query layer over the SQLite database.
// Repositories talk to the Client interface rather than *sql.DB directly so
// they can be exercised against a fake store in tests.
package store

import "context"

// Row is a single database row keyed by column name.
type Row map[string]any

// Filter is an equality predicate on a single column.
type Filter struct {
	Column string
	Value  any
}

// Order is a single-column ordering clause.
type Order struct {
	Column string
	Desc   bool
}

// Query describes a table-scoped select.
// Filters are combined with AND. Limit <= 0 means no limit.
type Query struct {
	Table   string
	Filters []Filter
	Order   *Order
	Limit   int
}

// Client is the store boundary consumed by repositories.
//
// Update with a zero-row match is a success with an empty result; translating
// that into a not-found error is the repository's job. An Update patch must
// carry at least one column; an empty write set is an error. Insert and
// Update return the post-write row image so callers can display
// store-assigned values (ids, timestamps) instead of their optimistic local
// copy.
type Client interface {
	Select(ctx context.Context, q Query) ([]Row, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table string, patch Row, filters []Filter) ([]Row, error)
	Delete(ctx context.Context, table string, filters []Filter) error
}
