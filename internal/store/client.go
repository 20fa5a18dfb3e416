package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// SQLClient implements Client on top of database/sql.
//
// Table and column names are supplied by repository code and are fixed at
// compile time; only values are bound as parameters.
type SQLClient struct {
	db *sql.DB
}

// NewSQLClient wraps an open database connection.
func NewSQLClient(db *sql.DB) *SQLClient {
	return &SQLClient{db: db}
}

// Compile-time verification that *SQLClient implements Client
var _ Client = (*SQLClient)(nil)

// Select runs a table-scoped query and returns all matching rows.
func (c *SQLClient) Select(ctx context.Context, q Query) ([]Row, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s", q.Table)
	args := appendWhere(&b, q.Filters)
	if q.Order != nil {
		dir := "ASC"
		if q.Order.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s", q.Order.Column, dir)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
	}

	rows, err := c.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, wrapErr("select", q.Table, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "table", q.Table, "error", err)
		}
	}()

	out, err := scanRows(rows)
	if err != nil {
		return nil, wrapErr("select", q.Table, err)
	}
	return out, nil
}

// Insert adds a single row and returns the persisted row image,
// including store-assigned id and timestamp defaults.
func (c *SQLClient) Insert(ctx context.Context, table string, row Row) (Row, error) {
	cols := sortedKeys(row)
	args := make([]any, 0, len(cols))
	placeholders := make([]string, 0, len(cols))
	for _, col := range cols {
		args = append(args, row[col])
		placeholders = append(placeholders, "?")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("insert", table, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, wrapErr("insert", table, err)
	}

	// Read back so callers see defaults the store filled in.
	inserted, err := c.Select(ctx, Query{
		Table:   table,
		Filters: []Filter{{Column: "id", Value: id}},
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, wrapErr("insert", table, sql.ErrNoRows)
	}
	return inserted[0], nil
}

// Update applies patch to every row matching filters and returns the
// post-write rows. A zero-row match returns an empty slice and no error;
// an empty patch is rejected before any SQL is built.
func (c *SQLClient) Update(ctx context.Context, table string, patch Row, filters []Filter) ([]Row, error) {
	if len(patch) == 0 {
		return nil, &Error{Op: "update", Table: table, Kind: KindGeneric, Err: errEmptyWriteSet}
	}

	cols := sortedKeys(patch)
	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+len(filters))
	for _, col := range cols {
		sets = append(sets, col+" = ?")
		args = append(args, patch[col])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "UPDATE %s SET %s", table, strings.Join(sets, ", "))
	args = append(args, appendWhere(&b, filters)...)

	result, err := c.db.ExecContext(ctx, b.String(), args...)
	if err != nil {
		return nil, wrapErr("update", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, wrapErr("update", table, err)
	}
	if affected == 0 {
		return []Row{}, nil
	}

	return c.Select(ctx, Query{Table: table, Filters: filters})
}

// Delete removes every row matching filters.
func (c *SQLClient) Delete(ctx context.Context, table string, filters []Filter) error {
	var b strings.Builder
	fmt.Fprintf(&b, "DELETE FROM %s", table)
	args := appendWhere(&b, filters)
	if _, err := c.db.ExecContext(ctx, b.String(), args...); err != nil {
		return wrapErr("delete", table, err)
	}
	return nil
}

// appendWhere writes the WHERE clause for equality filters and returns the
// bound arguments in clause order.
func appendWhere(b *strings.Builder, filters []Filter) []any {
	if len(filters) == 0 {
		return nil
	}
	preds := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		preds = append(preds, f.Column+" = ?")
		args = append(args, f.Value)
	}
	fmt.Fprintf(b, " WHERE %s", strings.Join(preds, " AND "))
	return args
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]Row, 0, 16)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// sortedKeys returns the map keys in a deterministic order so generated SQL
// is stable across runs.
func sortedKeys(row Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
