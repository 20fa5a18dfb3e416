package tableview

import (
	"sort"
	"strings"

	"github.com/fleetdeck/fleetdeck/internal/models"
)

// View is the rendered slice handed to the UI.
type View struct {
	// VisibleRows is the current page of the filtered, sorted collection.
	VisibleRows []*models.Vehicle

	// Columns are the visible columns in table order.
	Columns []Column

	PageIndex          int
	PageCount          int
	TotalFilteredCount int
	SelectedCount      int
}

// Render computes the view for the given rows and state.
// Recompute order is always filter, then sort, then paginate. The input
// slice is never mutated; sorting happens on a copy.
func Render(rows []*models.Vehicle, s *ViewState) View {
	filtered := filterRows(rows, s.filterText)
	sorted := sortRows(filtered, s.sortKeys)

	pageCount := 0
	if s.pageSize > 0 {
		pageCount = (len(sorted) + s.pageSize - 1) / s.pageSize
	}

	pageIndex := clampPage(s.pageIndex, pageCount)

	start := pageIndex * s.pageSize
	end := min(start+s.pageSize, len(sorted))
	var visible []*models.Vehicle
	if start < end {
		visible = sorted[start:end]
	}

	columns := make([]Column, 0, len(DefaultColumns))
	for _, col := range DefaultColumns {
		if s.IsColumnVisible(col) {
			columns = append(columns, col)
		}
	}

	return View{
		VisibleRows:        visible,
		Columns:            columns,
		PageIndex:          pageIndex,
		PageCount:          pageCount,
		TotalFilteredCount: len(sorted),
		SelectedCount:      s.SelectedCount(),
	}
}

// filterRows keeps vehicles whose fleet number contains the filter text,
// case-insensitively. An empty filter returns the input as-is.
func filterRows(rows []*models.Vehicle, text string) []*models.Vehicle {
	if text == "" {
		return rows
	}
	needle := strings.ToLower(text)
	out := make([]*models.Vehicle, 0, len(rows))
	for _, v := range rows {
		if strings.Contains(strings.ToLower(v.FleetNumber), needle) {
			out = append(out, v)
		}
	}
	return out
}

// sortRows applies the sort keys in priority order. The sort is stable:
// rows with equal keys keep their input order.
func sortRows(rows []*models.Vehicle, keys []SortKey) []*models.Vehicle {
	if len(keys) == 0 {
		return rows
	}
	out := make([]*models.Vehicle, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range keys {
			c := key.Column.compare(out[i], out[j])
			if c == 0 {
				continue
			}
			if key.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}

// clampPage keeps the page index inside [0, pageCount-1], or 0 when there
// are no pages.
func clampPage(index, pageCount int) int {
	if pageCount == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index > pageCount-1 {
		return pageCount - 1
	}
	return index
}
