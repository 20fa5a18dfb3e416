package tableview

// SortKey is one entry in the ordered sort configuration.
type SortKey struct {
	Column Column
	Desc   bool
}

// DefaultPageSize matches the original dashboard's fixed page length.
const DefaultPageSize = 10

// ViewState holds the transient view configuration for one table session:
// filter text, sort keys, current page, column visibility, and row
// selection. It never touches the underlying vehicle collection.
type ViewState struct {
	filterText string
	sortKeys   []SortKey
	pageIndex  int
	pageSize   int
	hidden     map[Column]bool
	selected   map[int]bool
}

// NewViewState creates a ViewState with every column visible, no filter, no
// sort, and an empty selection.
func NewViewState(pageSize int) *ViewState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ViewState{
		pageSize: pageSize,
		hidden:   make(map[Column]bool),
		selected: make(map[int]bool),
	}
}

// FilterText returns the current filter text.
func (s *ViewState) FilterText() string {
	return s.filterText
}

// SetFilterText replaces the filter text and returns to the first page,
// since the old page index is meaningless against a new row set.
func (s *ViewState) SetFilterText(text string) {
	if s.filterText == text {
		return
	}
	s.filterText = text
	s.pageIndex = 0
}

// SortKeys returns the current sort configuration in priority order.
func (s *ViewState) SortKeys() []SortKey {
	return s.sortKeys
}

// SetSort replaces the whole sort configuration.
func (s *ViewState) SetSort(keys []SortKey) {
	s.sortKeys = keys
}

// CycleSort rotates one column through none -> asc -> desc -> none, making
// it the primary sort key. Other keys are dropped, matching how the
// dashboard's column headers behave.
func (s *ViewState) CycleSort(col Column) {
	if len(s.sortKeys) == 0 || s.sortKeys[0].Column != col {
		s.sortKeys = []SortKey{{Column: col}}
		return
	}
	if !s.sortKeys[0].Desc {
		s.sortKeys = []SortKey{{Column: col, Desc: true}}
		return
	}
	s.sortKeys = nil
}

// PageIndex returns the requested page index. Render clamps it against the
// actual filtered row count.
func (s *ViewState) PageIndex() int {
	return s.pageIndex
}

// PageSize returns the fixed page size.
func (s *ViewState) PageSize() int {
	return s.pageSize
}

// FirstPage jumps to the first page.
func (s *ViewState) FirstPage() {
	s.pageIndex = 0
}

// PrevPage moves back one page; a no-op on the first page.
func (s *ViewState) PrevPage() {
	if s.pageIndex > 0 {
		s.pageIndex--
	}
}

// NextPage advances one page; a no-op on the last page.
func (s *ViewState) NextPage(pageCount int) {
	if s.pageIndex < pageCount-1 {
		s.pageIndex++
	}
}

// LastPage jumps to the last page.
func (s *ViewState) LastPage(pageCount int) {
	if pageCount > 0 {
		s.pageIndex = pageCount - 1
	} else {
		s.pageIndex = 0
	}
}

// SetPage requests a specific page; Render clamps out-of-range values.
func (s *ViewState) SetPage(index int) {
	if index < 0 {
		index = 0
	}
	s.pageIndex = index
}

// IsColumnVisible reports whether a column is currently rendered.
// Hidden columns keep their row data and stay eligible for sort and filter.
func (s *ViewState) IsColumnVisible(col Column) bool {
	return !s.hidden[col]
}

// SetColumnVisible shows or hides a column.
func (s *ViewState) SetColumnVisible(col Column, visible bool) {
	if visible {
		delete(s.hidden, col)
	} else {
		s.hidden[col] = true
	}
}

// ToggleColumnVisible flips a column's visibility.
func (s *ViewState) ToggleColumnVisible(col Column) {
	s.SetColumnVisible(col, !s.IsColumnVisible(col))
}

// ToggleRowSelected flips selection for one row id. Selection is keyed by id
// and is independent of filter, sort, and pagination: a row leaving the
// visible view keeps its selection for the rest of the session.
func (s *ViewState) ToggleRowSelected(id int) {
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
}

// IsRowSelected reports whether a row id is selected.
func (s *ViewState) IsRowSelected(id int) bool {
	return s.selected[id]
}

// ClearSelection empties the selection set.
func (s *ViewState) ClearSelection() {
	s.selected = make(map[int]bool)
}

// SelectedCount returns the number of selected rows across the whole
// collection, visible or not.
func (s *ViewState) SelectedCount() int {
	return len(s.selected)
}
