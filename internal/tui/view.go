package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fleetdeck/fleetdeck/internal/tableview"
)

const maxCellWidth = 28

// View implements tea.Model.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.Width == 0 {
		view.Content = "Loading..."
		return view
	}

	base := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTable(),
		m.viewFooter(),
	)

	if overlay := m.viewOverlay(); overlay != "" {
		view.Content = lipgloss.Place(
			m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Styles.Modal.Render(overlay),
		)
		return view
	}

	view.Content = base
	return view
}

func (m Model) viewHeader() string {
	scope := "All branches"
	if b := m.currentBranch(); b != nil {
		scope = b.Name
	}

	title := m.Styles.Title.Render("Fleetdeck")
	branch := m.Styles.Subtle.Render(" · ") + scope

	filter := ""
	if m.Mode == filterMode {
		filter = "  " + m.FilterInput.View()
	} else if text := m.Table.FilterText(); text != "" {
		filter = m.Styles.Subtle.Render(fmt.Sprintf("  filter: %q", text))
	}

	return title + branch + filter + "\n"
}

// viewTable renders the current page as a fixed-width text table.
func (m Model) viewTable() string {
	if len(m.Tbl.Columns) == 0 {
		return m.Styles.Subtle.Render("  All columns hidden. Press v to choose columns.")
	}

	widths := m.columnWidths()

	var b strings.Builder

	// Header row with sort indicators.
	cells := make([]string, 0, len(m.Tbl.Columns)+1)
	cells = append(cells, "   ")
	for i, col := range m.Tbl.Columns {
		cells = append(cells, pad(col.Title()+m.sortIndicator(col), widths[i]))
	}
	b.WriteString(m.Styles.Header.Render(strings.Join(cells, "  ")))
	b.WriteString("\n")
	b.WriteString(m.Styles.Subtle.Render(strings.Repeat("─", min(m.Width, totalWidth(widths)))))
	b.WriteString("\n")

	if len(m.Tbl.VisibleRows) == 0 {
		b.WriteString(m.Styles.Subtle.Render("  No vehicles to show."))
		b.WriteString("\n")
		return b.String()
	}

	for i, v := range m.Tbl.VisibleRows {
		marker := "   "
		if m.Table.IsRowSelected(v.ID) {
			marker = m.Styles.Selected.Render(" ✓ ")
		}

		cells := make([]string, 0, len(m.Tbl.Columns)+1)
		cells = append(cells, marker)
		for c, col := range m.Tbl.Columns {
			cells = append(cells, pad(truncate(col.CellValue(v), widths[c]), widths[c]))
		}

		row := strings.Join(cells, "  ")
		if i == m.Cursor {
			row = m.Styles.CursorRow.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewFooter() string {
	page := fmt.Sprintf("page %d/%d", m.Tbl.PageIndex+1, max(m.Tbl.PageCount, 1))
	counts := fmt.Sprintf("%d vehicle(s)", m.Tbl.TotalFilteredCount)
	parts := []string{counts, page}
	if m.Tbl.SelectedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d row(s) selected", m.Tbl.SelectedCount))
	}

	line := m.Styles.Subtle.Render(strings.Join(parts, " · "))

	status := ""
	if m.Status != "" {
		if m.StatusIsErr {
			status = "\n" + m.Styles.StatusErr.Render(m.Status)
		} else {
			status = "\n" + m.Styles.StatusOK.Render(m.Status)
		}
	}

	hints := m.Styles.Subtle.Render(
		"/: filter  1-6: sort  h/l: page  space: select  v: columns  b: branch  a: add  e: edit  d: delete  ?: help  q: quit",
	)

	return "\n" + line + status + "\n" + hints
}

// sortIndicator marks a column's place in the sort order.
func (m Model) sortIndicator(col tableview.Column) string {
	for i, k := range m.Table.SortKeys() {
		if k.Column != col {
			continue
		}
		arrow := " ▲"
		if k.Desc {
			arrow = " ▼"
		}
		if len(m.Table.SortKeys()) > 1 {
			return fmt.Sprintf("%s%d", arrow, i+1)
		}
		return arrow
	}
	return ""
}

// columnWidths sizes each visible column to its widest cell, capped so a
// single long value cannot swallow the terminal.
func (m Model) columnWidths() []int {
	widths := make([]int, len(m.Tbl.Columns))
	for i, col := range m.Tbl.Columns {
		w := lipgloss.Width(col.Title()) + 3 // room for the sort indicator
		for _, v := range m.Tbl.VisibleRows {
			if cw := lipgloss.Width(col.CellValue(v)); cw > w {
				w = cw
			}
		}
		widths[i] = min(w, maxCellWidth)
	}
	return widths
}

// ----------------------------------------------------------------------------
// Overlays

func (m Model) viewOverlay() string {
	switch m.Mode {
	case branchFormMode:
		if m.BranchForm != nil {
			return m.BranchForm.form.View()
		}
	case vehicleFormMode:
		if m.VehicleForm != nil {
			return m.VehicleForm.form.View()
		}
	case branchPickerMode:
		return m.viewBranchPicker()
	case deleteBranchConfirmMode:
		if b := m.currentBranch(); b != nil {
			return fmt.Sprintf("Delete branch %q?\n\n%s", b.Name,
				m.Styles.Subtle.Render("y: delete  n: cancel"))
		}
	case deleteVehicleConfirmMode:
		if v := m.cursorVehicle(); v != nil {
			return fmt.Sprintf("Delete vehicle %s?\n\n%s", v.FleetNumber,
				m.Styles.Subtle.Render("y: delete  n: cancel"))
		}
	case columnsMode:
		return m.viewColumnToggles()
	case notesMode:
		if v := m.cursorVehicle(); v != nil {
			width := min(m.Width-10, 72)
			title := m.Styles.Title.Render("Notes · " + v.FleetNumber)
			return title + "\n\n" + m.Notes.Render(v.Notes, width)
		}
	case helpMode:
		return m.viewHelp()
	}
	return ""
}

func (m Model) viewBranchPicker() string {
	var b strings.Builder
	b.WriteString(m.Styles.Title.Render("Switch branch"))
	b.WriteString("\n\n")

	names := make([]string, 0, len(m.Branches)+1)
	names = append(names, "All branches")
	for _, br := range m.Branches {
		names = append(names, br.Name)
	}

	for i, name := range names {
		if i == m.PickerIdx {
			b.WriteString(m.Styles.PickerCur.Render("> " + name))
		} else {
			b.WriteString(m.Styles.PickerItem.Render("  " + name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.Styles.Subtle.Render("j/k: move  enter: switch  esc: cancel"))
	return b.String()
}

func (m Model) viewColumnToggles() string {
	var b strings.Builder
	b.WriteString(m.Styles.Title.Render("Columns"))
	b.WriteString("\n\n")

	for i, col := range tableview.DefaultColumns {
		mark := "[x]"
		if !m.Table.IsColumnVisible(col) {
			mark = "[ ]"
		}
		b.WriteString(fmt.Sprintf("%d %s %s\n", i+1, mark, col.Title()))
	}

	b.WriteString("\n")
	b.WriteString(m.Styles.Subtle.Render("1-6: toggle  esc: done"))
	return b.String()
}

func (m Model) viewHelp() string {
	rows := [][2]string{
		{"/", "filter by fleet number"},
		{"x", "clear filter and sort"},
		{"1-6", "cycle sort on column"},
		{"j/k", "move cursor"},
		{"h/l", "previous/next page"},
		{"g/G", "first/last page"},
		{"space", "select row"},
		{"c", "clear selection"},
		{"v", "toggle columns"},
		{"b", "switch branch"},
		{"a/e/d", "add/edit/delete vehicle"},
		{"n", "view notes"},
		{"B/R/D", "create/rename/delete branch"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.Styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-8s %s\n", r[0], r[1]))
	}
	return b.String()
}

// ----------------------------------------------------------------------------
// Layout helpers

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func totalWidth(widths []int) int {
	total := 3 // marker column
	for _, w := range widths {
		total += w + 2
	}
	return total
}
