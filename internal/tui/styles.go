package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/fleetdeck/fleetdeck/internal/config"
)

// styles holds the lipgloss styles derived from the configured theme.
type styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Subtle     lipgloss.Style
	CursorRow  lipgloss.Style
	Selected   lipgloss.Style
	StatusOK   lipgloss.Style
	StatusErr  lipgloss.Style
	Modal      lipgloss.Style
	PickerItem lipgloss.Style
	PickerCur  lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	highlight := lipgloss.Color(theme.Highlight)
	subtle := lipgloss.Color(theme.Subtle)
	danger := lipgloss.Color(theme.Danger)

	return styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(highlight),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(highlight),
		Subtle:    lipgloss.NewStyle().Foreground(subtle),
		CursorRow: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("237")),
		Selected:  lipgloss.NewStyle().Foreground(highlight),
		StatusOK:  lipgloss.NewStyle().Foreground(highlight),
		StatusErr: lipgloss.NewStyle().Bold(true).Foreground(danger),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 2),
		PickerItem: lipgloss.NewStyle(),
		PickerCur:  lipgloss.NewStyle().Bold(true).Foreground(highlight),
	}
}
