package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/fleetdeck/fleetdeck/internal/config"
)

// FormTheme builds a huh theme from the dashboard colors.
func FormTheme(theme config.Theme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		highlight := lipgloss.Color(theme.Highlight)
		subtle := lipgloss.Color(theme.Subtle)
		danger := lipgloss.Color(theme.Danger)

		t.Focused.Base = t.Focused.Base.BorderForeground(highlight)
		t.Focused.Title = t.Focused.Title.Foreground(highlight).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(danger)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(danger)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(highlight)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(highlight)
		t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(subtle)
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(highlight).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Background(subtle)

		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(highlight)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(highlight)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}
