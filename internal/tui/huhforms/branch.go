// Package huhforms builds the huh forms used by the dashboard modals.
package huhforms

import (
	"charm.land/huh/v2"

	"github.com/fleetdeck/fleetdeck/internal/config"
)

// BranchForm builds the create/rename branch form. The title adjusts to
// whether a branch is being created or renamed.
func BranchForm(title string, name *string, confirm *bool, theme config.Theme) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Branch Name").
			Placeholder("e.g. Cape Town").
			Value(name),

		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	))
	return form.WithKeyMap(formKeyMap()).WithTheme(FormTheme(theme))
}
