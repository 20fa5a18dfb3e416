// Package components holds small reusable render helpers for the TUI.
package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

// NotesViewer renders vehicle notes as markdown. Glamour renderers are
// cached by wrap width because building one is expensive.
type NotesViewer struct {
	renderers sync.Map // map[int]*glamour.TermRenderer
}

// NewNotesViewer creates an empty viewer.
func NewNotesViewer() *NotesViewer {
	return &NotesViewer{}
}

func (n *NotesViewer) renderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := n.renderers.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	n.renderers.Store(width, renderer)
	return renderer, nil
}

// Render returns the notes as wrapped, styled markdown. Falls back to the
// raw text if rendering fails, and to a placeholder when there are no notes.
func (n *NotesViewer) Render(notes *string, width int) string {
	if notes != nil && strings.TrimSpace(*notes) != "" {
		renderer, err := n.renderer(width)
		if err == nil {
			rendered, err := renderer.Render(*notes)
			if err == nil {
				return strings.TrimSpace(rendered)
			}
		}
		return *notes
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Render("No notes")
}
