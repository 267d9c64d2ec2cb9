package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or major UI region with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Static wraps a fixed string as a View that ignores all messages.
type Static string

// Init implements View.
func (s Static) Init() tea.Cmd { return nil }

// Update implements View.
func (s Static) Update(tea.Msg) (View, tea.Cmd) { return s, nil }

// View implements View.
func (s Static) View() string { return string(s) }
