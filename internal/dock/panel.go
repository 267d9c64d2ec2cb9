package dock

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"dockspace/internal/ui"
)

// PanelID is a process-unique 128-bit identifier assigned at panel
// creation and stable for the panel's lifetime. It correlates a live
// panel with its registry name and serialized state during reload.
type PanelID uuid.UUID

// NewPanelID returns a random PanelID.
func NewPanelID() PanelID {
	return PanelID(uuid.New())
}

// String implements fmt.Stringer.
func (id PanelID) String() string {
	return uuid.UUID(id).String()
}

// MenuItem is one entry of a panel's popup menu.
type MenuItem struct {
	Label string
	Cmd   tea.Cmd
}

// PopupMenu accumulates the menu entries a panel contributes.
type PopupMenu struct {
	items []MenuItem
}

// Item appends a menu entry and returns the menu for chaining.
func (m *PopupMenu) Item(label string, cmd tea.Cmd) *PopupMenu {
	m.items = append(m.items, MenuItem{Label: label, Cmd: cmd})
	return m
}

// Items returns the accumulated entries.
func (m *PopupMenu) Items() []MenuItem {
	return m.items
}

// ToolbarButton is an action button shown in a panel's tab bar corner.
type ToolbarButton struct {
	Icon string
	Help string
	Cmd  tea.Cmd
}

// Panel is the capability interface every dockable content type
// implements. A Panel value is the type-erased handle heterogeneous
// panels share; use PanelAs for typed lookup.
type Panel interface {
	// PanelName is the stable type name used to save and load the
	// layout; it is the join key between saved state and live types and
	// must not change across versions.
	PanelName() string

	// PanelID identifies this panel instance within the process.
	PanelID() PanelID

	Title() string
	Closeable() bool
	Zoomable() bool
	Collapsible() bool

	// PopupMenu adds the panel's extra menu entries and returns the menu.
	PopupMenu(menu *PopupMenu) *PopupMenu

	// ToolbarButtons returns action buttons for the panel's tab bar.
	ToolbarButtons() []ToolbarButton

	// Dump returns the panel's serializable state.
	Dump() *ItemState

	// View returns the content view drawn inside the panel's bounds. The
	// engine never inspects the content beyond this interface.
	View() ui.View
}

// BasePanel supplies the default panel capabilities: closeable, zoomable,
// not collapsible, no menu entries, no toolbar buttons. Concrete panels
// embed it and implement PanelName, Title, Dump, and View.
type BasePanel struct {
	id PanelID
}

// NewBasePanel returns a BasePanel with a fresh PanelID.
func NewBasePanel() BasePanel {
	return BasePanel{id: NewPanelID()}
}

// PanelID implements Panel.
func (b BasePanel) PanelID() PanelID { return b.id }

// Title implements Panel.
func (b BasePanel) Title() string { return "Unnamed" }

// Closeable implements Panel.
func (b BasePanel) Closeable() bool { return true }

// Zoomable implements Panel.
func (b BasePanel) Zoomable() bool { return true }

// Collapsible implements Panel.
func (b BasePanel) Collapsible() bool { return false }

// PopupMenu implements Panel.
func (b BasePanel) PopupMenu(menu *PopupMenu) *PopupMenu { return menu }

// ToolbarButtons implements Panel.
func (b BasePanel) ToolbarButtons() []ToolbarButton { return nil }

// samePanel reports identity equality between two panel handles.
func samePanel(a, b Panel) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.PanelID() == b.PanelID()
}
