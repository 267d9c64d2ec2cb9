package dock

import (
	"fmt"

	"dockspace/internal/ui"
)

// InvalidPanel stands in for a panel whose name had no registered factory
// when a layout was restored. It keeps the original serialized item and
// re-emits it from Dump, so an unknown panel survives a save/load cycle
// losslessly instead of being dropped.
type InvalidPanel struct {
	BasePanel
	name     string
	original *ItemState
}

var _ Panel = (*InvalidPanel)(nil)

// NewInvalidPanel wraps the unresolved panel name and its original item.
func NewInvalidPanel(name string, original *ItemState) *InvalidPanel {
	return &InvalidPanel{
		BasePanel: NewBasePanel(),
		name:      name,
		original:  original,
	}
}

// PanelName implements Panel.
func (p *InvalidPanel) PanelName() string { return "InvalidPanel" }

// Title implements Panel. It shows the missing name so the user can tell
// which panel failed to resolve.
func (p *InvalidPanel) Title() string { return p.name }

// Closeable implements Panel.
func (p *InvalidPanel) Closeable() bool { return true }

// Zoomable implements Panel.
func (p *InvalidPanel) Zoomable() bool { return false }

// Dump implements Panel, returning the stored original item untouched.
func (p *InvalidPanel) Dump() *ItemState {
	return p.original
}

// View implements Panel.
func (p *InvalidPanel) View() ui.View {
	msg := fmt.Sprintf("The `%s` panel type is not registered in the panel registry.", p.name)
	return ui.Static(ui.Styles.Empty.Render(msg))
}
