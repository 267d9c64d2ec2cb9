package dock

// Item is a member of a dock layout: a TabPanel holding panels or a
// nested StackPanel. The parent pointer is nil for the area root or for
// an item detached from the layout.
type Item interface {
	Parent() *StackPanel
	setParent(*StackPanel)

	// Dump serializes the subtree, or returns nil for an empty one.
	Dump() *ItemState

	// walkPanels visits every panel in the subtree in layout order
	// until the visitor returns false.
	walkPanels(func(Panel) bool) bool
}

// TabPanel groups panels behind a single shared region with one active
// panel visible at a time.
type TabPanel struct {
	parent *StackPanel
	panels []Panel
	active int
}

var _ Item = (*TabPanel)(nil)

// NewTabPanel returns an empty tab panel.
func NewTabPanel() *TabPanel {
	return &TabPanel{}
}

// Parent implements Item.
func (t *TabPanel) Parent() *StackPanel { return t.parent }

func (t *TabPanel) setParent(p *StackPanel) { t.parent = p }

// Panels returns the panels in tab order. The slice is shared; callers
// must not mutate it.
func (t *TabPanel) Panels() []Panel { return t.panels }

// Len returns the number of panels.
func (t *TabPanel) Len() int { return len(t.panels) }

// ActiveIndex returns the index of the visible panel, 0 when empty.
func (t *TabPanel) ActiveIndex() int { return t.active }

// ActivePanel returns the visible panel, or nil when empty.
func (t *TabPanel) ActivePanel() Panel {
	if t.active < 0 || t.active >= len(t.panels) {
		return nil
	}
	return t.panels[t.active]
}

// SetActive makes the panel at ix visible. Out-of-range indexes clamp.
func (t *TabPanel) SetActive(ix int) {
	if len(t.panels) == 0 {
		t.active = 0
		return
	}
	if ix < 0 {
		ix = 0
	}
	if ix >= len(t.panels) {
		ix = len(t.panels) - 1
	}
	t.active = ix
}

// AddPanel appends p and makes it active.
func (t *TabPanel) AddPanel(p Panel) {
	t.panels = append(t.panels, p)
	t.active = len(t.panels) - 1
}

// InsertPanelAt inserts p at ix, clamped to the valid range, and makes
// it active.
func (t *TabPanel) InsertPanelAt(p Panel, ix int) {
	if ix < 0 {
		ix = 0
	}
	if ix > len(t.panels) {
		ix = len(t.panels)
	}
	t.panels = append(t.panels, nil)
	copy(t.panels[ix+1:], t.panels[ix:])
	t.panels[ix] = p
	t.active = ix
}

// IndexOf returns p's tab index, or -1 when absent.
func (t *TabPanel) IndexOf(p Panel) int {
	for i, q := range t.panels {
		if samePanel(q, p) {
			return i
		}
	}
	return -1
}

// RemovePanel removes p. When the group becomes empty it removes itself
// from its parent stack, cascading empty-ancestor collapse. Returns
// whether p was present.
func (t *TabPanel) RemovePanel(p Panel) bool {
	ix := t.IndexOf(p)
	if ix < 0 {
		return false
	}
	t.RemovePanelAt(ix)
	return true
}

// RemovePanelAt removes the panel at ix. No-op when out of range.
func (t *TabPanel) RemovePanelAt(ix int) {
	if ix < 0 || ix >= len(t.panels) {
		return
	}
	t.panels = append(t.panels[:ix], t.panels[ix+1:]...)
	if t.active >= len(t.panels) {
		t.active = len(t.panels) - 1
	}
	if t.active < 0 {
		t.active = 0
	}
	if len(t.panels) == 0 && t.parent != nil {
		t.parent.removeChild(t)
	}
}

// ReplacePanel swaps old for new in place, keeping tab order and active
// state. Returns whether old was present.
func (t *TabPanel) ReplacePanel(old, new Panel) bool {
	ix := t.IndexOf(old)
	if ix < 0 {
		return false
	}
	t.panels[ix] = new
	return true
}

// Dump implements Item.
func (t *TabPanel) Dump() *ItemState {
	children := make([]*ItemState, 0, len(t.panels))
	for _, p := range t.panels {
		if item := p.Dump(); item != nil {
			children = append(children, item)
		}
	}
	if len(children) == 0 {
		return nil
	}
	active := t.active
	if active >= len(children) {
		active = 0
	}
	return TabsItem(active, children...)
}

func (t *TabPanel) walkPanels(visit func(Panel) bool) bool {
	for _, p := range t.panels {
		if !visit(p) {
			return false
		}
	}
	return true
}
