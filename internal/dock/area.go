package dock

import (
	"context"
	"fmt"
)

// DockArea owns one dock layout: a root item, the zoom state, and the
// layout lock. The live StackPanel/TabPanel model is the single source
// of truth; serialized state is derived from it on demand.
type DockArea struct {
	version  int
	root     Item
	zoomed   Panel
	locked   bool
	onChange func()
	states   StateStore
}

// NewDockArea returns an area with an empty root tab panel. version is
// the application's layout schema version, compared on restore.
func NewDockArea(version int) *DockArea {
	return &DockArea{version: version, root: NewTabPanel()}
}

// Version returns the layout schema version.
func (a *DockArea) Version() int { return a.version }

// Root returns the root item.
func (a *DockArea) Root() Item { return a.root }

// SetRoot replaces the whole layout. The previous root is discarded and
// zoom is cleared.
func (a *DockArea) SetRoot(item Item) {
	if item == nil {
		item = NewTabPanel()
	}
	item.setParent(nil)
	a.root = item
	a.zoomed = nil
	a.LayoutChanged()
}

// SetOnLayoutChanged registers a hook invoked after every layout
// mutation, typically wired to the autosaver's Notify.
func (a *DockArea) SetOnLayoutChanged(fn func()) { a.onChange = fn }

// LayoutChanged fires the layout-changed hook. Mutations made directly
// on items must call this; the area's own operations already do.
func (a *DockArea) LayoutChanged() {
	if a.onChange != nil {
		a.onChange()
	}
}

// SetStateStore installs the keyed state hooks panels use for
// persistence beyond the layout snapshot. A nil store restores the
// discarding default.
func (a *DockArea) SetStateStore(s StateStore) { a.states = s }

// ReadState reads the value saved under key through the installed state
// hooks. Without an installed store it returns (nil, nil).
func (a *DockArea) ReadState(ctx context.Context, key string) ([]byte, error) {
	if a.states == nil {
		return nil, nil
	}
	return a.states.ReadState(ctx, key)
}

// WriteState saves value under key through the installed state hooks.
// Without an installed store the value is discarded.
func (a *DockArea) WriteState(ctx context.Context, key string, value []byte) error {
	if a.states == nil {
		return nil
	}
	return a.states.WriteState(ctx, key, value)
}

// SetLocked toggles the layout lock. The lock gates user-driven layout
// edits at the call sites; programmatic operations stay available.
func (a *DockArea) SetLocked(locked bool) { a.locked = locked }

// IsLocked reports the layout lock.
func (a *DockArea) IsLocked() bool { return a.locked }

// WalkPanels visits every panel in layout order until visit returns
// false.
func (a *DockArea) WalkPanels(visit func(Panel) bool) {
	a.root.walkPanels(visit)
}

// PanelAs returns the first panel in layout order assignable to P.
func PanelAs[P Panel](a *DockArea) (P, bool) {
	var found P
	ok := false
	a.WalkPanels(func(p Panel) bool {
		if v, isP := p.(P); isP {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// FindPanel returns the panel with the given ID, or nil.
func (a *DockArea) FindPanel(id PanelID) Panel {
	var found Panel
	a.WalkPanels(func(p Panel) bool {
		if p.PanelID() == id {
			found = p
			return false
		}
		return true
	})
	return found
}

// AddPanel docks p at an edge of the whole area, or into the first tab
// group for PlacementCenter. size of 0 grows; otherwise the new region
// is fixed at size cells.
func (a *DockArea) AddPanel(p Panel, placement Placement, size int) {
	if placement == PlacementCenter {
		a.addCenter(p)
		a.LayoutChanged()
		return
	}
	tp := NewTabPanel()
	tp.AddPanel(p)
	var slot *ResizablePanel
	if size > 0 {
		slot = SizedPanel(size)
	}
	axis := placement.Axis()
	root, ok := a.root.(*StackPanel)
	if !ok || root.Axis() != axis {
		stack := NewStackPanel(axis)
		old := a.root
		old.setParent(nil)
		stack.AddChild(old, GrowPanel())
		a.root = stack
		root = stack
	}
	if placement.Before() {
		root.InsertChildAt(0, tp, slot)
	} else {
		root.AddChild(tp, slot)
	}
	a.LayoutChanged()
}

// AddPanelAt docks p next to the root stack child at ix: Top and Left
// placements insert before it, Right and Bottom after. A non-stack root
// is first wrapped in a stack along the placement's axis. size of 0
// grows; otherwise the new region is fixed at size cells.
func (a *DockArea) AddPanelAt(p Panel, ix int, placement Placement, size int) {
	if placement == PlacementCenter {
		a.addCenter(p)
		a.LayoutChanged()
		return
	}
	root, ok := a.root.(*StackPanel)
	if !ok {
		stack := NewStackPanel(placement.Axis())
		old := a.root
		old.setParent(nil)
		stack.AddChild(old, GrowPanel())
		a.root = stack
		root = stack
	}
	root.InsertPanelAt(p, ix, placement, size)
	a.LayoutChanged()
}

// Reset discards the current layout and installs the one build returns.
func (a *DockArea) Reset(build func() Item) {
	if build == nil {
		a.SetRoot(nil)
		return
	}
	a.SetRoot(build())
}

func (a *DockArea) addCenter(p Panel) {
	var target *TabPanel
	switch root := a.root.(type) {
	case *TabPanel:
		target = root
	case *StackPanel:
		root.walkItems(func(it Item) bool {
			if tp, ok := it.(*TabPanel); ok {
				target = tp
				return false
			}
			return true
		})
		if target == nil {
			target = NewTabPanel()
			root.AddChild(target, GrowPanel())
		}
	}
	target.AddPanel(p)
}

// SplitPanel opens newPanel in a fresh region next to the region holding
// target, in the direction dir names. fraction is the share the new
// region takes; values outside (0, 1) fall back to an even split.
func (a *DockArea) SplitPanel(target Panel, dir Split, newPanel Panel, fraction float64) error {
	tp := a.tabPanelOf(target)
	if tp == nil {
		return fmt.Errorf("split: panel %q is not in the layout", target.Title())
	}
	if fraction <= 0 || fraction >= 1 {
		fraction = 0.5
	}
	fresh := NewTabPanel()
	fresh.AddPanel(newPanel)

	axis := Horizontal
	if dir.IsVertical() {
		axis = Vertical
	}
	parent := tp.Parent()
	if parent != nil && parent.Axis() == axis {
		slot := FractionPanel(fraction)
		if dir == SplitLeft || dir == SplitAbove {
			parent.InsertBefore(tp, fresh, slot)
		} else {
			parent.InsertAfter(tp, fresh, slot)
		}
		a.LayoutChanged()
		return nil
	}

	sub := NewStackPanel(axis)
	if parent != nil {
		parent.ReplaceChild(tp, sub)
	} else {
		a.root = sub
	}
	if dir == SplitLeft || dir == SplitAbove {
		sub.AddChild(fresh, FractionPanel(fraction))
		sub.AddChild(tp, GrowPanel())
	} else {
		sub.AddChild(tp, GrowPanel())
		sub.AddChild(fresh, FractionPanel(fraction))
	}
	a.LayoutChanged()
	return nil
}

func (a *DockArea) tabPanelOf(p Panel) *TabPanel {
	switch root := a.root.(type) {
	case *TabPanel:
		if root.IndexOf(p) >= 0 {
			return root
		}
	case *StackPanel:
		return root.findTabPanel(p)
	}
	return nil
}

// RemovePanel removes p from the layout, collapsing emptied ancestors.
// A zoomed panel that is removed also leaves zoom. Returns whether p
// was present.
func (a *DockArea) RemovePanel(p Panel) bool {
	tp := a.tabPanelOf(p)
	if tp == nil {
		return false
	}
	tp.RemovePanel(p)
	if a.zoomed != nil && samePanel(a.zoomed, p) {
		a.zoomed = nil
	}
	a.LayoutChanged()
	return true
}

// ToggleZoom zooms p, replacing any currently zoomed panel. Toggling
// the already-zoomed panel leaves zoom. Non-zoomable panels are
// ignored.
func (a *DockArea) ToggleZoom(p Panel) {
	if p == nil {
		a.zoomed = nil
		return
	}
	if a.zoomed != nil && samePanel(a.zoomed, p) {
		a.zoomed = nil
		return
	}
	if !p.Zoomable() {
		return
	}
	a.zoomed = p
}

// ZoomedPanel returns the zoomed panel, or nil.
func (a *DockArea) ZoomedPanel() Panel { return a.zoomed }

// Dump snapshots the layout for persistence.
func (a *DockArea) Dump() *AreaState {
	v := a.version
	return &AreaState{Version: &v, Root: a.root.Dump()}
}

// Load rebuilds the live model from a saved snapshot. Unknown panel
// names become InvalidPanel placeholders rather than failing the load.
func (a *DockArea) Load(state *AreaState) error {
	if state == nil || state.Root == nil {
		return fmt.Errorf("load layout: empty state")
	}
	if err := state.Root.Validate(); err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	root := a.buildItem(state.Root)
	if root == nil {
		root = NewTabPanel()
	}
	root.setParent(nil)
	a.root = root
	a.zoomed = nil
	a.LayoutChanged()
	return nil
}

// buildItem turns a validated item into live model nodes. Bare panel
// items normalize into single-tab groups.
func (a *DockArea) buildItem(item *ItemState) Item {
	switch item.Type {
	case ItemPanel:
		tp := NewTabPanel()
		tp.AddPanel(a.buildPanel(item))
		return tp
	case ItemTabs:
		tp := NewTabPanel()
		for _, c := range item.Children {
			switch c.Type {
			case ItemPanel:
				tp.AddPanel(a.buildPanel(c))
			case ItemTabs:
				// Nested tabs flatten into the outer group.
				for _, cc := range c.Children {
					tp.AddPanel(a.buildPanel(cc))
				}
			}
		}
		tp.SetActive(item.ActiveIndex)
		return tp
	case ItemSplit:
		return a.buildSplit(item)
	}
	return nil
}

// buildSplit unfolds a chain of same-axis nested splits back into one
// N-child stack with compound fraction shares.
func (a *DockArea) buildSplit(item *ItemState) *StackPanel {
	stack := NewStackPanel(item.Axis)
	var add func(it *ItemState, weight float64)
	add = func(it *ItemState, weight float64) {
		if it.Type == ItemSplit && it.Axis == item.Axis {
			add(it.First, weight*it.Fraction)
			add(it.Second, weight*(1-it.Fraction))
			return
		}
		child := a.buildItem(it)
		if child == nil {
			return
		}
		var slot *ResizablePanel
		if weight > 0 && weight < 1 {
			slot = FractionPanel(weight)
		}
		stack.AddChild(child, slot)
	}
	add(item, 1)
	return stack
}

func (a *DockArea) buildPanel(item *ItemState) Panel {
	factory, ok := lookupFactory(item.PanelName)
	if !ok {
		return NewInvalidPanel(item.PanelName, item)
	}
	return factory(a, item)
}

// Restore loads the layout from store. Absent state keeps the current
// layout. A version mismatch calls confirm with the saved and expected
// versions: accepting keeps the current (default) layout and persists
// it; declining loads the old snapshot as-is.
func (a *DockArea) Restore(store Store, confirm func(saved, expected int) bool) error {
	data, err := store.LoadLayout()
	if err != nil {
		return fmt.Errorf("restore layout: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	state, err := DecodeAreaState(data)
	if err != nil {
		return fmt.Errorf("restore layout: %w", err)
	}
	saved := 0
	if state.Version != nil {
		saved = *state.Version
	}
	if saved != a.version && confirm != nil && confirm(saved, a.version) {
		snapshot, err := EncodeAreaState(a.Dump())
		if err != nil {
			return fmt.Errorf("restore layout: %w", err)
		}
		return store.SaveLayout(snapshot)
	}
	return a.Load(state)
}

// walkItems visits every item in the subtree depth-first until visit
// returns false.
func (s *StackPanel) walkItems(visit func(Item) bool) bool {
	for _, c := range s.children {
		if !visit(c) {
			return false
		}
		if sub, ok := c.(*StackPanel); ok {
			if !sub.walkItems(visit) {
				return false
			}
		}
	}
	return true
}
