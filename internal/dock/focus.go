package dock

// FocusRing tracks which panel owns keyboard input, cycling in the
// order panels appear in the area's tree. The ring holds only a
// PanelID; the order is re-derived from the live layout on every
// access, so splits, closes, and reloads never leave it pointing at a
// stale position.
type FocusRing struct {
	area    *DockArea
	current PanelID
}

// NewFocusRing returns a ring over area with no panel focused yet.
func NewFocusRing(area *DockArea) *FocusRing {
	return &FocusRing{area: area}
}

// Current returns the focused panel. When nothing is focused, or the
// focused panel has left the layout, focus repairs to the active panel
// of the leading tab group.
func (r *FocusRing) Current() Panel {
	if p := r.area.FindPanel(r.current); p != nil {
		return p
	}
	p := r.fallback(true)
	if p != nil {
		r.current = p.PanelID()
	}
	return p
}

// CurrentID returns the focused panel's ID, repairing stale focus the
// same way Current does. Returns the zero ID for an empty layout.
func (r *FocusRing) CurrentID() PanelID {
	if p := r.Current(); p != nil {
		return p.PanelID()
	}
	return PanelID{}
}

// Next advances focus to the following panel in tree order, wrapping
// at the end. Returns the newly focused panel.
func (r *FocusRing) Next() Panel {
	return r.step(1)
}

// Prev moves focus to the preceding panel in tree order, wrapping at
// the start.
func (r *FocusRing) Prev() Panel {
	return r.step(-1)
}

func (r *FocusRing) step(delta int) Panel {
	cur := r.area.FindPanel(r.current)
	if cur == nil {
		p := r.fallback(delta > 0)
		if p != nil {
			r.current = p.PanelID()
		}
		return p
	}
	var order []Panel
	r.area.WalkPanels(func(p Panel) bool {
		order = append(order, p)
		return true
	})
	for i, p := range order {
		if samePanel(p, cur) {
			next := order[(i+delta+len(order))%len(order)]
			r.current = next.PanelID()
			return next
		}
	}
	return cur
}

// Focus moves focus to p. A nil panel clears focus, letting the next
// access repair to the leading tab group.
func (r *FocusRing) Focus(p Panel) {
	if p == nil {
		r.current = PanelID{}
		return
	}
	r.current = p.PanelID()
}

// fallback picks the repair target: the active panel of the first tab
// group for forward motion, the last for backward.
func (r *FocusRing) fallback(forward bool) Panel {
	switch root := r.area.Root().(type) {
	case *TabPanel:
		return root.ActivePanel()
	case *StackPanel:
		var tp *TabPanel
		if forward {
			tp = root.FirstTabPanel()
		} else {
			tp = root.LastTabPanel()
		}
		if tp != nil {
			return tp.ActivePanel()
		}
	}
	var first Panel
	r.area.WalkPanels(func(p Panel) bool {
		first = p
		return false
	})
	return first
}
