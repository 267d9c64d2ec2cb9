package dock

// StackPanel arranges child items along one axis, delegating space
// distribution to a ResizablePanelGroup whose slots stay index-aligned
// with the children.
type StackPanel struct {
	parent   *StackPanel
	axis     Axis
	children []Item
	group    *ResizablePanelGroup
}

var _ Item = (*StackPanel)(nil)

// NewStackPanel returns an empty stack along axis.
func NewStackPanel(axis Axis) *StackPanel {
	return &StackPanel{axis: axis, group: NewResizablePanelGroup(axis)}
}

// Parent implements Item.
func (s *StackPanel) Parent() *StackPanel { return s.parent }

func (s *StackPanel) setParent(p *StackPanel) { s.parent = p }

// Axis returns the stack's layout axis.
func (s *StackPanel) Axis() Axis { return s.axis }

// SetAxis flips the layout axis in place, keeping children and sizing.
func (s *StackPanel) SetAxis(axis Axis) {
	s.axis = axis
	s.group.SetAxis(axis)
}

// Group exposes the sizing group for layout and drag resizing.
func (s *StackPanel) Group() *ResizablePanelGroup { return s.group }

// Len returns the number of child items.
func (s *StackPanel) Len() int { return len(s.children) }

// ChildAt returns the child at ix, or nil when out of range.
func (s *StackPanel) ChildAt(ix int) Item {
	if ix < 0 || ix >= len(s.children) {
		return nil
	}
	return s.children[ix]
}

// IndexOf returns item's index, or -1 when absent.
func (s *StackPanel) IndexOf(item Item) int {
	for i, c := range s.children {
		if c == item {
			return i
		}
	}
	return -1
}

// AddChild appends item with the given sizing slot. A nil slot grows.
func (s *StackPanel) AddChild(item Item, slot *ResizablePanel) {
	s.InsertChildAt(len(s.children), item, slot)
}

// InsertChildAt inserts item at ix, clamped to [0, Len]. A nil slot grows.
func (s *StackPanel) InsertChildAt(ix int, item Item, slot *ResizablePanel) {
	if slot == nil {
		slot = GrowPanel()
	}
	if ix < 0 {
		ix = 0
	}
	if ix > len(s.children) {
		ix = len(s.children)
	}
	s.children = append(s.children, nil)
	copy(s.children[ix+1:], s.children[ix:])
	s.children[ix] = item
	s.group.InsertAt(ix, slot)
	item.setParent(s)
}

// InsertBefore inserts item just before target. Appends when target is
// not a child.
func (s *StackPanel) InsertBefore(target, item Item, slot *ResizablePanel) {
	ix := s.IndexOf(target)
	if ix < 0 {
		ix = len(s.children)
	}
	s.InsertChildAt(ix, item, slot)
}

// InsertAfter inserts item just after target. Appends when target is
// not a child.
func (s *StackPanel) InsertAfter(target, item Item, slot *ResizablePanel) {
	ix := s.IndexOf(target)
	if ix < 0 {
		ix = len(s.children) - 1
	}
	s.InsertChildAt(ix+1, item, slot)
}

// AddPanel wraps p in a new TabPanel and appends it. size of 0 grows,
// otherwise the slot is fixed at size cells.
func (s *StackPanel) AddPanel(p Panel, size int) *TabPanel {
	tp := NewTabPanel()
	tp.AddPanel(p)
	var slot *ResizablePanel
	if size > 0 {
		slot = SizedPanel(size)
	}
	s.AddChild(tp, slot)
	return tp
}

// InsertPanelAt wraps p in a new TabPanel and inserts it relative to the
// child at ix: Top and Left placements insert before it, Right and
// Bottom after. size of 0 grows, otherwise the slot is fixed at size
// cells.
func (s *StackPanel) InsertPanelAt(p Panel, ix int, placement Placement, size int) *TabPanel {
	tp := NewTabPanel()
	tp.AddPanel(p)
	var slot *ResizablePanel
	if size > 0 {
		slot = SizedPanel(size)
	}
	if !placement.Before() {
		ix++
	}
	s.InsertChildAt(ix, tp, slot)
	return tp
}

// FirstTabPanel returns the tab group at the leading (left or top) edge
// of the stack, descending through nested stacks. Returns nil when the
// subtree holds no tab group.
func (s *StackPanel) FirstTabPanel() *TabPanel {
	for _, c := range s.children {
		switch child := c.(type) {
		case *TabPanel:
			return child
		case *StackPanel:
			if tp := child.FirstTabPanel(); tp != nil {
				return tp
			}
		}
	}
	return nil
}

// LastTabPanel returns the tab group at the trailing (right or bottom)
// edge of the stack, descending through nested stacks.
func (s *StackPanel) LastTabPanel() *TabPanel {
	for i := len(s.children) - 1; i >= 0; i-- {
		switch child := s.children[i].(type) {
		case *TabPanel:
			return child
		case *StackPanel:
			if tp := child.LastTabPanel(); tp != nil {
				return tp
			}
		}
	}
	return nil
}

// ReplaceChild swaps old for new in place, keeping order and sizing.
// Returns whether old was present.
func (s *StackPanel) ReplaceChild(old, new Item) bool {
	ix := s.IndexOf(old)
	if ix < 0 {
		return false
	}
	s.children[ix] = new
	old.setParent(nil)
	new.setParent(s)
	return true
}

// removeChild detaches item, then normalizes: an empty stack removes
// itself from its parent, and a stack left with a single child replaces
// itself with that child. Both cascade upward. The area root is exempt;
// it may hold zero or one child.
func (s *StackPanel) removeChild(item Item) {
	ix := s.IndexOf(item)
	if ix < 0 {
		return
	}
	s.children = append(s.children[:ix], s.children[ix+1:]...)
	s.group.RemoveAt(ix)
	item.setParent(nil)

	if s.parent == nil {
		return
	}
	switch len(s.children) {
	case 0:
		s.parent.removeChild(s)
	case 1:
		only := s.children[0]
		s.children = nil
		only.setParent(nil)
		s.parent.ReplaceChild(s, only)
	}
}

// RemovePanel removes p from whichever tab panel in the subtree holds
// it, collapsing emptied ancestors. Returns whether p was found.
func (s *StackPanel) RemovePanel(p Panel) bool {
	tp := s.findTabPanel(p)
	if tp == nil {
		return false
	}
	return tp.RemovePanel(p)
}

func (s *StackPanel) findTabPanel(p Panel) *TabPanel {
	for _, c := range s.children {
		switch child := c.(type) {
		case *TabPanel:
			if child.IndexOf(p) >= 0 {
				return child
			}
		case *StackPanel:
			if tp := child.findTabPanel(p); tp != nil {
				return tp
			}
		}
	}
	return nil
}

// RemoveAllPanels detaches every child, leaving the stack empty.
func (s *StackPanel) RemoveAllPanels() {
	for _, c := range s.children {
		c.setParent(nil)
	}
	s.children = nil
	for s.group.Len() > 0 {
		s.group.RemoveAt(0)
	}
}

// IsLastPanel reports whether p is the only panel left in the subtree.
func (s *StackPanel) IsLastPanel(p Panel) bool {
	count := 0
	last := true
	s.walkPanels(func(q Panel) bool {
		count++
		if !samePanel(q, p) {
			last = false
		}
		return count <= 1 && last
	})
	return count == 1 && last
}

// Dump implements Item. An N-child stack folds into nested binary
// splits from the right, with each split's fraction normalized against
// the remaining children's combined share.
func (s *StackPanel) Dump() *ItemState {
	fractions := s.group.Fractions()
	var items []*ItemState
	var shares []float64
	for i, c := range s.children {
		item := c.Dump()
		if item == nil {
			continue
		}
		items = append(items, item)
		share := 0.0
		if i < len(fractions) {
			share = fractions[i]
		}
		shares = append(shares, share)
	}
	switch len(items) {
	case 0:
		return nil
	case 1:
		return items[0]
	}
	result := items[len(items)-1]
	rest := shares[len(shares)-1]
	for i := len(items) - 2; i >= 0; i-- {
		total := shares[i] + rest
		f := 0.5
		if total > 0 {
			f = shares[i] / total
		}
		result = SplitItem(s.axis, f, items[i], result)
		rest = total
	}
	return result
}

func (s *StackPanel) walkPanels(visit func(Panel) bool) bool {
	for _, c := range s.children {
		if !c.walkPanels(visit) {
			return false
		}
	}
	return true
}
