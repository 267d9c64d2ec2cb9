package dock

import "fmt"

// Rect is a cell-based rectangle. Node bounds are recorded during render
// for hit-testing and debugging only; layout truth is recomputed each
// pass from fractions and the resizable group machinery.
type Rect struct {
	X, Y, W, H int
}

// NodeKind tags the variant held by a Node.
type NodeKind int

const (
	NodeEmpty NodeKind = iota
	NodeLeaf
	NodeHorizontal
	NodeVertical
)

// Node is one slot of the binary split tree: empty, a leaf holding an
// ordered list of tabs, or a horizontal/vertical split carrying the
// fraction taken by its first (left/top) child.
type Node[Tab any] struct {
	kind          NodeKind
	bounds        Rect
	contentBounds Rect
	fraction      float64
	tabs          []Tab
	active        int
}

// EmptyNode returns an empty node.
func EmptyNode[Tab any]() Node[Tab] {
	return Node[Tab]{kind: NodeEmpty}
}

// NewLeaf returns a leaf node holding a single tab, which is active.
func NewLeaf[Tab any](tab Tab) Node[Tab] {
	return Node[Tab]{kind: NodeLeaf, tabs: []Tab{tab}}
}

// LeafWith returns a leaf node holding tabs, with the first tab active.
// An empty tabs slice yields an empty node (a leaf never holds zero tabs).
func LeafWith[Tab any](tabs []Tab) Node[Tab] {
	if len(tabs) == 0 {
		return EmptyNode[Tab]()
	}
	return Node[Tab]{kind: NodeLeaf, tabs: tabs}
}

// Kind returns the node's variant tag.
func (n *Node[Tab]) Kind() NodeKind { return n.kind }

// IsEmpty reports whether the node is empty.
func (n *Node[Tab]) IsEmpty() bool { return n.kind == NodeEmpty }

// IsLeaf reports whether the node is a leaf.
func (n *Node[Tab]) IsLeaf() bool { return n.kind == NodeLeaf }

// IsParent reports whether the node is a horizontal or vertical split.
func (n *Node[Tab]) IsParent() bool {
	return n.kind == NodeHorizontal || n.kind == NodeVertical
}

// Fraction returns the normalized size of the first child for split
// nodes, and 0 otherwise.
func (n *Node[Tab]) Fraction() float64 { return n.fraction }

// SetBounds records the node's last-computed pixel bounds.
func (n *Node[Tab]) SetBounds(r Rect) {
	if n.kind != NodeEmpty {
		n.bounds = r
	}
}

// Bounds returns the node's last-computed pixel bounds.
func (n *Node[Tab]) Bounds() Rect { return n.bounds }

// SetContentBounds records the bounds of a leaf's content view.
func (n *Node[Tab]) SetContentBounds(r Rect) {
	if n.kind == NodeLeaf {
		n.contentBounds = r
	}
}

// ContentBounds returns the bounds of a leaf's content view.
func (n *Node[Tab]) ContentBounds() Rect { return n.contentBounds }

// Split replaces the node with a horizontal or vertical split carrying
// fraction, and returns the node's previous content. Panics if fraction
// is outside [0, 1]: that is a caller bug, not user-triggered state.
func (n *Node[Tab]) Split(split Split, fraction float64) Node[Tab] {
	if fraction < 0 || fraction > 1 {
		panic(fmt.Sprintf("dock: split fraction %v outside [0, 1]", fraction))
	}
	kind := NodeVertical
	if split.IsHorizontal() {
		kind = NodeHorizontal
	}
	old := *n
	*n = Node[Tab]{kind: kind, fraction: fraction}
	return old
}

// Tabs returns the leaf's tabs, or nil for any other variant.
func (n *Node[Tab]) Tabs() []Tab {
	if n.kind != NodeLeaf {
		return nil
	}
	return n.tabs
}

// TabCount returns the number of tabs held by a leaf, 0 otherwise.
func (n *Node[Tab]) TabCount() int {
	if n.kind != NodeLeaf {
		return 0
	}
	return len(n.tabs)
}

// Active returns the index of the leaf's active tab.
func (n *Node[Tab]) Active() int { return n.active }

// SetActive makes the tab at ix active, clamped to the tab range.
func (n *Node[Tab]) SetActive(ix int) {
	if n.kind != NodeLeaf {
		return
	}
	if ix < 0 {
		ix = 0
	}
	if ix >= len(n.tabs) {
		ix = len(n.tabs) - 1
	}
	n.active = ix
}

// AppendTab appends a tab to a leaf and makes it active. An empty node is
// promoted to a leaf, the inverse of empty-leaf normalization. Appending
// to a split node panics: leaves are the only addressable tab containers.
func (n *Node[Tab]) AppendTab(tab Tab) {
	n.InsertTab(n.TabCount(), tab)
}

// InsertTab inserts a tab at ix in a leaf and makes it active. An empty
// node is promoted to a leaf. Panics on split nodes.
func (n *Node[Tab]) InsertTab(ix int, tab Tab) {
	switch n.kind {
	case NodeEmpty:
		*n = NewLeaf(tab)
	case NodeLeaf:
		n.tabs = append(n.tabs, tab)
		copy(n.tabs[ix+1:], n.tabs[ix:])
		n.tabs[ix] = tab
		n.active = ix
	default:
		panic("dock: insert tab into non-leaf node")
	}
}

// RemoveTab removes and returns the tab at ix. If the removed tab was
// active, active resets to 0. A leaf left with zero tabs becomes empty.
func (n *Node[Tab]) RemoveTab(ix int) (Tab, bool) {
	var zero Tab
	if n.kind != NodeLeaf || ix < 0 || ix >= len(n.tabs) {
		return zero, false
	}
	tab := n.tabs[ix]
	n.tabs = append(n.tabs[:ix], n.tabs[ix+1:]...)
	if ix == n.active {
		n.active = 0
	} else if ix < n.active {
		n.active--
	}
	if len(n.tabs) == 0 {
		*n = EmptyNode[Tab]()
	}
	return tab, true
}

// RetainTabs removes all tabs for which predicate returns false. A leaf
// left with zero tabs becomes empty.
func (n *Node[Tab]) RetainTabs(predicate func(*Tab) bool) {
	if n.kind != NodeLeaf {
		return
	}
	kept := n.tabs[:0]
	for i := range n.tabs {
		if predicate(&n.tabs[i]) {
			kept = append(kept, n.tabs[i])
		}
	}
	n.tabs = kept
	if n.active >= len(n.tabs) {
		n.active = 0
	}
	if len(n.tabs) == 0 {
		*n = EmptyNode[Tab]()
	}
}

// FilterMapNode returns a new node while mapping and filtering the tab
// type, preserving structure. A leaf whose tabs are all filtered out
// becomes empty. Used when the serialized tab type differs from the live
// tab type, such as turning tab descriptors into live panel handles.
func FilterMapNode[Tab, NewTab any](n *Node[Tab], fn func(Tab) (NewTab, bool)) Node[NewTab] {
	switch n.kind {
	case NodeLeaf:
		tabs := make([]NewTab, 0, len(n.tabs))
		for _, tab := range n.tabs {
			if mapped, ok := fn(tab); ok {
				tabs = append(tabs, mapped)
			}
		}
		if len(tabs) == 0 {
			return EmptyNode[NewTab]()
		}
		out := Node[NewTab]{
			kind:          NodeLeaf,
			bounds:        n.bounds,
			contentBounds: n.contentBounds,
			tabs:          tabs,
			active:        n.active,
		}
		if out.active >= len(tabs) {
			out.active = 0
		}
		return out
	case NodeEmpty:
		return EmptyNode[NewTab]()
	default:
		return Node[NewTab]{kind: n.kind, bounds: n.bounds, fraction: n.fraction}
	}
}

// MapNode returns a new node while mapping the tab type.
func MapNode[Tab, NewTab any](n *Node[Tab], fn func(Tab) NewTab) Node[NewTab] {
	return FilterMapNode(n, func(tab Tab) (NewTab, bool) {
		return fn(tab), true
	})
}
