package dock

// Tree is a binary split tree stored in a flat slice: root at index 0,
// children of node n at 2n+1 and 2n+2. Horizontal nodes keep their left
// region in the first child; vertical nodes keep their top region there.
//
// The tree is the authoring and serialization shape of a layout. The live
// StackPanel/TabPanel model built from it is the runtime source of truth;
// the tree is never synchronized back from it.
type Tree[Tab any] struct {
	nodes   []Node[Tab]
	focused int // node index, -1 when nothing is focused
}

// NewTree returns a tree whose root is empty.
func NewTree[Tab any]() *Tree[Tab] {
	return &Tree[Tab]{nodes: []Node[Tab]{EmptyNode[Tab]()}, focused: -1}
}

// TreeWithRoot returns a tree rooted at the given node.
func TreeWithRoot[Tab any](root Node[Tab]) *Tree[Tab] {
	return &Tree[Tab]{nodes: []Node[Tab]{root}, focused: -1}
}

// LeftChildIndex returns the index of the left (or top) child of ix.
func LeftChildIndex(ix int) int { return 2*ix + 1 }

// RightChildIndex returns the index of the right (or bottom) child of ix.
func RightChildIndex(ix int) int { return 2*ix + 2 }

// ParentIndex returns the index of the parent of ix, or -1 for the root.
func ParentIndex(ix int) int {
	if ix <= 0 {
		return -1
	}
	return (ix - 1) / 2
}

// Len returns the length of the underlying node slice.
func (t *Tree[Tab]) Len() int { return len(t.nodes) }

// Node returns the node at ix, or nil if ix is out of range.
func (t *Tree[Tab]) Node(ix int) *Node[Tab] {
	if ix < 0 || ix >= len(t.nodes) {
		return nil
	}
	return &t.nodes[ix]
}

// Root returns the root node.
func (t *Tree[Tab]) Root() *Node[Tab] { return &t.nodes[0] }

// Focused returns the index of the focused node, or -1.
func (t *Tree[Tab]) Focused() int { return t.focused }

// SetFocused records the focused node index. Out-of-range values clear it.
func (t *Tree[Tab]) SetFocused(ix int) {
	if ix < 0 || ix >= len(t.nodes) {
		t.focused = -1
		return
	}
	t.focused = ix
}

// grow extends the node slice with empty nodes so that ix is addressable.
func (t *Tree[Tab]) grow(ix int) {
	for len(t.nodes) <= ix {
		t.nodes = append(t.nodes, EmptyNode[Tab]())
	}
}

// SplitNode replaces the node at ix with a split carrying fraction. The
// node's previous content moves to the first child for SplitRight and
// SplitBelow, and to the second child for SplitLeft and SplitAbove, so
// the new empty region always lands on the side the split names. Returns
// the child index of the new empty region. Panics if fraction is outside
// [0, 1] or ix is out of range.
func (t *Tree[Tab]) SplitNode(ix int, split Split, fraction float64) int {
	if ix < 0 || ix >= len(t.nodes) {
		panic("dock: split index out of range")
	}
	old := t.nodes[ix].Split(split, fraction)

	left, right := LeftChildIndex(ix), RightChildIndex(ix)
	t.grow(right)
	newIx := left
	oldIx := right
	if split == SplitRight || split == SplitBelow {
		newIx, oldIx = right, left
	}
	t.nodes[oldIx] = old
	t.nodes[newIx] = EmptyNode[Tab]()
	return newIx
}

// AppendTab appends a tab to the leaf at ix and makes it active.
func (t *Tree[Tab]) AppendTab(ix int, tab Tab) {
	t.grow(ix)
	t.nodes[ix].AppendTab(tab)
}

// InsertTab inserts a tab at position pos in the leaf at ix.
func (t *Tree[Tab]) InsertTab(ix, pos int, tab Tab) {
	t.grow(ix)
	t.nodes[ix].InsertTab(pos, tab)
}

// RemoveTab removes the tab at position pos from the leaf at ix.
func (t *Tree[Tab]) RemoveTab(ix, pos int) (Tab, bool) {
	var zero Tab
	if ix < 0 || ix >= len(t.nodes) {
		return zero, false
	}
	return t.nodes[ix].RemoveTab(pos)
}

// RetainTabs removes every tab in the tree for which predicate returns
// false; leaves left without tabs become empty.
func (t *Tree[Tab]) RetainTabs(predicate func(*Tab) bool) {
	for i := range t.nodes {
		t.nodes[i].RetainTabs(predicate)
	}
}

// Walk calls fn for every non-empty node, in index order.
func (t *Tree[Tab]) Walk(fn func(ix int, n *Node[Tab])) {
	for i := range t.nodes {
		if !t.nodes[i].IsEmpty() {
			fn(i, &t.nodes[i])
		}
	}
}

// Tabs calls fn for every tab in the tree, leaves in index order.
func (t *Tree[Tab]) Tabs(fn func(tab Tab)) {
	for i := range t.nodes {
		for _, tab := range t.nodes[i].Tabs() {
			fn(tab)
		}
	}
}

// FilterMapTree returns a new tree of the same shape while mapping and
// filtering the tab type. Leaves whose tabs are all filtered out become
// empty.
func FilterMapTree[Tab, NewTab any](t *Tree[Tab], fn func(Tab) (NewTab, bool)) *Tree[NewTab] {
	out := &Tree[NewTab]{
		nodes:   make([]Node[NewTab], len(t.nodes)),
		focused: t.focused,
	}
	for i := range t.nodes {
		out.nodes[i] = FilterMapNode(&t.nodes[i], fn)
	}
	return out
}

// MapTree returns a new tree of the same shape while mapping the tab type.
func MapTree[Tab, NewTab any](t *Tree[Tab], fn func(Tab) NewTab) *Tree[NewTab] {
	return FilterMapTree(t, func(tab Tab) (NewTab, bool) {
		return fn(tab), true
	})
}
