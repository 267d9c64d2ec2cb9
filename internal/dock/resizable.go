package dock

// Sizing selects how a resizable slot claims space along the group axis.
type Sizing int

const (
	// SizingGrow shares the space left over after sized slots are placed.
	SizingGrow Sizing = iota
	// SizingFixed claims an explicit length in cells.
	SizingFixed
	// SizingFraction claims a fraction of the total length.
	SizingFraction
)

// ResizablePanel is one slot in a ResizablePanelGroup. It carries sizing
// preferences and the resolved length from the last layout pass.
type ResizablePanel struct {
	sizing   Sizing
	size     int     // SizingFixed length
	fraction float64 // SizingFraction share of the total
	min      int
	max      int // 0 means unbounded
	resolved int
}

// GrowPanel returns a slot that shares leftover space.
func GrowPanel() *ResizablePanel {
	return &ResizablePanel{sizing: SizingGrow, min: 1}
}

// SizedPanel returns a slot with an explicit length.
func SizedPanel(size int) *ResizablePanel {
	return &ResizablePanel{sizing: SizingFixed, size: size, min: 1}
}

// FractionPanel returns a slot claiming a fraction of the total length.
// Panics when fraction is outside (0, 1].
func FractionPanel(fraction float64) *ResizablePanel {
	if fraction <= 0 || fraction > 1 {
		panic("dock: fraction panel share outside (0, 1]")
	}
	return &ResizablePanel{sizing: SizingFraction, fraction: fraction, min: 1}
}

// WithBounds sets the min and max lengths. max of 0 means unbounded.
func (p *ResizablePanel) WithBounds(min, max int) *ResizablePanel {
	if min < 1 {
		min = 1
	}
	p.min = min
	p.max = max
	return p
}

// Resolved returns the length assigned by the last layout pass.
func (p *ResizablePanel) Resolved() int { return p.resolved }

// Sizing returns the slot's sizing mode.
func (p *ResizablePanel) Sizing() Sizing { return p.sizing }

func (p *ResizablePanel) clamp(n int) int {
	if n < p.min {
		n = p.min
	}
	if p.max > 0 && n > p.max {
		n = p.max
	}
	return n
}

// provisionalTotal is used to derive fractions before any real layout pass.
const provisionalTotal = 1000

// ResizablePanelGroup distributes one axis of space across ordered slots.
// Fixed slots are placed first, fraction slots take their share of the
// total, and grow slots split what remains. Overflow is tolerated; the
// renderer clips rather than the group erroring.
type ResizablePanelGroup struct {
	axis     Axis
	children []*ResizablePanel
	total    int // last layout length, 0 before the first pass
}

// NewResizablePanelGroup returns an empty group along axis.
func NewResizablePanelGroup(axis Axis) *ResizablePanelGroup {
	return &ResizablePanelGroup{axis: axis}
}

// Axis returns the group's layout axis.
func (g *ResizablePanelGroup) Axis() Axis { return g.axis }

// SetAxis changes the layout axis. Resolved lengths stay as explicit
// preferences for the next pass.
func (g *ResizablePanelGroup) SetAxis(axis Axis) { g.axis = axis }

// Len returns the number of slots.
func (g *ResizablePanelGroup) Len() int { return len(g.children) }

// Child returns the slot at i, or nil when out of range.
func (g *ResizablePanelGroup) Child(i int) *ResizablePanel {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.children[i]
}

// InsertAt inserts a slot at index i, clamped to [0, Len].
func (g *ResizablePanelGroup) InsertAt(i int, p *ResizablePanel) {
	if i < 0 {
		i = 0
	}
	if i > len(g.children) {
		i = len(g.children)
	}
	g.children = append(g.children, nil)
	copy(g.children[i+1:], g.children[i:])
	g.children[i] = p
}

// Append adds a slot at the end.
func (g *ResizablePanelGroup) Append(p *ResizablePanel) {
	g.children = append(g.children, p)
}

// RemoveAt removes the slot at i. No-op when out of range.
func (g *ResizablePanelGroup) RemoveAt(i int) {
	if i < 0 || i >= len(g.children) {
		return
	}
	g.children = append(g.children[:i], g.children[i+1:]...)
}

// Layout distributes total cells across the slots and returns the
// resolved lengths in order. total below the sum of minimums overflows
// silently; every slot still gets at least its minimum.
func (g *ResizablePanelGroup) Layout(total int) []int {
	g.total = total
	n := len(g.children)
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	budget := total
	var growers []int
	for i, c := range g.children {
		switch c.sizing {
		case SizingFixed:
			out[i] = c.clamp(c.size)
			budget -= out[i]
		case SizingFraction:
			out[i] = c.clamp(int(float64(total)*c.fraction + 0.5))
			budget -= out[i]
		default:
			growers = append(growers, i)
		}
	}
	if len(growers) > 0 {
		distributeGrow(g.children, out, growers, budget)
	}
	for i, c := range g.children {
		c.resolved = out[i]
	}
	return out
}

// distributeGrow splits budget across grow slots, re-running whenever a
// slot pins at its min or max so the rest share the corrected budget.
func distributeGrow(children []*ResizablePanel, out []int, growers []int, budget int) {
	active := append([]int(nil), growers...)
	for {
		if len(active) == 0 {
			return
		}
		share := budget / len(active)
		rem := budget % len(active)
		pinned := false
		next := active[:0]
		for k, i := range active {
			want := share
			if k < rem {
				want++
			}
			got := children[i].clamp(want)
			out[i] = got
			if got != want {
				budget -= got
				pinned = true
			} else {
				next = append(next, i)
			}
		}
		if !pinned {
			return
		}
		active = next
	}
}

// DragResize moves the boundary between slots i and i+1 by delta cells
// (positive grows slot i). Both slots become fixed at their new lengths.
// The move is limited so neither slot leaves its bounds, which keeps the
// pair's combined length unchanged.
func (g *ResizablePanelGroup) DragResize(i, delta int) {
	if i < 0 || i+1 >= len(g.children) {
		return
	}
	a, b := g.children[i], g.children[i+1]
	d := delta
	if m := a.clamp(a.resolved+d) - a.resolved; abs(m) < abs(d) {
		d = m
	}
	if m := b.resolved - b.clamp(b.resolved-d); abs(m) < abs(d) {
		d = m
	}
	a.resolved += d
	b.resolved -= d
	a.sizing, a.size = SizingFixed, a.resolved
	b.sizing, b.size = SizingFixed, b.resolved
}

// Fractions returns each slot's share of the group length, summing to 1.
// Before the first layout pass a provisional pass supplies the lengths.
func (g *ResizablePanelGroup) Fractions() []float64 {
	if len(g.children) == 0 {
		return nil
	}
	resolved := make([]int, len(g.children))
	if g.total > 0 {
		for i, c := range g.children {
			resolved[i] = c.resolved
		}
	} else {
		saved := make([]int, len(g.children))
		for i, c := range g.children {
			saved[i] = c.resolved
		}
		copy(resolved, g.Layout(provisionalTotal))
		g.total = 0
		for i, c := range g.children {
			c.resolved = saved[i]
		}
	}
	sum := 0
	for _, r := range resolved {
		sum += r
	}
	out := make([]float64, len(resolved))
	if sum == 0 {
		for i := range out {
			out[i] = 1 / float64(len(out))
		}
		return out
	}
	for i, r := range resolved {
		out[i] = float64(r) / float64(sum)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
