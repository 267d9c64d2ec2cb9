package dock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ringArea builds an H stack of three single-panel tab groups a, b, c.
func ringArea(t *testing.T) (*DockArea, []*testPanel) {
	t.Helper()
	resetRegistry()
	area := NewDockArea(1)
	stack := NewStackPanel(Horizontal)
	panels := make([]*testPanel, 0, 3)
	for _, name := range []string{"a", "b", "c"} {
		p := newTestPanel(name)
		panels = append(panels, p)
		stack.AddPanel(p, 0)
	}
	area.SetRoot(stack)
	return area, panels
}

func TestFocusRingNextPrevWrap(t *testing.T) {
	area, panels := ringArea(t)
	ring := NewFocusRing(area)
	ring.Focus(panels[0])

	require.Equal(t, "b", ring.Next().PanelName())
	require.Equal(t, "c", ring.Next().PanelName())
	require.Equal(t, "a", ring.Next().PanelName(), "Next should wrap to the first panel")
	require.Equal(t, "c", ring.Prev().PanelName(), "Prev should wrap to the last panel")
}

func TestFocusRingRepairsStaleFocus(t *testing.T) {
	area, panels := ringArea(t)
	ring := NewFocusRing(area)
	ring.Focus(panels[1])
	require.Equal(t, "b", ring.Current().PanelName())

	area.RemovePanel(panels[1])
	cur := ring.Current()
	require.NotNil(t, cur)
	require.Equal(t, "a", cur.PanelName(), "focus should repair to the leading tab group")
}

func TestFocusRingUnsetStepsToEdges(t *testing.T) {
	area, _ := ringArea(t)

	ring := NewFocusRing(area)
	require.Equal(t, "a", ring.Next().PanelName())

	ring = NewFocusRing(area)
	require.Equal(t, "c", ring.Prev().PanelName())
}

func TestFocusRingEmptyArea(t *testing.T) {
	resetRegistry()
	area := NewDockArea(1)
	ring := NewFocusRing(area)
	require.Nil(t, ring.Current())
	require.Equal(t, PanelID{}, ring.CurrentID())
	require.Nil(t, ring.Next())
}

func TestFocusRingClear(t *testing.T) {
	area, panels := ringArea(t)
	ring := NewFocusRing(area)
	ring.Focus(panels[2])
	require.Equal(t, "c", ring.Current().PanelName())

	ring.Focus(nil)
	require.Equal(t, "a", ring.Current().PanelName())
}
