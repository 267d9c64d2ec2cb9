package dock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemStateJSONRoundTrip(t *testing.T) {
	root := SplitItem(Horizontal, 0.3,
		TabsItem(0, PanelItem("Outline", nil)),
		SplitItem(Vertical, 0.5,
			TabsItem(1,
				PanelItem("Log", json.RawMessage(`{"filter":"warn"}`)),
				PanelItem("Terminal", nil),
			),
			TabsItem(0, PanelItem("Sessions", nil)),
		),
	)
	version := 3
	state := &AreaState{Version: &version, Root: root}

	data, err := EncodeAreaState(state)
	require.NoError(t, err)

	decoded, err := DecodeAreaState(data)
	require.NoError(t, err)
	require.NotNil(t, decoded.Version)
	require.Equal(t, 3, *decoded.Version)
	require.True(t, root.Equal(decoded.Root), "round-trip changed the layout")
}

func TestItemStateJSONShape(t *testing.T) {
	item := SplitItem(Vertical, 0.25,
		TabsItem(0, PanelItem("A", nil)),
		PanelItem("B", nil),
	)
	data, err := json.Marshal(item)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, "split", m["type"])
	require.Equal(t, "vertical", m["axis"])
	require.Equal(t, 0.25, m["fraction"])
}

func TestDecodeAreaStateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `{{`},
		{"missing root", `{"version": 1}`},
		{"unknown kind", `{"version": 1, "root": {"type": "window"}}`},
		{"fraction out of range", `{"version": 1, "root": {"type": "split", "axis": "horizontal", "fraction": 1.5, "first": {"type": "panel", "panel_name": "A"}, "second": {"type": "panel", "panel_name": "B"}}}`},
		{"split missing child", `{"version": 1, "root": {"type": "split", "axis": "horizontal", "fraction": 0.5, "first": {"type": "panel", "panel_name": "A"}}}`},
		{"tabs without children", `{"version": 1, "root": {"type": "tabs", "children": []}}`},
		{"tabs active out of range", `{"version": 1, "root": {"type": "tabs", "active_index": 5, "children": [{"type": "panel", "panel_name": "A"}]}}`},
		{"split inside tabs", `{"version": 1, "root": {"type": "tabs", "children": [{"type": "split", "axis": "horizontal", "fraction": 0.5, "first": {"type": "panel", "panel_name": "A"}, "second": {"type": "panel", "panel_name": "B"}}]}}`},
		{"panel without name", `{"version": 1, "root": {"type": "panel"}}`},
		{"bad axis", `{"version": 1, "root": {"type": "split", "axis": "diagonal", "fraction": 0.5, "first": {"type": "panel", "panel_name": "A"}, "second": {"type": "panel", "panel_name": "B"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAreaState([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestTreeStateFoldsSplits(t *testing.T) {
	tree := NewTree[string]()
	tree.AppendTab(0, "main")
	newIx := tree.SplitNode(0, SplitRight, 0.3)
	tree.AppendTab(newIx, "side")

	item := TreeState(tree, func(tab string) *ItemState {
		return PanelItem(tab, nil)
	})
	require.NotNil(t, item)
	require.Equal(t, ItemSplit, item.Type)
	require.Equal(t, Horizontal, item.Axis)
	require.Equal(t, ItemTabs, item.First.Type)
	require.Equal(t, "main", item.First.Children[0].PanelName)
	require.Equal(t, "side", item.Second.Children[0].PanelName)
}

func TestTreeStateElidesEmptyRegions(t *testing.T) {
	tree := NewTree[string]()
	tree.AppendTab(0, "main")
	tree.SplitNode(0, SplitRight, 0.5) // new region stays empty

	item := TreeState(tree, func(tab string) *ItemState {
		return PanelItem(tab, nil)
	})
	require.NotNil(t, item)
	require.Equal(t, ItemTabs, item.Type, "empty sibling should be elided")
}

func TestTreeStateEmptyTreeIsNil(t *testing.T) {
	tree := NewTree[string]()
	item := TreeState(tree, func(tab string) *ItemState { return nil })
	require.Nil(t, item)
}

func TestTreeAuthoredLayoutLoadsAndRedumps(t *testing.T) {
	area := newTestArea(t, "X", "Y")

	// Author the layout through the split tree: X everywhere, then a
	// left split at 0.3 holding Y.
	tree := NewTree[string]()
	tree.AppendTab(0, "X")
	newIx := tree.SplitNode(0, SplitLeft, 0.3)
	tree.AppendTab(newIx, "Y")

	authored := TreeState(tree, func(name string) *ItemState {
		return PanelItem(name, nil)
	})
	require.NotNil(t, authored)
	require.Equal(t, ItemSplit, authored.Type)
	require.Equal(t, Horizontal, authored.Axis)
	require.InDelta(t, 0.3, authored.Fraction, 1e-9)
	require.Equal(t, "Y", authored.First.Children[0].PanelName,
		"the new region of a left split leads the layout")
	require.Equal(t, "X", authored.Second.Children[0].PanelName)

	version := 1
	require.NoError(t, area.Load(&AreaState{Version: &version, Root: authored}))

	redumped := area.Dump().Root
	require.Equal(t, ItemSplit, redumped.Type)
	require.Equal(t, Horizontal, redumped.Axis)
	require.InDelta(t, 0.3, redumped.Fraction, 0.01)
	require.Equal(t, "Y", redumped.First.Children[0].PanelName)
	require.Equal(t, "X", redumped.Second.Children[0].PanelName)
}
