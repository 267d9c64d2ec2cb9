package dock

import (
	"encoding/json"
	"fmt"

	"dockspace/internal/jsonutil"
)

// ItemKind discriminates the serialized layout item variants.
type ItemKind string

const (
	ItemTabs  ItemKind = "tabs"
	ItemSplit ItemKind = "split"
	ItemPanel ItemKind = "panel"
)

// ItemState is the recursive serialized description of one layout slot:
// a tab group, a binary split, or a single panel identified by its stable
// panel name plus a panel-defined opaque state blob.
type ItemState struct {
	Type ItemKind

	// Split fields. Fraction is the normalized size of First.
	Axis     Axis
	Fraction float64
	First    *ItemState
	Second   *ItemState

	// Tabs fields.
	Children    []*ItemState
	ActiveIndex int

	// Panel fields.
	PanelName  string
	PanelState json.RawMessage
}

// AreaState is the serializable snapshot of a whole dock area. Version is
// compared against the application's expected layout version on load.
type AreaState struct {
	Version *int       `json:"version"`
	Root    *ItemState `json:"root"`
}

// TabsItem returns a tabs item with the given children and active index.
func TabsItem(active int, children ...*ItemState) *ItemState {
	return &ItemState{Type: ItemTabs, Children: children, ActiveIndex: active}
}

// SplitItem returns a split item carrying fraction for the first child.
func SplitItem(axis Axis, fraction float64, first, second *ItemState) *ItemState {
	return &ItemState{Type: ItemSplit, Axis: axis, Fraction: fraction, First: first, Second: second}
}

// PanelItem returns a panel item for the given panel name and state blob.
func PanelItem(name string, state json.RawMessage) *ItemState {
	return &ItemState{Type: ItemPanel, PanelName: name, PanelState: state}
}

type splitJSON struct {
	Type     ItemKind   `json:"type"`
	Axis     Axis       `json:"axis"`
	Fraction float64    `json:"fraction"`
	First    *ItemState `json:"first"`
	Second   *ItemState `json:"second"`
}

type tabsJSON struct {
	Type        ItemKind     `json:"type"`
	Children    []*ItemState `json:"children"`
	ActiveIndex int          `json:"active_index"`
}

type panelJSON struct {
	Type       ItemKind        `json:"type"`
	PanelName  string          `json:"panel_name"`
	PanelState json.RawMessage `json:"panel_state,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s *ItemState) MarshalJSON() ([]byte, error) {
	switch s.Type {
	case ItemSplit:
		return json.Marshal(splitJSON{s.Type, s.Axis, s.Fraction, s.First, s.Second})
	case ItemTabs:
		return json.Marshal(tabsJSON{s.Type, s.Children, s.ActiveIndex})
	case ItemPanel:
		return json.Marshal(panelJSON{s.Type, s.PanelName, s.PanelState})
	}
	return nil, fmt.Errorf("marshal layout item: unknown kind %q", s.Type)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ItemState) UnmarshalJSON(data []byte) error {
	var kind struct {
		Type ItemKind `json:"type"`
	}
	if err := jsonutil.UnmarshalWithContext(data, &kind, "layout item kind"); err != nil {
		return err
	}
	switch kind.Type {
	case ItemSplit:
		var v splitJSON
		if err := jsonutil.UnmarshalWithContext(data, &v, "split item"); err != nil {
			return err
		}
		*s = ItemState{Type: ItemSplit, Axis: v.Axis, Fraction: v.Fraction, First: v.First, Second: v.Second}
	case ItemTabs:
		var v tabsJSON
		if err := jsonutil.UnmarshalWithContext(data, &v, "tabs item"); err != nil {
			return err
		}
		*s = ItemState{Type: ItemTabs, Children: v.Children, ActiveIndex: v.ActiveIndex}
	case ItemPanel:
		var v panelJSON
		if err := jsonutil.UnmarshalWithContext(data, &v, "panel item"); err != nil {
			return err
		}
		*s = ItemState{Type: ItemPanel, PanelName: v.PanelName, PanelState: v.PanelState}
	default:
		return fmt.Errorf("layout item: unknown kind %q", kind.Type)
	}
	return nil
}

// Validate checks structural constraints the JSON schema cannot express.
// Saved state is external input: violations are errors, not panics.
func (s *ItemState) Validate() error {
	switch s.Type {
	case ItemSplit:
		if s.Fraction < 0 || s.Fraction > 1 {
			return fmt.Errorf("split fraction %v outside [0, 1]", s.Fraction)
		}
		if s.First == nil || s.Second == nil {
			return fmt.Errorf("split item missing a child")
		}
		if err := s.First.Validate(); err != nil {
			return err
		}
		return s.Second.Validate()
	case ItemTabs:
		if len(s.Children) == 0 {
			return fmt.Errorf("tabs item has no children")
		}
		if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Children) {
			return fmt.Errorf("tabs active index %d outside 0..%d", s.ActiveIndex, len(s.Children)-1)
		}
		for _, c := range s.Children {
			if c.Type == ItemSplit {
				return fmt.Errorf("tabs item holds a split child")
			}
			if err := c.Validate(); err != nil {
				return err
			}
		}
		return nil
	case ItemPanel:
		if s.PanelName == "" {
			return fmt.Errorf("panel item has no panel name")
		}
		return nil
	}
	return fmt.Errorf("unknown item kind %q", s.Type)
}

// Equal reports whether two items describe the same layout.
func (s *ItemState) Equal(other *ItemState) bool {
	a, errA := json.Marshal(s)
	b, errB := json.Marshal(other)
	if errA != nil || errB != nil {
		return false
	}
	return string(a) == string(b)
}

// EncodeAreaState marshals state as an indented JSON document.
func EncodeAreaState(state *AreaState) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

// DecodeAreaState parses and validates a saved layout document.
func DecodeAreaState(data []byte) (*AreaState, error) {
	var state AreaState
	if err := jsonutil.UnmarshalWithContext(data, &state, "dock area state"); err != nil {
		return nil, err
	}
	if state.Root == nil {
		return nil, fmt.Errorf("dock area state: missing root")
	}
	if err := state.Root.Validate(); err != nil {
		return nil, fmt.Errorf("dock area state: %w", err)
	}
	return &state, nil
}

// TreeState converts a layout tree to its serialized shape. Leaves become
// tabs items via dump; splits fold into binary split items; an empty
// child is elided by promoting its sibling. Returns nil for an all-empty
// tree.
func TreeState[Tab any](t *Tree[Tab], dump func(Tab) *ItemState) *ItemState {
	return nodeState(t, 0, dump)
}

func nodeState[Tab any](t *Tree[Tab], ix int, dump func(Tab) *ItemState) *ItemState {
	n := t.Node(ix)
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case NodeLeaf:
		children := make([]*ItemState, 0, n.TabCount())
		for _, tab := range n.Tabs() {
			if item := dump(tab); item != nil {
				children = append(children, item)
			}
		}
		if len(children) == 0 {
			return nil
		}
		active := n.Active()
		if active >= len(children) {
			active = 0
		}
		return TabsItem(active, children...)
	case NodeHorizontal, NodeVertical:
		axis := Horizontal
		if n.Kind() == NodeVertical {
			axis = Vertical
		}
		first := nodeState(t, LeftChildIndex(ix), dump)
		second := nodeState(t, RightChildIndex(ix), dump)
		if first == nil {
			return second
		}
		if second == nil {
			return first
		}
		return SplitItem(axis, n.Fraction(), first, second)
	}
	return nil
}
