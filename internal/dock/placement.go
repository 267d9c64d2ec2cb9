package dock

import "dockspace/internal/jsonutil"

// Axis is the direction along which a container lays out its children.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalJSON implements json.Marshaler.
func (a Axis) MarshalJSON() ([]byte, error) {
	return jsonutil.MarshalEnum(a)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Axis) UnmarshalJSON(data []byte) error {
	v, err := jsonutil.UnmarshalEnum(data, ParseAxis)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAxis converts a string to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, jsonutil.BadEnumValue("axis", s)
}

// Placement is the edge a panel stack attaches to. PlacementCenter is the
// distinguished no-placement used for the non-dock root content.
type Placement int

const (
	PlacementCenter Placement = iota
	PlacementTop
	PlacementBottom
	PlacementLeft
	PlacementRight
)

// String implements fmt.Stringer.
func (p Placement) String() string {
	switch p {
	case PlacementTop:
		return "top"
	case PlacementBottom:
		return "bottom"
	case PlacementLeft:
		return "left"
	case PlacementRight:
		return "right"
	}
	return "center"
}

// Axis returns the sizing axis governed by the placement: left/right
// edges size horizontally, top/bottom edges vertically.
func (p Placement) Axis() Axis {
	if p == PlacementTop || p == PlacementBottom {
		return Vertical
	}
	return Horizontal
}

// Before reports whether an insert at this placement lands before the
// reference index (top/left) rather than after it (right/bottom).
func (p Placement) Before() bool {
	return p == PlacementTop || p == PlacementLeft
}

// Split is the direction in which a tree node is split. The name states
// where the new region goes relative to the node's previous content.
type Split int

const (
	SplitLeft Split = iota
	SplitRight
	SplitAbove
	SplitBelow
)

// IsHorizontal reports whether the split divides width.
func (s Split) IsHorizontal() bool {
	return s == SplitLeft || s == SplitRight
}

// IsVertical reports whether the split divides height.
func (s Split) IsVertical() bool {
	return s == SplitAbove || s == SplitBelow
}
