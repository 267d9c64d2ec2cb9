package dock

import (
	"encoding/json"
	"testing"
)

func TestAxisJSON(t *testing.T) {
	data, err := json.Marshal(Vertical)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"vertical"` {
		t.Errorf("Marshal(Vertical) = %s, want %q", data, `"vertical"`)
	}

	var a Axis
	if err := json.Unmarshal([]byte(`"horizontal"`), &a); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if a != Horizontal {
		t.Errorf("Unmarshal = %v, want Horizontal", a)
	}

	if err := json.Unmarshal([]byte(`"diagonal"`), &a); err == nil {
		t.Error("Unmarshal of unknown axis should fail")
	}
}

func TestPlacementAxisAndOrder(t *testing.T) {
	tests := []struct {
		placement Placement
		axis      Axis
		before    bool
	}{
		{PlacementTop, Vertical, true},
		{PlacementBottom, Vertical, false},
		{PlacementLeft, Horizontal, true},
		{PlacementRight, Horizontal, false},
	}
	for _, tt := range tests {
		t.Run(tt.placement.String(), func(t *testing.T) {
			if got := tt.placement.Axis(); got != tt.axis {
				t.Errorf("Axis() = %v, want %v", got, tt.axis)
			}
			if got := tt.placement.Before(); got != tt.before {
				t.Errorf("Before() = %v, want %v", got, tt.before)
			}
		})
	}
}

func TestSplitOrientation(t *testing.T) {
	for _, s := range []Split{SplitLeft, SplitRight} {
		if !s.IsHorizontal() || s.IsVertical() {
			t.Errorf("%d should be horizontal", s)
		}
	}
	for _, s := range []Split{SplitAbove, SplitBelow} {
		if !s.IsVertical() || s.IsHorizontal() {
			t.Errorf("%d should be vertical", s)
		}
	}
}
