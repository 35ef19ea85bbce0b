package screens

import (
	"testing"

	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

func threeStack() []platform.Screen {
	// Laptop at the bottom (primary), two externals stacked above it.
	return []platform.Screen{
		{ID: 0, Name: "eDP-1", Primary: true, Frame: geometry.Rect{X: 0, Y: 2240, W: 1920, H: 1080}},
		{ID: 1, Name: "DP-1", Frame: geometry.Rect{X: 0, Y: 1080, W: 1920, H: 1160}},
		{ID: 2, Name: "DP-2", Frame: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
	}
}

func TestBuildMapCenterColumn(t *testing.T) {
	m := BuildMap(threeStack(), nil)

	if m[RoleBottom].ID != 0 {
		t.Fatalf("bottom = %d, want primary laptop 0", m[RoleBottom].ID)
	}
	if m[RoleCenter].ID != 1 {
		t.Fatalf("center = %d, want 1", m[RoleCenter].ID)
	}
	if m[RoleTop].ID != 2 {
		t.Fatalf("top = %d, want 2", m[RoleTop].ID)
	}
	if _, ok := m[RoleLeft]; ok {
		t.Fatalf("no left screen expected")
	}
}

func TestBuildMapSides(t *testing.T) {
	all := []platform.Screen{
		{ID: 0, Name: "eDP-1", Primary: true, Frame: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{ID: 1, Name: "HDMI-1", Frame: geometry.Rect{X: -1280, Y: 0, W: 1280, H: 1024}},
		{ID: 2, Name: "DP-3", Frame: geometry.Rect{X: 1920, Y: 0, W: 2560, H: 1440}},
	}
	m := BuildMap(all, nil)

	if m[RoleLeft].ID != 1 {
		t.Fatalf("left = %d, want 1", m[RoleLeft].ID)
	}
	if m[RoleRight].ID != 2 {
		t.Fatalf("right = %d, want 2", m[RoleRight].ID)
	}
	if m[RoleBottom].ID != 0 {
		t.Fatalf("anchor should classify as bottom, got %d", m[RoleBottom].ID)
	}
}

func TestBuildMapNameOverrideWins(t *testing.T) {
	m := BuildMap(threeStack(), map[string]string{"top": "dp-1"})

	if m[RoleTop].ID != 1 {
		t.Fatalf("override should pin DP-1 as top, got %d", m[RoleTop].ID)
	}
	// DP-2 still classifies into the column but cannot displace the
	// overridden top role.
	if m[RoleBottom].ID != 0 {
		t.Fatalf("bottom = %d, want 0", m[RoleBottom].ID)
	}
}

func TestBuildMapOverrideExactBeatsSubstring(t *testing.T) {
	// "DP-1" is a substring of the laptop's eDP-1 name too; the exact
	// name must win regardless of enumeration order.
	m := BuildMap(threeStack(), map[string]string{"top": "DP-1"})
	if m[RoleTop].ID != 1 {
		t.Fatalf("top = %d, want exact DP-1 match 1", m[RoleTop].ID)
	}

	// Without an exact hit, substring matching still applies.
	m = BuildMap(threeStack(), map[string]string{"center": "edp"})
	if m[RoleCenter].ID != 0 {
		t.Fatalf("center = %d, want substring eDP-1 match 0", m[RoleCenter].ID)
	}
}

func TestNeighborPicksNearest(t *testing.T) {
	all := []platform.Screen{
		{ID: 0, Frame: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{ID: 1, Frame: geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
		{ID: 2, Frame: geometry.Rect{X: 3840, Y: 0, W: 1920, H: 1080}},
	}

	got, ok := Neighbor(all, all[0], East)
	if !ok || got.ID != 1 {
		t.Fatalf("east neighbor of 0 = %d ok=%v, want 1", got.ID, ok)
	}
	got, ok = Neighbor(all, all[2], West)
	if !ok || got.ID != 1 {
		t.Fatalf("west neighbor of 2 = %d ok=%v, want 1", got.ID, ok)
	}
	if _, ok := Neighbor(all, all[0], West); ok {
		t.Fatalf("no screen west of the leftmost display")
	}
	if _, ok := Neighbor(all, all[1], North); ok {
		t.Fatalf("no screen north in a single row")
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("top"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseRole("middle"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
