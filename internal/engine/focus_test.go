package engine

import (
	"testing"

	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

func TestFrameVisibleOcclusion(t *testing.T) {
	front := geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}

	tests := []struct {
		name  string
		f     geometry.Rect
		above []geometry.Rect
		want  bool
	}{
		{
			name:  "nothing above",
			f:     geometry.Rect{X: 0, Y: 0, W: 960, H: 1080},
			above: nil,
			want:  true,
		},
		{
			name:  "fully covered by full-screen window",
			f:     geometry.Rect{X: 0, Y: 0, W: 960, H: 1080},
			above: []geometry.Rect{front},
			want:  false,
		},
		{
			name:  "right half also fully covered",
			f:     geometry.Rect{X: 1000, Y: 0, W: 920, H: 1080},
			above: []geometry.Rect{front},
			want:  false,
		},
		{
			name:  "one corner escapes",
			f:     geometry.Rect{X: 1600, Y: 0, W: 400, H: 400},
			above: []geometry.Rect{front},
			want:  true,
		},
		{
			name: "covered by union but no single cover",
			f:    geometry.Rect{X: 400, Y: 400, W: 400, H: 400},
			above: []geometry.Rect{
				{X: 0, Y: 0, W: 700, H: 1080},
				{X: 500, Y: 0, W: 1000, H: 1080},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameVisible(tt.f, tt.above); got != tt.want {
				t.Fatalf("FrameVisible(%v) = %v, want %v", tt.f, got, tt.want)
			}
		})
	}
}

func TestVisibleOnScreenRetainsFocused(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	wins := []platform.Window{
		{ID: 1, Frame: screen, Standard: true},                                         // front, covers all
		{ID: 2, Frame: geometry.Rect{X: 100, Y: 100, W: 800, H: 600}, Standard: true},  // covered, focused
		{ID: 3, Frame: geometry.Rect{X: 300, Y: 300, W: 800, H: 600}, Standard: true},  // covered
		{ID: 4, Frame: geometry.Rect{X: 2100, Y: 100, W: 400, H: 400}, Standard: true}, // other screen
		{ID: 5, Frame: geometry.Rect{X: 500, Y: 100, W: 400, H: 400}},                  // not standard
	}

	got := VisibleOnScreen(wins, screen, 2)
	ids := make([]platform.WindowID, len(got))
	for i, w := range got {
		ids[i] = w.ID
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("visible ids = %v, want [1 2]", ids)
	}
}

func TestNavigatePrefersShadowSet(t *testing.T) {
	scr := platform.Screen{ID: 1, Frame: geometry.Rect{W: 2000, H: 1080}, Primary: true}
	b := newFakeBackend(scr)
	b.add(platform.Window{ID: 1, Frame: geometry.Rect{X: 0, Y: 0, W: 400, H: 400}, Standard: true})
	b.add(platform.Window{ID: 2, Frame: geometry.Rect{X: 500, Y: 100, W: 300, H: 300}, Standard: true})   // vertical overlap
	b.add(platform.Window{ID: 3, Frame: geometry.Rect{X: 1500, Y: 700, W: 300, H: 300}, Standard: true}) // no overlap
	b.focused = 1

	n := NewFocusNavigator(b)
	if err := n.Navigate(geometry.DirRight, b.win(1)); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if b.focused != 2 {
		t.Fatalf("focused %d, want the in-shadow candidate 2", b.focused)
	}
	if len(b.raised) != 1 || b.raised[0] != 2 {
		t.Fatalf("raised %v, want [2]", b.raised)
	}
}

func TestNavigateWrapsAround(t *testing.T) {
	scr := platform.Screen{ID: 1, Frame: geometry.Rect{W: 2000, H: 1080}, Primary: true}
	b := newFakeBackend(scr)
	b.add(platform.Window{ID: 1, Frame: geometry.Rect{X: 0, Y: 100, W: 400, H: 400}, Standard: true})
	b.add(platform.Window{ID: 2, Frame: geometry.Rect{X: 900, Y: 100, W: 400, H: 400}, Standard: true})
	b.focused = 1

	n := NewFocusNavigator(b)
	if err := n.Navigate(geometry.DirLeft, b.win(1)); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if b.focused != 2 {
		t.Fatalf("focused %d, want wraparound to 2", b.focused)
	}
}

func TestNavigateAloneIsNoop(t *testing.T) {
	scr := platform.Screen{ID: 1, Frame: geometry.Rect{W: 2000, H: 1080}, Primary: true}
	b := newFakeBackend(scr)
	b.add(platform.Window{ID: 1, Frame: geometry.Rect{X: 0, Y: 100, W: 400, H: 400}, Standard: true})
	b.focused = 1

	n := NewFocusNavigator(b)
	if err := n.Navigate(geometry.DirRight, b.win(1)); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if b.focused != 1 || len(b.raised) != 0 {
		t.Fatalf("lone window changed focus: focused=%d raised=%v", b.focused, b.raised)
	}
}

func TestFocusScreenPicksTrailingEdge(t *testing.T) {
	b := newFakeBackend(
		platform.Screen{ID: 1, Frame: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}, Primary: true},
		platform.Screen{ID: 2, Frame: geometry.Rect{X: -1920, Y: 0, W: 1920, H: 1080}},
	)
	b.add(platform.Window{ID: 1, Frame: geometry.Rect{X: 100, Y: 100, W: 800, H: 600}, Standard: true})
	// On the west screen: 3's right edge is closer to the boundary.
	b.add(platform.Window{ID: 2, Frame: geometry.Rect{X: -1920, Y: 0, W: 400, H: 400}, Standard: true})
	b.add(platform.Window{ID: 3, Frame: geometry.Rect{X: -800, Y: 0, W: 700, H: 400}, Standard: true})
	b.focused = 1

	n := NewFocusNavigator(b)
	if err := n.FocusScreen(geometry.DirLeft, b.win(1)); err != nil {
		t.Fatalf("FocusScreen: %v", err)
	}
	if b.focused != 3 {
		t.Fatalf("focused %d, want 3 (rightmost right edge on the west screen)", b.focused)
	}
}

func TestFocusScreenNoNeighborIsNoop(t *testing.T) {
	b := newFakeBackend(platform.Screen{ID: 1, Frame: geometry.Rect{W: 1920, H: 1080}, Primary: true})
	b.add(platform.Window{ID: 1, Frame: geometry.Rect{X: 100, Y: 100, W: 800, H: 600}, Standard: true})
	b.focused = 1

	n := NewFocusNavigator(b)
	if err := n.FocusScreen(geometry.DirRight, b.win(1)); err != nil {
		t.Fatalf("FocusScreen: %v", err)
	}
	if b.focused != 1 {
		t.Fatalf("focus moved with no neighbor screen: %d", b.focused)
	}
}
