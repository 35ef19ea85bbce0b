package engine

import (
	"testing"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
	"github.com/1broseidon/nudge/internal/undo"
)

func shrinkFixture(cfg *config.Config, f geometry.Rect) (*Shrinker, *fakeBackend) {
	b := newFakeBackend(platform.Screen{ID: 1, Frame: geometry.Rect{W: 1920, H: 1080}, Primary: true})
	b.add(platform.Window{ID: 1, App: "term", Frame: f, Standard: true})
	return NewShrinker(b, cfg, undo.NewStore()), b
}

func TestShrinkConvergesOnWindowMinimum(t *testing.T) {
	orig := geometry.Rect{X: 100, Y: 100, W: 800, H: 600}
	s, b := shrinkFixture(config.Default(), orig)
	b.minW[1] = 500 // the window refuses to go narrower

	if err := s.Toggle(geometry.DirLeft, b.win(1)); err != nil {
		t.Fatalf("Toggle left: %v", err)
	}
	if got := b.frame(1).W; got != 500 {
		t.Fatalf("width after shrink = %v, want 500", got)
	}
	if got := b.frame(1).H; got != 600 {
		t.Fatalf("height changed during width shrink: %v", got)
	}

	// Opposite direction restores the pre-shrink width.
	if err := s.Toggle(geometry.DirRight, b.win(1)); err != nil {
		t.Fatalf("Toggle right: %v", err)
	}
	if got := b.frame(1); !got.ApproxEq(orig, 0.01) {
		t.Fatalf("restore = %v, want %v", got, orig)
	}
}

func TestShrinkStopsAtConfiguredMinimum(t *testing.T) {
	cfg := config.Default()
	cfg.Apps = map[string]config.AppRule{"term": {MinWidth: 600}}

	s, b := shrinkFixture(cfg, geometry.Rect{X: 100, Y: 100, W: 800, H: 600})

	if err := s.Toggle(geometry.DirLeft, b.win(1)); err != nil {
		t.Fatalf("Toggle left: %v", err)
	}
	if got := b.frame(1).W; got != 600 {
		t.Fatalf("width after shrink = %v, want configured minimum 600", got)
	}
}

func TestShrinkVerticalRoundTrip(t *testing.T) {
	orig := geometry.Rect{X: 100, Y: 100, W: 800, H: 600}
	s, b := shrinkFixture(config.Default(), orig)
	b.minH[1] = 300

	if err := s.Toggle(geometry.DirUp, b.win(1)); err != nil {
		t.Fatalf("Toggle up: %v", err)
	}
	if got := b.frame(1).H; got != 300 {
		t.Fatalf("height after shrink = %v, want 300", got)
	}
	if err := s.Toggle(geometry.DirDown, b.win(1)); err != nil {
		t.Fatalf("Toggle down: %v", err)
	}
	if got := b.frame(1); !got.ApproxEq(orig, 0.01) {
		t.Fatalf("restore = %v, want %v", got, orig)
	}
}

func TestShrinkGrowsToEdgeWhenNotShrunk(t *testing.T) {
	s, b := shrinkFixture(config.Default(), geometry.Rect{X: 100, Y: 100, W: 800, H: 600})

	if err := s.Toggle(geometry.DirRight, b.win(1)); err != nil {
		t.Fatalf("Toggle right: %v", err)
	}
	if got := b.frame(1).W; got != 1820 {
		t.Fatalf("width after grow-to-edge = %v, want 1820", got)
	}

	if err := s.Toggle(geometry.DirDown, b.win(1)); err != nil {
		t.Fatalf("Toggle down: %v", err)
	}
	if got := b.frame(1).H; got != 980 {
		t.Fatalf("height after grow-to-edge = %v, want 980", got)
	}
}

func TestShrinkIndependentAxes(t *testing.T) {
	orig := geometry.Rect{X: 100, Y: 100, W: 800, H: 600}
	s, b := shrinkFixture(config.Default(), orig)
	b.minW[1] = 500
	b.minH[1] = 300

	if err := s.Toggle(geometry.DirLeft, b.win(1)); err != nil {
		t.Fatalf("Toggle left: %v", err)
	}
	if err := s.Toggle(geometry.DirUp, b.win(1)); err != nil {
		t.Fatalf("Toggle up: %v", err)
	}

	// Restoring the height must leave the shrunk width alone.
	if err := s.Toggle(geometry.DirDown, b.win(1)); err != nil {
		t.Fatalf("Toggle down: %v", err)
	}
	got := b.frame(1)
	if got.W != 500 || got.H != 600 {
		t.Fatalf("after height restore: %v, want w=500 h=600", got)
	}
}
