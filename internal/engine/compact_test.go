package engine

import (
	"testing"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

func TestPlaceCompactRowPacking(t *testing.T) {
	s := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	const cw, ch = 400, 260

	var docked []geometry.Rect
	wantX := []float64{0, 400, 800}
	for i, x := range wantX {
		got, ok := PlaceCompact(s, docked, cw, ch)
		if !ok {
			t.Fatalf("placement %d failed", i)
		}
		want := geometry.Rect{X: x, Y: 540, W: cw, H: ch}
		if got != want {
			t.Fatalf("placement %d: %v, want %v", i, got, want)
		}
		docked = append(docked, got)
	}

	// Row 0 is full; the fourth window starts row 1 at the left edge.
	got, ok := PlaceCompact(s, docked, cw, ch)
	if !ok {
		t.Fatal("fourth placement failed")
	}
	want := geometry.Rect{X: 0, Y: 280, W: cw, H: ch}
	if got != want {
		t.Fatalf("fourth placement: %v, want %v", got, want)
	}
}

func TestPlaceCompactIgnoresOtherGeometry(t *testing.T) {
	// Occupant slightly off the exact row y still buckets into row 0.
	s := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	docked := []geometry.Rect{{X: 0, Y: 533, W: 400, H: 260}}

	got, ok := PlaceCompact(s, docked, 400, 260)
	if !ok {
		t.Fatal("placement failed")
	}
	if got.X != 400 || got.Y != 540 {
		t.Fatalf("placement = %v, want x=400 y=540", got)
	}
}

func TestCompactToggleRoundTrip(t *testing.T) {
	b := newFakeBackend(platform.Screen{ID: 1, Frame: geometry.Rect{W: 1200, H: 800}, Primary: true})
	orig := geometry.Rect{X: 150, Y: 120, W: 900, H: 500}
	b.add(platform.Window{ID: 1, App: "term", Frame: orig, Standard: true})

	cfg := config.Default()
	cfg.CompactWidth, cfg.CompactHeight = 400, 260
	p := NewCompactPlacer(b, cfg)

	if err := p.Toggle(b.win(1)); err != nil {
		t.Fatalf("dock: %v", err)
	}
	want := geometry.Rect{X: 0, Y: 540, W: 400, H: 260}
	if got := b.frame(1); got != want {
		t.Fatalf("docked frame = %v, want %v", got, want)
	}
	if !p.Docked(1) {
		t.Fatal("window not registered as docked")
	}

	if err := p.Toggle(b.win(1)); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := b.frame(1); got != orig {
		t.Fatalf("restored frame = %v, want %v", got, orig)
	}
	if p.Docked(1) {
		t.Fatal("window still registered after restore")
	}
}

func TestCompactPrunesClosedWindows(t *testing.T) {
	b := newFakeBackend(platform.Screen{ID: 1, Frame: geometry.Rect{W: 1200, H: 800}, Primary: true})
	b.add(platform.Window{ID: 1, App: "term", Frame: geometry.Rect{X: 100, Y: 100, W: 800, H: 500}, Standard: true})
	b.add(platform.Window{ID: 2, App: "term", Frame: geometry.Rect{X: 200, Y: 150, W: 800, H: 500}, Standard: true})

	cfg := config.Default()
	cfg.CompactWidth, cfg.CompactHeight = 400, 260
	p := NewCompactPlacer(b, cfg)

	if err := p.Toggle(b.win(1)); err != nil {
		t.Fatalf("dock 1: %v", err)
	}
	b.remove(1)

	// The stale entry must not hold the x=0 slot.
	if err := p.Toggle(b.win(2)); err != nil {
		t.Fatalf("dock 2: %v", err)
	}
	if got := b.frame(2); got.X != 0 || got.Y != 540 {
		t.Fatalf("docked frame = %v, want x=0 y=540", got)
	}
}

func TestCompactPerAppSizeOverride(t *testing.T) {
	b := newFakeBackend(platform.Screen{ID: 1, Frame: geometry.Rect{W: 1200, H: 800}, Primary: true})
	b.add(platform.Window{ID: 1, App: "player", Frame: geometry.Rect{X: 100, Y: 100, W: 800, H: 500}, Standard: true})

	cfg := config.Default()
	cfg.Apps = map[string]config.AppRule{"player": {CompactWidth: 320, CompactHeight: 180}}
	p := NewCompactPlacer(b, cfg)

	if err := p.Toggle(b.win(1)); err != nil {
		t.Fatalf("dock: %v", err)
	}
	got := b.frame(1)
	if got.W != 320 || got.H != 180 {
		t.Fatalf("docked size = %vx%v, want 320x180", got.W, got.H)
	}
	if got.Y != 620 {
		t.Fatalf("docked y = %v, want 620", got.Y)
	}
}
