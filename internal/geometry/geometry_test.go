package geometry

import "testing"

func TestApprox(t *testing.T) {
	cases := []struct {
		a, b, tol float64
		want      bool
	}{
		{0, 0, 0, true},
		{100, 104.9, 5, true},
		{100, 105.1, 5, false},
		{104.9, 100, 5, true},
		{-3, 3, 5, false},
	}
	for _, c := range cases {
		if got := Approx(c.a, c.b, c.tol); got != c.want {
			t.Fatalf("Approx(%v, %v, %v) = %v, want %v", c.a, c.b, c.tol, got, c.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 1920, H: 1080}

	if !r.Contains(0, 0) {
		t.Fatalf("expected top-left corner inside")
	}
	if r.Contains(1920, 540) {
		t.Fatalf("right edge is exclusive")
	}
	if !r.Contains(960, 540) {
		t.Fatalf("expected center inside")
	}
}

func TestIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 100}
	b := Rect{X: 50, Y: 50, W: 100, H: 100}
	c := Rect{X: 100, Y: 0, W: 10, H: 10}

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Fatalf("expected a and b to overlap")
	}
	// Touching edges is not an overlap.
	if a.Intersects(c) {
		t.Fatalf("edge-adjacent rects must not intersect")
	}
}

func TestFitInto(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 1280, H: 800}

	// Oversized frame is shrunk to the bounds.
	got := FitInto(Rect{X: 100, Y: 100, W: 1600, H: 900}, bounds)
	if got.W != 1280 || got.H != 800 {
		t.Fatalf("expected frame shrunk to 1280x800, got %v", got)
	}

	// Off-screen frame is pulled back inside without resizing.
	got = FitInto(Rect{X: 1200, Y: 700, W: 400, H: 300}, bounds)
	if got.W != 400 || got.H != 300 {
		t.Fatalf("size should be preserved when it fits, got %v", got)
	}
	if got.MaxX() > bounds.MaxX() || got.MaxY() > bounds.MaxY() {
		t.Fatalf("frame still out of bounds: %v", got)
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"left", "right", "up", "down"} {
		d, err := ParseDirection(s)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", s, err)
		}
		if d.String() != s {
			t.Fatalf("round trip mismatch: %q -> %q", s, d.String())
		}
		if d.Opposite().Opposite() != d {
			t.Fatalf("double opposite of %q should be identity", s)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
