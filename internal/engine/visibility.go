package engine

import (
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

// visInset pulls the corner sample points off the exact frame edge so
// a window overlapped by a 1-2px border is not miscounted as covered.
const visInset = 5

// FrameVisible reports whether any of the five sample points of f (four
// corners inset by a few pixels plus the center) escapes every frame in
// above. above holds the frames strictly in front of f in z-order.
func FrameVisible(f geometry.Rect, above []geometry.Rect) bool {
	points := [5][2]float64{
		{f.X + visInset, f.Y + visInset},
		{f.MaxX() - visInset, f.Y + visInset},
		{f.X + visInset, f.MaxY() - visInset},
		{f.MaxX() - visInset, f.MaxY() - visInset},
		{f.CenterX(), f.CenterY()},
	}
	for _, p := range points {
		covered := false
		for _, a := range above {
			if a.Contains(p[0], p[1]) {
				covered = true
				break
			}
		}
		if !covered {
			return true
		}
	}
	return false
}

// VisibleOnScreen filters a front-to-back window list down to the
// standard windows on the given screen that are at least partially
// visible. A window belongs to the screen when its center point lies
// inside the screen frame, which handles boundary-spanning windows
// better than the platform's owning-screen answer. The focused window
// survives the visibility filter even when fully covered, so there is
// always a navigation anchor.
func VisibleOnScreen(wins []platform.Window, screen geometry.Rect, focused platform.WindowID) []platform.Window {
	var result []platform.Window
	var above []geometry.Rect

	for _, w := range wins {
		if !w.Standard || w.Minimized {
			continue
		}
		if !screen.Contains(w.Frame.CenterX(), w.Frame.CenterY()) {
			continue
		}
		if w.ID == focused || FrameVisible(w.Frame, above) {
			result = append(result, w)
		}
		above = append(above, w.Frame)
	}
	return result
}
