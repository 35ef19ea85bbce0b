// Package engine implements the window geometry state engines and the
// directional focus navigator. Every operation is a function of the
// focused window and a direction; engines read the window's frame and
// screen from the platform backend, consult per-feature undo memory,
// and write one new frame back. Cycle state is never stored: each call
// recomputes where the window stands from geometric proximity, so the
// toggles self-heal when something else moves the window between calls.
package engine

import (
	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

// Highlighter receives transient visual feedback requests. The
// implementation owns its removal timing; engines fire and forget.
type Highlighter interface {
	Flash(f geometry.Rect, edges []geometry.Direction)
}

// resizeStep is the pass-through one-step resize primitive: the
// bottom-right corner moves one step while the top-left corner stays
// fixed. Left/up shrink, right/down grow. Shrinking floors at minW/minH
// (0 means no configured floor beyond a small hard minimum).
func resizeStep(f geometry.Rect, dir geometry.Direction, step, minW, minH float64) geometry.Rect {
	const hardMin = 20
	switch dir {
	case geometry.DirLeft:
		floor := minW
		if floor < hardMin {
			floor = hardMin
		}
		if f.W-step > floor {
			f.W -= step
		} else {
			f.W = floor
		}
	case geometry.DirRight:
		f.W += step
	case geometry.DirUp:
		floor := minH
		if floor < hardMin {
			floor = hardMin
		}
		if f.H-step > floor {
			f.H -= step
		} else {
			f.H = floor
		}
	case geometry.DirDown:
		f.H += step
	}
	return f
}

// stepFor sizes one resize step relative to the screen axis.
func stepFor(cfg *config.Config, s geometry.Rect, dir geometry.Direction) float64 {
	if dir.Horizontal() {
		return s.W / cfg.StepDivisor
	}
	return s.H / cfg.StepDivisor
}

// movedEdges reports which edges changed between two frames, used for
// the edge-highlight notification.
func movedEdges(before, after geometry.Rect) []geometry.Direction {
	const eps = 0.01
	var edges []geometry.Direction
	if !geometry.Approx(before.X, after.X, eps) {
		edges = append(edges, geometry.DirLeft)
	}
	if !geometry.Approx(before.MaxX(), after.MaxX(), eps) {
		edges = append(edges, geometry.DirRight)
	}
	if !geometry.Approx(before.Y, after.Y, eps) {
		edges = append(edges, geometry.DirUp)
	}
	if !geometry.Approx(before.MaxY(), after.MaxY(), eps) {
		edges = append(edges, geometry.DirDown)
	}
	return edges
}

// screenFrameOf fetches the window's screen frame. ok=false means the
// operation has no subject and should silently no-op.
func screenFrameOf(b platform.Backend, id platform.WindowID) (platform.Screen, bool) {
	scr, err := b.ScreenOf(id)
	if err != nil {
		return platform.Screen{}, false
	}
	return scr, true
}
