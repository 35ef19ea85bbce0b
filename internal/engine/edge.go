package engine

import (
	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

// EdgeResizer performs the directional step resize. The per-key mapping
// is flat (left/up always shrink, right/down always grow) except for
// the two reversal branches that keep an edge-stuck window stuck to its
// screen edge instead of detaching or jumping screens.
type EdgeResizer struct {
	backend platform.Backend
	cfg     *config.Config
	notify  Highlighter
}

// NewEdgeResizer creates the engine. notify may be nil.
func NewEdgeResizer(backend platform.Backend, cfg *config.Config, notify Highlighter) *EdgeResizer {
	return &EdgeResizer{backend: backend, cfg: cfg, notify: notify}
}

// Step resizes the window one step in the given direction.
func (e *EdgeResizer) Step(dir geometry.Direction, win platform.Window) error {
	scr, ok := screenFrameOf(e.backend, win.ID)
	if !ok {
		return nil
	}

	step := stepFor(e.cfg, scr.Frame, dir)
	next := StepFrame(win.Frame, scr.Frame, dir, step, e.cfg.SnapTolerance)
	if next == win.Frame {
		return nil
	}

	if err := e.backend.SetFrame(win.ID, next); err != nil {
		return err
	}
	if e.notify != nil {
		if edges := movedEdges(win.Frame, next); len(edges) > 0 {
			e.notify.Flash(next, edges)
		}
	}
	return nil
}

// StepFrame computes the stepped frame. Exposed as a pure function so
// the edge-stuck semantics are testable without a backend.
func StepFrame(f, s geometry.Rect, dir geometry.Direction, step, tol float64) geometry.Rect {
	switch dir {
	case geometry.DirLeft:
		rightEdge := s.X + s.W - f.W
		atLeft := f.X <= s.X+tol
		atRight := f.X >= rightEdge-tol
		switch {
		case atLeft && !atRight:
			// Shrinking a left-stuck window would detach it; revert to
			// a grow from the right and re-snap to cancel drift.
			f = resizeStep(f, geometry.DirRight, step, 0, 0)
			f.X = s.X
		case atRight:
			// Stuck to the right edge: shrink, then keep the right
			// edge pinned.
			f = resizeStep(f, geometry.DirLeft, step, 0, 0)
			f.X = s.X + s.W - f.W
		default:
			f = resizeStep(f, geometry.DirLeft, step, 0, 0)
		}

	case geometry.DirRight:
		rightEdge := s.X + s.W - f.W
		atLeft := f.X <= s.X+tol
		atRight := f.X >= rightEdge-tol
		switch {
		case atRight && !atLeft:
			// Growing right would push the window off screen; grow
			// with the right edge pinned instead.
			f = resizeStep(f, geometry.DirRight, step, 0, 0)
			f.X = s.X + s.W - f.W
		case atLeft:
			f = resizeStep(f, geometry.DirRight, step, 0, 0)
			f.X = s.X
		default:
			f = resizeStep(f, geometry.DirRight, step, 0, 0)
		}

	case geometry.DirUp:
		bottomEdge := s.Y + s.H - f.H
		atTop := f.Y <= s.Y+tol
		atBottom := f.Y >= bottomEdge-tol
		switch {
		case atTop && !atBottom:
			f = resizeStep(f, geometry.DirDown, step, 0, 0)
			f.Y = s.Y
		case atBottom:
			f = resizeStep(f, geometry.DirUp, step, 0, 0)
			f.Y = s.Y + s.H - f.H
		default:
			f = resizeStep(f, geometry.DirUp, step, 0, 0)
		}

	case geometry.DirDown:
		bottomEdge := s.Y + s.H - f.H
		atTop := f.Y <= s.Y+tol
		atBottom := f.Y >= bottomEdge-tol
		switch {
		case atBottom && !atTop:
			f = resizeStep(f, geometry.DirDown, step, 0, 0)
			f.Y = s.Y + s.H - f.H
		case atTop:
			f = resizeStep(f, geometry.DirDown, step, 0, 0)
			f.Y = s.Y
		default:
			f = resizeStep(f, geometry.DirDown, step, 0, 0)
		}
	}
	return f
}
