package engine

import (
	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
	"github.com/1broseidon/nudge/internal/undo"
)

// Cycler implements the progressive toggles: center, maximize and the
// half/third width cycle. Each call classifies the current frame
// against the candidate targets by tolerance comparison and advances to
// the next one; the pre-cycle frame is saved once on entry and restored
// at the end of the sequence.
type Cycler struct {
	backend platform.Backend
	cfg     *config.Config
	store   *undo.Store
}

// NewCycler creates the engine.
func NewCycler(backend platform.Backend, cfg *config.Config, store *undo.Store) *Cycler {
	return &Cycler{backend: backend, cfg: cfg, store: store}
}

// Center toggles through vertical center, full center, restore.
func (c *Cycler) Center(win platform.Window) error {
	scr, ok := screenFrameOf(c.backend, win.ID)
	if !ok {
		return nil
	}
	f, s := win.Frame, scr.Frame
	tol := c.cfg.StateTolerance

	switch {
	case !geometry.Approx(f.CenterY(), s.CenterY(), tol):
		c.store.SaveOnce(win.ID, undo.FeatureCenter, f)
		f.Y = s.Y + (s.H-f.H)/2
	case !geometry.Approx(f.CenterX(), s.CenterX(), tol):
		c.store.SaveOnce(win.ID, undo.FeatureCenter, f)
		f.X = s.X + (s.W-f.W)/2
	default:
		saved, had := c.store.Take(win.ID, undo.FeatureCenter)
		if !had {
			return nil
		}
		f = saved.Frame
	}
	return c.backend.SetFrame(win.ID, f)
}

// Maximize cycles max-height, full maximize, restore. The two
// membership tests are independent so an externally maximized window is
// picked up at the right step.
func (c *Cycler) Maximize(win platform.Window) error {
	scr, ok := screenFrameOf(c.backend, win.ID)
	if !ok {
		return nil
	}
	f, s := win.Frame, scr.Frame
	tol := c.cfg.StateTolerance

	isMaxHeight := geometry.Approx(f.H, s.H, tol) && geometry.Approx(f.Y, s.Y, tol)
	isFull := isMaxHeight && geometry.Approx(f.W, s.W, tol) && geometry.Approx(f.X, s.X, tol)

	switch {
	case !isMaxHeight:
		c.store.SaveOnce(win.ID, undo.FeatureMaximize, f)
		f.Y = s.Y
		f.H = s.H
	case !isFull:
		c.store.SaveOnce(win.ID, undo.FeatureMaximize, f)
		f = s
	default:
		saved, had := c.store.Take(win.ID, undo.FeatureMaximize)
		if !had {
			return nil
		}
		f = saved.Frame
	}
	return c.backend.SetFrame(win.ID, f)
}

// HalfThird cycles the window through half, third, mid-third,
// two-thirds of the screen width at full height, then restores. side is
// left or right and controls which screen edge the window aligns to.
// Any frame that matches none of the steps re-enters the cycle at half
// width after saving the pre-cycle frame.
func (c *Cycler) HalfThird(side geometry.Direction, win platform.Window) error {
	if !side.Horizontal() {
		return nil
	}
	scr, ok := screenFrameOf(c.backend, win.ID)
	if !ok {
		return nil
	}
	f, s := win.Frame, scr.Frame
	tol := c.cfg.StateTolerance

	half := s.W / 2
	third := s.W / 3
	twoThirds := s.W * 2 / 3

	fullHeight := geometry.Approx(f.H, s.H, tol) && geometry.Approx(f.Y, s.Y, tol)
	aligned := geometry.Approx(f.X, s.X, tol)
	if side == geometry.DirRight {
		aligned = geometry.Approx(f.MaxX(), s.MaxX(), tol)
	}
	centered := geometry.Approx(f.CenterX(), s.CenterX(), tol)

	atHalf := fullHeight && aligned && geometry.Approx(f.W, half, tol)
	atThird := fullHeight && aligned && geometry.Approx(f.W, third, tol)
	atMidThird := fullHeight && centered && geometry.Approx(f.W, third, tol)
	atTwoThirds := fullHeight && aligned && geometry.Approx(f.W, twoThirds, tol)

	var next geometry.Rect
	switch {
	case atHalf:
		next = c.sideFrame(s, side, third)
	case atThird:
		next = geometry.Rect{X: s.X + (s.W-third)/2, Y: s.Y, W: third, H: s.H}
	case atMidThird:
		next = c.sideFrame(s, side, twoThirds)
	case atTwoThirds:
		saved, had := c.store.Take(win.ID, undo.FeatureHalfThird)
		if !had {
			// Nothing to restore (the cycle was entered externally);
			// wrap back to the first step.
			next = c.sideFrame(s, side, half)
			break
		}
		next = saved.Frame
	default:
		c.store.SaveOnce(win.ID, undo.FeatureHalfThird, f)
		next = c.sideFrame(s, side, half)
	}
	return c.backend.SetFrame(win.ID, next)
}

func (c *Cycler) sideFrame(s geometry.Rect, side geometry.Direction, w float64) geometry.Rect {
	x := s.X
	if side == geometry.DirRight {
		x = s.MaxX() - w
	}
	return geometry.Rect{X: x, Y: s.Y, W: w, H: s.H}
}
