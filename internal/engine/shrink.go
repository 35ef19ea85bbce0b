package engine

import (
	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
	"github.com/1broseidon/nudge/internal/undo"
)

// Shrinker drives the convergent shrink-to-minimum toggle. Left/up
// shrink the corresponding dimension by repeated one-step resizes until
// the size stops changing (the OS minimum) or the configured per-app
// minimum is reached. Right/down restore the pre-shrink geometry when a
// shrink is active, and otherwise grow the window to the matching
// screen edge.
type Shrinker struct {
	backend platform.Backend
	cfg     *config.Config
	store   *undo.Store
}

// NewShrinker creates the engine.
func NewShrinker(backend platform.Backend, cfg *config.Config, store *undo.Store) *Shrinker {
	return &Shrinker{backend: backend, cfg: cfg, store: store}
}

// Toggle applies the shrink/restore behavior for dir.
func (s *Shrinker) Toggle(dir geometry.Direction, win platform.Window) error {
	switch dir {
	case geometry.DirLeft, geometry.DirUp:
		return s.shrink(dir, win)
	default:
		return s.restoreOrGrow(dir, win)
	}
}

func (s *Shrinker) shrink(dir geometry.Direction, win platform.Window) error {
	scr, ok := screenFrameOf(s.backend, win.ID)
	if !ok {
		return nil
	}
	step := stepFor(s.cfg, scr.Frame, dir)
	minW, minH, _ := s.cfg.MinSizeFor(win.App)

	feat := undo.FeatureShrinkW
	if dir == geometry.DirUp {
		feat = undo.FeatureShrinkH
	}

	prev := win.Frame
	changed := false
	// The primitive is not analytically invertible: the OS clamps each
	// request to the window's real minimum, so we iterate to a fixed
	// point with a hard cap.
	for i := 0; i < s.cfg.ShrinkMaxIterations; i++ {
		req := resizeStep(prev, dir, step, minW, minH)
		if sameSize(req, prev, dir) {
			break // configured minimum reached
		}
		if err := s.backend.SetFrame(win.ID, req); err != nil {
			break
		}
		cur, exists, err := s.backend.Window(win.ID)
		if err != nil || !exists {
			break
		}
		if sameSize(cur.Frame, prev, dir) {
			break // fixed point: the OS refused to go smaller
		}
		prev = cur.Frame
		changed = true
	}

	if changed {
		s.store.SaveOnce(win.ID, feat, win.Frame)
	}
	return nil
}

func (s *Shrinker) restoreOrGrow(dir geometry.Direction, win platform.Window) error {
	feat := undo.FeatureShrinkW
	if dir == geometry.DirDown {
		feat = undo.FeatureShrinkH
	}

	if saved, ok := s.store.Take(win.ID, feat); ok {
		f := win.Frame
		if dir == geometry.DirRight {
			f.X = saved.Frame.X
			f.W = saved.Frame.W
		} else {
			f.Y = saved.Frame.Y
			f.H = saved.Frame.H
		}
		return s.backend.SetFrame(win.ID, f)
	}

	// Not shrunk: grow to the matching screen edge instead.
	scr, ok := screenFrameOf(s.backend, win.ID)
	if !ok {
		return nil
	}
	f := win.Frame
	if dir == geometry.DirRight {
		f.W = scr.Frame.MaxX() - f.X
	} else {
		f.H = scr.Frame.MaxY() - f.Y
	}
	if f == win.Frame {
		return nil
	}
	return s.backend.SetFrame(win.ID, f)
}

// sameSize compares the dimension relevant to dir within a sub-pixel
// epsilon.
func sameSize(a, b geometry.Rect, dir geometry.Direction) bool {
	const eps = 0.01
	if dir.Horizontal() {
		return geometry.Approx(a.W, b.W, eps)
	}
	return geometry.Approx(a.H, b.H, eps)
}
