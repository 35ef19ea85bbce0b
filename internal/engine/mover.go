package engine

import (
	"sync"
	"time"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
	"github.com/1broseidon/nudge/internal/screens"
	"github.com/1broseidon/nudge/internal/undo"
)

// Mover relocates the focused window to the screen holding a spatial
// role, preserving apparent position proportionally and clamping to
// fit. Sizes and positions altered by the clamp are remembered
// write-once as the window's natural geometry and restored the next
// time a destination can accommodate them, so a window shrinks when
// thrown to a smaller screen and grows back on return.
//
// Repeating the same throw shortly after undoes it: the pre-throw
// frame is kept with a timestamp and restored when the same role is
// requested again inside the undo window. A throw to a different role
// forfeits the pending undo.
type Mover struct {
	backend platform.Backend
	cfg     *config.Config
	store   *undo.Store

	mu       sync.Mutex
	lastRole map[platform.WindowID]screens.Role
	now      func() time.Time
}

// NewMover creates the engine.
func NewMover(backend platform.Backend, cfg *config.Config, store *undo.Store) *Mover {
	return &Mover{
		backend:  backend,
		cfg:      cfg,
		store:    store,
		lastRole: make(map[platform.WindowID]screens.Role),
		now:      time.Now,
	}
}

// Throw moves the window to the screen holding role.
func (m *Mover) Throw(role screens.Role, win platform.Window) error {
	all, err := m.backend.Screens()
	if err != nil {
		return err
	}
	dst, ok := screens.BuildMap(all, m.cfg.ScreenRoles)[role]
	if !ok {
		return nil
	}
	src, err := m.backend.ScreenOf(win.ID)
	if err != nil {
		return nil
	}

	if m.undoThrow(role, win) {
		return nil
	}
	if src.ID == dst.ID {
		return nil
	}

	target := m.targetFrame(win, src.Frame, dst.Frame)

	m.store.Save(win.ID, undo.FeatureThrow, win.Frame)
	m.mu.Lock()
	m.lastRole[win.ID] = role
	m.mu.Unlock()

	return m.backend.SetFrame(win.ID, target)
}

// undoThrow restores the pre-throw frame when the same role is
// repeated within the undo window. A different role forfeits the
// pending undo without restoring. Returns true when a restore was
// applied.
func (m *Mover) undoThrow(role screens.Role, win platform.Window) bool {
	saved, ok := m.store.Peek(win.ID, undo.FeatureThrow)
	if !ok {
		return false
	}

	m.mu.Lock()
	last, seen := m.lastRole[win.ID]
	m.mu.Unlock()

	if !seen || last != role || m.now().Sub(saved.At) > m.cfg.ThrowUndoWindow() {
		m.store.Clear(win.ID, undo.FeatureThrow)
		m.mu.Lock()
		delete(m.lastRole, win.ID)
		m.mu.Unlock()
		return false
	}

	m.store.Clear(win.ID, undo.FeatureThrow)
	m.mu.Lock()
	delete(m.lastRole, win.ID)
	m.mu.Unlock()
	return m.backend.SetFrame(win.ID, saved.Frame) == nil
}

// targetFrame computes the destination frame: natural size restore or
// size clamp, proportional position with edge-snap overrides, natural
// position restore or position clamp.
func (m *Mover) targetFrame(win platform.Window, src, dst geometry.Rect) geometry.Rect {
	f := win.Frame
	tol := m.cfg.SnapTolerance

	w, h := f.W, f.H
	if nat, ok := m.store.Peek(win.ID, undo.FeatureNaturalSize); ok {
		if nat.Frame.W <= dst.W && nat.Frame.H <= dst.H {
			w, h = nat.Frame.W, nat.Frame.H
			m.store.Clear(win.ID, undo.FeatureNaturalSize)
		}
	}
	clampedW, clampedH := w, h
	if clampedW > dst.W {
		clampedW = dst.W
	}
	if clampedH > dst.H {
		clampedH = dst.H
	}
	if clampedW != w || clampedH != h {
		m.store.SaveOnce(win.ID, undo.FeatureNaturalSize, geometry.Rect{W: w, H: h})
	}
	w, h = clampedW, clampedH

	// Proportional mapping of the source offset onto the destination.
	x := dst.X + (f.X-src.X)/src.W*dst.W
	y := dst.Y + (f.Y-src.Y)/src.H*dst.H

	// Edge-snap overrides: a window truly at one edge (not spanning the
	// whole axis) lands at the matching destination edge.
	atLeft := f.X <= src.X+tol
	atRight := f.MaxX() >= src.MaxX()-tol
	if atLeft && !atRight {
		x = dst.X
	} else if atRight && !atLeft {
		x = dst.MaxX() - w
	}
	atTop := f.Y <= src.Y+tol
	atBottom := f.MaxY() >= src.MaxY()-tol
	if atTop && !atBottom {
		y = dst.Y
	} else if atBottom && !atTop {
		y = dst.MaxY() - h
	}

	if off, ok := m.store.Peek(win.ID, undo.FeatureNaturalPos); ok {
		nx := dst.X + off.Frame.X
		ny := dst.Y + off.Frame.Y
		if nx+w <= dst.MaxX() && ny+h <= dst.MaxY() {
			x, y = nx, ny
			m.store.Clear(win.ID, undo.FeatureNaturalPos)
		}
	}

	cx, cy := x, y
	if cx < dst.X {
		cx = dst.X
	}
	if cx+w > dst.MaxX() {
		cx = dst.MaxX() - w
	}
	if cy < dst.Y {
		cy = dst.Y
	}
	if cy+h > dst.MaxY() {
		cy = dst.MaxY() - h
	}
	if cx != x || cy != y {
		m.store.SaveOnce(win.ID, undo.FeatureNaturalPos, geometry.Rect{X: x - dst.X, Y: y - dst.Y})
	}

	return geometry.Rect{X: cx, Y: cy, W: w, H: h}
}
