package engine

import (
	"math"
	"sort"
	"sync"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

// CompactPlacer docks windows into a small fixed size at the bottom of
// their screen, packing left to right and wrapping to the row above
// when a row fills up. Toggling a docked window restores its pre-dock
// frame. The packing is greedy row-major, which is fine for the small
// bounded number of windows a dock holds.
type CompactPlacer struct {
	backend platform.Backend
	cfg     *config.Config

	mu    sync.Mutex
	slots map[platform.WindowID]compactEntry
}

type compactEntry struct {
	original geometry.Rect
	screenID int
}

// maxCompactRows bounds the upward row scan.
const maxCompactRows = 10

// NewCompactPlacer creates the engine with an empty registry.
func NewCompactPlacer(backend platform.Backend, cfg *config.Config) *CompactPlacer {
	return &CompactPlacer{
		backend: backend,
		cfg:     cfg,
		slots:   make(map[platform.WindowID]compactEntry),
	}
}

// SetConfig swaps the effective configuration. The dock registry is
// untouched so already-docked windows still restore their pre-dock
// frames after a reload.
func (p *CompactPlacer) SetConfig(cfg *config.Config) {
	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
}

// Toggle docks the window, or restores it if already docked.
func (p *CompactPlacer) Toggle(win platform.Window) error {
	p.mu.Lock()
	if entry, docked := p.slots[win.ID]; docked {
		delete(p.slots, win.ID)
		p.mu.Unlock()
		return p.backend.SetFrame(win.ID, entry.original)
	}
	cfg := p.cfg
	p.mu.Unlock()

	scr, ok := screenFrameOf(p.backend, win.ID)
	if !ok {
		return nil
	}
	cw, ch := cfg.CompactSizeFor(win.App)

	p.prune()
	docked := p.dockedFramesOn(scr.ID, win.ID)

	target, placed := PlaceCompact(scr.Frame, docked, cw, ch)
	if !placed {
		return nil
	}

	p.mu.Lock()
	p.slots[win.ID] = compactEntry{original: win.Frame, screenID: scr.ID}
	p.mu.Unlock()
	return p.backend.SetFrame(win.ID, target)
}

// Docked reports whether the window is currently in the dock registry.
func (p *CompactPlacer) Docked(id platform.WindowID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.slots[id]
	return ok
}

// prune discards registry entries whose window is gone or no longer
// visible. Called lazily before each placement, never eagerly.
func (p *CompactPlacer) prune() {
	p.mu.Lock()
	ids := make([]platform.WindowID, 0, len(p.slots))
	for id := range p.slots {
		ids = append(ids, id)
	}
	p.mu.Unlock()

	for _, id := range ids {
		_, exists, err := p.backend.Window(id)
		alive := err == nil && exists
		if alive {
			if visible, verr := p.backend.IsVisible(id); verr == nil && !visible {
				alive = false
			}
		}
		if !alive {
			p.mu.Lock()
			delete(p.slots, id)
			p.mu.Unlock()
		}
	}
}

// dockedFramesOn returns the current frames of surviving dock entries
// on the given screen, excluding the window being placed.
func (p *CompactPlacer) dockedFramesOn(screenID int, exclude platform.WindowID) []geometry.Rect {
	p.mu.Lock()
	ids := make([]platform.WindowID, 0, len(p.slots))
	for id, entry := range p.slots {
		if id != exclude && entry.screenID == screenID {
			ids = append(ids, id)
		}
	}
	p.mu.Unlock()

	frames := make([]geometry.Rect, 0, len(ids))
	for _, id := range ids {
		w, exists, err := p.backend.Window(id)
		if err != nil || !exists {
			continue
		}
		frames = append(frames, w.Frame)
	}
	return frames
}

// PlaceCompact computes the dock slot for a cw x ch window on screen s
// given the frames of the already-docked windows there. Rows are
// derived from the y position of the occupants, row 0 at the screen
// bottom. Returns false when rows 0..10 are all full.
func PlaceCompact(s geometry.Rect, docked []geometry.Rect, cw, ch float64) (geometry.Rect, bool) {
	bottom := s.MaxY()

	rows := make(map[int][]geometry.Rect)
	for _, f := range docked {
		row := int(math.Floor((bottom - f.Y - f.H + ch/2) / ch))
		if row < 0 {
			row = 0
		}
		rows[row] = append(rows[row], f)
	}

	for r := 0; r <= maxCompactRows; r++ {
		y := bottom - float64(r+1)*ch
		occupants := rows[r]
		if len(occupants) == 0 {
			return geometry.Rect{X: s.X, Y: y, W: cw, H: ch}, true
		}
		sort.Slice(occupants, func(i, j int) bool {
			return occupants[i].X < occupants[j].X
		})
		rightmost := occupants[len(occupants)-1].MaxX()
		if rightmost+cw <= s.MaxX() {
			return geometry.Rect{X: rightmost, Y: y, W: cw, H: ch}, true
		}
	}
	return geometry.Rect{}, false
}
