// Package drag implements pointer-driven window move and resize with
// the input stream decoupled from frame mutation. Motion callbacks only
// accumulate deltas; a fixed-interval consumer applies the sum once per
// tick against its own cached frame. The consumer never reads the frame
// back from X between ticks: a slow client can report a stale frame and
// silently cancel movement on one axis.
package drag

import (
	"sync"

	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

// Kind selects what the accumulated delta mutates.
type Kind int

const (
	KindMove Kind = iota
	KindResize
)

// Session accumulates pointer deltas for one active drag.
type Session struct {
	mu sync.Mutex

	active bool
	kind   Kind
	target platform.WindowID
	frame  geometry.Rect // consumer-owned baseline, never re-read from X

	dx, dy float64
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{}
}

// Start begins a drag on the window. Any previous pending delta is
// discarded.
func (s *Session) Start(kind Kind, id platform.WindowID, frame geometry.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.kind = kind
	s.target = id
	s.frame = frame
	s.dx, s.dy = 0, 0
}

// Add accumulates one motion delta. Cheap enough for a 60+/s stream.
func (s *Session) Add(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.dx += dx
	s.dy += dy
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Drain folds the pending delta into the cached frame and returns the
// new target frame. ok=false when the session is idle or nothing
// accumulated since the last tick.
func (s *Session) Drain() (platform.WindowID, geometry.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active || (s.dx == 0 && s.dy == 0) {
		return 0, geometry.Rect{}, false
	}

	switch s.kind {
	case KindMove:
		s.frame.X += s.dx
		s.frame.Y += s.dy
	case KindResize:
		s.frame.W += s.dx
		s.frame.H += s.dy
		if s.frame.W < 50 {
			s.frame.W = 50
		}
		if s.frame.H < 50 {
			s.frame.H = 50
		}
	}
	s.dx, s.dy = 0, 0
	return s.target, s.frame, true
}

// End finishes the drag. Any delta accumulated since the last tick is
// discarded, not applied: the window stays where the consumer last put
// it. Reports whether a drag was active.
func (s *Session) End() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return false
	}
	s.active = false
	s.dx, s.dy = 0, 0
	return true
}

// Cancel aborts the drag and discards any undelivered delta.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.dx, s.dy = 0, 0
}
