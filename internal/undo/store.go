// Package undo keeps per-window saved frames, one independent slot per
// feature family. A slot is populated only while the corresponding
// toggle has displaced the window from its prior state and is cleared
// exactly when that toggle restores. Features never share a slot:
// concurrent toggles on the same window must not clobber each other.
package undo

import (
	"sync"
	"time"

	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

// Feature names one undo slot family.
type Feature string

const (
	FeatureEdge        Feature = "edge"
	FeatureShrinkW     Feature = "shrink-width"
	FeatureShrinkH     Feature = "shrink-height"
	FeatureMaximize    Feature = "maximize"
	FeatureCenter      Feature = "center"
	FeatureHalfThird   Feature = "half-third"
	FeatureNaturalSize Feature = "natural-size"
	FeatureNaturalPos  Feature = "natural-position"
	FeatureThrow       Feature = "throw"
)

// Saved is one remembered frame plus the moment it was recorded. The
// timestamp backs the time-bounded throw undo.
type Saved struct {
	Frame geometry.Rect
	At    time.Time
}

// Store maps windows to their per-feature saved frames. Entries are
// created lazily on first toggle and pruned lazily when a caller
// notices the window is gone.
type Store struct {
	mu    sync.Mutex
	slots map[platform.WindowID]map[Feature]Saved
	now   func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		slots: make(map[platform.WindowID]map[Feature]Saved),
		now:   time.Now,
	}
}

// Save records a frame, overwriting any previous value for the slot.
func (s *Store) Save(id platform.WindowID, feat Feature, f geometry.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.slots[id]
	if m == nil {
		m = make(map[Feature]Saved)
		s.slots[id] = m
	}
	m[feat] = Saved{Frame: f, At: s.now()}
}

// SaveOnce records a frame only when the slot is empty. Returns true if
// the value was written. Used for write-once natural size/position
// memory: only the first displacement generation is remembered.
func (s *Store) SaveOnce(id platform.WindowID, feat Feature, f geometry.Rect) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.slots[id]
	if m == nil {
		m = make(map[Feature]Saved)
		s.slots[id] = m
	}
	if _, ok := m[feat]; ok {
		return false
	}
	m[feat] = Saved{Frame: f, At: s.now()}
	return true
}

// Peek returns the slot value without clearing it.
func (s *Store) Peek(id platform.WindowID, feat Feature) (Saved, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.slots[id][feat]
	return v, ok
}

// Take returns and clears the slot value.
func (s *Store) Take(id platform.WindowID, feat Feature) (Saved, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.slots[id][feat]
	if ok {
		delete(s.slots[id], feat)
		if len(s.slots[id]) == 0 {
			delete(s.slots, id)
		}
	}
	return v, ok
}

// Clear drops the slot value if present.
func (s *Store) Clear(id platform.WindowID, feat Feature) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots[id], feat)
	if len(s.slots[id]) == 0 {
		delete(s.slots, id)
	}
}

// Drop removes every slot for a window. Called when a caller discovers
// the window no longer exists.
func (s *Store) Drop(id platform.WindowID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, id)
}
