package undo

import (
	"testing"

	"github.com/1broseidon/nudge/internal/geometry"
)

func TestSlotsAreIndependentPerFeature(t *testing.T) {
	s := NewStore()
	a := geometry.Rect{X: 0, Y: 0, W: 800, H: 600}
	b := geometry.Rect{X: 100, Y: 100, W: 400, H: 300}

	s.Save(1, FeatureCenter, a)
	s.Save(1, FeatureMaximize, b)

	got, ok := s.Peek(1, FeatureCenter)
	if !ok || got.Frame != a {
		t.Fatalf("center slot = %v ok=%v, want %v", got.Frame, ok, a)
	}
	got, ok = s.Peek(1, FeatureMaximize)
	if !ok || got.Frame != b {
		t.Fatalf("maximize slot = %v ok=%v, want %v", got.Frame, ok, b)
	}

	// Taking one slot must not disturb the other.
	if _, ok := s.Take(1, FeatureCenter); !ok {
		t.Fatalf("expected center slot to be taken")
	}
	if _, ok := s.Peek(1, FeatureCenter); ok {
		t.Fatalf("center slot should be cleared after Take")
	}
	if _, ok := s.Peek(1, FeatureMaximize); !ok {
		t.Fatalf("maximize slot must survive center Take")
	}
}

func TestSaveOnceIsWriteOnce(t *testing.T) {
	s := NewStore()
	first := geometry.Rect{X: 0, Y: 0, W: 1600, H: 900}
	second := geometry.Rect{X: 0, Y: 0, W: 1280, H: 800}

	if !s.SaveOnce(7, FeatureNaturalSize, first) {
		t.Fatalf("first SaveOnce should write")
	}
	if s.SaveOnce(7, FeatureNaturalSize, second) {
		t.Fatalf("second SaveOnce must not overwrite")
	}
	got, _ := s.Peek(7, FeatureNaturalSize)
	if got.Frame != first {
		t.Fatalf("slot = %v, want first generation %v", got.Frame, first)
	}

	// After restore the slot can be written again.
	s.Take(7, FeatureNaturalSize)
	if !s.SaveOnce(7, FeatureNaturalSize, second) {
		t.Fatalf("SaveOnce should write after the slot was taken")
	}
}

func TestDropRemovesAllSlots(t *testing.T) {
	s := NewStore()
	s.Save(3, FeatureShrinkW, geometry.Rect{W: 500})
	s.Save(3, FeatureShrinkH, geometry.Rect{H: 500})

	s.Drop(3)

	if _, ok := s.Peek(3, FeatureShrinkW); ok {
		t.Fatalf("expected shrink-width slot gone")
	}
	if _, ok := s.Peek(3, FeatureShrinkH); ok {
		t.Fatalf("expected shrink-height slot gone")
	}
}
