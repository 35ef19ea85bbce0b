package engine

import (
	"testing"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

func TestStepFrame(t *testing.T) {
	s := geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	const step, tol = 96, 5

	tests := []struct {
		name string
		f    geometry.Rect
		dir  geometry.Direction
		want geometry.Rect
	}{
		{
			name: "interior shrink left",
			f:    geometry.Rect{X: 400, Y: 100, W: 800, H: 600},
			dir:  geometry.DirLeft,
			want: geometry.Rect{X: 400, Y: 100, W: 704, H: 600},
		},
		{
			name: "interior grow right",
			f:    geometry.Rect{X: 400, Y: 100, W: 800, H: 600},
			dir:  geometry.DirRight,
			want: geometry.Rect{X: 400, Y: 100, W: 896, H: 600},
		},
		{
			name: "left stuck reverses to grow and resnaps",
			f:    geometry.Rect{X: 0, Y: 100, W: 800, H: 600},
			dir:  geometry.DirLeft,
			want: geometry.Rect{X: 0, Y: 100, W: 896, H: 600},
		},
		{
			name: "left stuck within tolerance",
			f:    geometry.Rect{X: 3, Y: 100, W: 800, H: 600},
			dir:  geometry.DirLeft,
			want: geometry.Rect{X: 0, Y: 100, W: 896, H: 600},
		},
		{
			name: "right stuck shrink keeps right edge pinned",
			f:    geometry.Rect{X: 1120, Y: 100, W: 800, H: 600},
			dir:  geometry.DirLeft,
			want: geometry.Rect{X: 1216, Y: 100, W: 704, H: 600},
		},
		{
			name: "right stuck grow keeps right edge pinned",
			f:    geometry.Rect{X: 1120, Y: 100, W: 800, H: 600},
			dir:  geometry.DirRight,
			want: geometry.Rect{X: 1024, Y: 100, W: 896, H: 600},
		},
		{
			name: "full width shrink resnaps right",
			f:    geometry.Rect{X: 0, Y: 100, W: 1920, H: 600},
			dir:  geometry.DirLeft,
			want: geometry.Rect{X: 96, Y: 100, W: 1824, H: 600},
		},
		{
			name: "top stuck reverses to grow and resnaps",
			f:    geometry.Rect{X: 100, Y: 0, W: 800, H: 600},
			dir:  geometry.DirUp,
			want: geometry.Rect{X: 100, Y: 0, W: 800, H: 696},
		},
		{
			name: "bottom stuck shrink keeps bottom edge pinned",
			f:    geometry.Rect{X: 100, Y: 480, W: 800, H: 600},
			dir:  geometry.DirUp,
			want: geometry.Rect{X: 100, Y: 576, W: 800, H: 504},
		},
		{
			name: "bottom stuck grow keeps bottom edge pinned",
			f:    geometry.Rect{X: 100, Y: 480, W: 800, H: 600},
			dir:  geometry.DirDown,
			want: geometry.Rect{X: 100, Y: 384, W: 800, H: 696},
		},
		{
			name: "interior grow down",
			f:    geometry.Rect{X: 100, Y: 100, W: 800, H: 600},
			dir:  geometry.DirDown,
			want: geometry.Rect{X: 100, Y: 100, W: 800, H: 696},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepFrame(tt.f, s, tt.dir, step, tol)
			if !got.ApproxEq(tt.want, 0.01) {
				t.Fatalf("StepFrame(%v, %v) = %v, want %v", tt.f, tt.dir, got, tt.want)
			}
		})
	}
}

func TestStepFrameEdgeStuckInvariant(t *testing.T) {
	s := geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	f := geometry.Rect{X: 0, Y: 200, W: 700, H: 500}

	got := StepFrame(f, s, geometry.DirLeft, 96, 5)
	if got.X != s.X {
		t.Fatalf("left-stuck window detached: x = %v, want %v", got.X, s.X)
	}
}

type recordingHighlighter struct {
	frames []geometry.Rect
	edges  [][]geometry.Direction
}

func (r *recordingHighlighter) Flash(f geometry.Rect, edges []geometry.Direction) {
	r.frames = append(r.frames, f)
	r.edges = append(r.edges, edges)
}

func TestEdgeResizerFlashesMovedEdges(t *testing.T) {
	b := newFakeBackend(platform.Screen{ID: 1, Frame: geometry.Rect{W: 1920, H: 1080}, Primary: true})
	b.add(platform.Window{ID: 7, Frame: geometry.Rect{X: 400, Y: 100, W: 800, H: 600}, Standard: true})

	hl := &recordingHighlighter{}
	e := NewEdgeResizer(b, config.Default(), hl)

	if err := e.Step(geometry.DirRight, b.win(7)); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(hl.edges) != 1 {
		t.Fatalf("expected one flash, got %d", len(hl.edges))
	}
	if len(hl.edges[0]) != 1 || hl.edges[0][0] != geometry.DirRight {
		t.Fatalf("flashed edges = %v, want [right]", hl.edges[0])
	}
	if got := b.frame(7).W; got != 896 {
		t.Fatalf("width after grow = %v, want 896", got)
	}
}
