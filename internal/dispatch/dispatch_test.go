package dispatch

import (
	"testing"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

type stubBackend struct {
	win    platform.Window
	hasWin bool
	screen platform.Screen
	frames []geometry.Rect
}

func (s *stubBackend) ActiveWindow() (platform.Window, bool, error) {
	return s.win, s.hasWin, nil
}

func (s *stubBackend) Window(id platform.WindowID) (platform.Window, bool, error) {
	if s.hasWin && id == s.win.ID {
		return s.win, true, nil
	}
	return platform.Window{}, false, nil
}

func (s *stubBackend) ListWindows() ([]platform.Window, error) {
	if !s.hasWin {
		return nil, nil
	}
	return []platform.Window{s.win}, nil
}

func (s *stubBackend) SetFrame(id platform.WindowID, f geometry.Rect) error {
	s.frames = append(s.frames, f)
	s.win.Frame = f
	return nil
}

func (s *stubBackend) Raise(platform.WindowID) error      { return nil }
func (s *stubBackend) Focus(platform.WindowID) error      { return nil }
func (s *stubBackend) Minimize(platform.WindowID) error   { return nil }
func (s *stubBackend) Unminimize(platform.WindowID) error { return nil }

func (s *stubBackend) IsVisible(platform.WindowID) (bool, error) { return true, nil }

func (s *stubBackend) Screens() ([]platform.Screen, error) {
	return []platform.Screen{s.screen}, nil
}

func (s *stubBackend) ScreenOf(platform.WindowID) (platform.Screen, error) {
	return s.screen, nil
}

func newStub() *stubBackend {
	return &stubBackend{
		win:    platform.Window{ID: 1, App: "term", Frame: geometry.Rect{X: 400, Y: 100, W: 800, H: 600}, Standard: true},
		hasWin: true,
		screen: platform.Screen{ID: 1, Frame: geometry.Rect{W: 1920, H: 1080}, Primary: true},
	}
}

func TestDispatchRoutesToEngines(t *testing.T) {
	tests := []struct {
		op   string
		want geometry.Rect
	}{
		{"resize-right", geometry.Rect{X: 400, Y: 100, W: 896, H: 600}},
		{"center", geometry.Rect{X: 400, Y: 240, W: 800, H: 600}},
		{"maximize", geometry.Rect{X: 400, Y: 0, W: 800, H: 1080}},
		{"cycle-left", geometry.Rect{X: 0, Y: 0, W: 960, H: 1080}},
		{"compact", geometry.Rect{X: 0, Y: 820, W: 420, H: 260}},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			b := newStub()
			d := New(b, config.Default(), nil)
			if err := d.Dispatch(tt.op); err != nil {
				t.Fatalf("Dispatch(%s): %v", tt.op, err)
			}
			if len(b.frames) != 1 {
				t.Fatalf("Dispatch(%s) issued %d frame writes, want 1", tt.op, len(b.frames))
			}
			if !b.frames[0].ApproxEq(tt.want, 0.5) {
				t.Fatalf("Dispatch(%s) wrote %v, want %v", tt.op, b.frames[0], tt.want)
			}
		})
	}
}

func TestDispatchNoFocusIsSilentNoop(t *testing.T) {
	b := newStub()
	b.hasWin = false
	d := New(b, config.Default(), nil)

	if err := d.Dispatch("maximize"); err != nil {
		t.Fatalf("Dispatch without focus: %v", err)
	}
	if len(b.frames) != 0 {
		t.Fatalf("no-subject dispatch wrote frames: %v", b.frames)
	}
}

func TestUpdateConfigKeepsCompactRegistry(t *testing.T) {
	b := newStub()
	d := New(b, config.Default(), nil)
	original := b.win.Frame

	if err := d.Dispatch("compact"); err != nil {
		t.Fatalf("dock: %v", err)
	}
	if len(b.frames) != 1 {
		t.Fatalf("dock issued %d frame writes, want 1", len(b.frames))
	}

	d.UpdateConfig(config.Default())

	if err := d.Dispatch("compact"); err != nil {
		t.Fatalf("toggle after reload: %v", err)
	}
	got := b.frames[len(b.frames)-1]
	if !got.ApproxEq(original, 0.5) {
		t.Fatalf("toggle after reload wrote %v, want pre-dock frame %v", got, original)
	}
}

func TestDispatchUnknownOp(t *testing.T) {
	d := New(newStub(), config.Default(), nil)
	if err := d.Dispatch("explode"); err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if err := d.Dispatch("throw-sideways"); err == nil {
		t.Fatal("expected error for unknown throw role")
	}
}
