package engine

import (
	"fmt"

	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
)

// fakeBackend is an in-memory window system for engine tests. Windows
// are kept in front-to-back order; SetFrame honors per-window minimum
// sizes the way a real toolkit clamps WM_NORMAL_HINTS.
type fakeBackend struct {
	windows map[platform.WindowID]*platform.Window
	order   []platform.WindowID
	screens []platform.Screen

	minW map[platform.WindowID]float64
	minH map[platform.WindowID]float64

	focused platform.WindowID
	raised  []platform.WindowID
}

func newFakeBackend(scrs ...platform.Screen) *fakeBackend {
	return &fakeBackend{
		windows: make(map[platform.WindowID]*platform.Window),
		screens: scrs,
		minW:    make(map[platform.WindowID]float64),
		minH:    make(map[platform.WindowID]float64),
	}
}

// add appends a window at the back of the stacking order.
func (b *fakeBackend) add(w platform.Window) {
	cp := w
	b.windows[w.ID] = &cp
	b.order = append(b.order, w.ID)
}

func (b *fakeBackend) remove(id platform.WindowID) {
	delete(b.windows, id)
	for i, o := range b.order {
		if o == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *fakeBackend) ActiveWindow() (platform.Window, bool, error) {
	w, ok := b.windows[b.focused]
	if !ok {
		return platform.Window{}, false, nil
	}
	return *w, true, nil
}

func (b *fakeBackend) Window(id platform.WindowID) (platform.Window, bool, error) {
	w, ok := b.windows[id]
	if !ok {
		return platform.Window{}, false, nil
	}
	return *w, true, nil
}

func (b *fakeBackend) ListWindows() ([]platform.Window, error) {
	out := make([]platform.Window, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.windows[id])
	}
	return out, nil
}

func (b *fakeBackend) SetFrame(id platform.WindowID, f geometry.Rect) error {
	w, ok := b.windows[id]
	if !ok {
		return fmt.Errorf("no window %d", id)
	}
	if min := b.minW[id]; min > 0 && f.W < min {
		f.W = min
	}
	if min := b.minH[id]; min > 0 && f.H < min {
		f.H = min
	}
	w.Frame = f
	return nil
}

func (b *fakeBackend) Raise(id platform.WindowID) error {
	b.raised = append(b.raised, id)
	return nil
}

func (b *fakeBackend) Focus(id platform.WindowID) error {
	b.focused = id
	return nil
}

func (b *fakeBackend) Minimize(id platform.WindowID) error {
	if w, ok := b.windows[id]; ok {
		w.Minimized = true
	}
	return nil
}

func (b *fakeBackend) Unminimize(id platform.WindowID) error {
	if w, ok := b.windows[id]; ok {
		w.Minimized = false
	}
	return nil
}

func (b *fakeBackend) IsVisible(id platform.WindowID) (bool, error) {
	w, ok := b.windows[id]
	if !ok {
		return false, nil
	}
	return !w.Minimized, nil
}

func (b *fakeBackend) Screens() ([]platform.Screen, error) {
	return b.screens, nil
}

func (b *fakeBackend) ScreenOf(id platform.WindowID) (platform.Screen, error) {
	w, ok := b.windows[id]
	if !ok {
		return platform.Screen{}, fmt.Errorf("no window %d", id)
	}
	cx, cy := w.Frame.CenterX(), w.Frame.CenterY()
	for _, s := range b.screens {
		if s.Frame.Contains(cx, cy) {
			return s, nil
		}
	}
	if len(b.screens) == 0 {
		return platform.Screen{}, fmt.Errorf("no screens")
	}
	return b.screens[0], nil
}

func (b *fakeBackend) frame(id platform.WindowID) geometry.Rect {
	return b.windows[id].Frame
}

func (b *fakeBackend) win(id platform.WindowID) platform.Window {
	return *b.windows[id]
}
