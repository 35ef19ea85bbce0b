//go:build linux

package platform

import (
	"fmt"
	"math"
	"sort"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/x11"
)

// LinuxBackend implements Backend on top of an X11 connection.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend wraps an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EventLoop runs the X11 event loop (blocking).
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

// Quit stops the X11 event loop.
func (b *LinuxBackend) Quit() {
	if b != nil && b.conn != nil {
		b.conn.Quit()
	}
}

// XUtil exposes the xgbutil connection for X11-specific handlers
// (hotkeys, pointer drags, overlays).
func (b *LinuxBackend) XUtil() *xgbutil.XUtil {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.XUtil
}

// RootWindow returns the X11 root window ID.
func (b *LinuxBackend) RootWindow() xproto.Window {
	if b == nil || b.conn == nil {
		return 0
	}
	return b.conn.Root
}

// ActiveWindow returns the focused window, ok=false when nothing
// suitable has focus.
func (b *LinuxBackend) ActiveWindow() (Window, bool, error) {
	id, err := b.conn.ActiveWindow()
	if err != nil || id == 0 {
		return Window{}, false, nil
	}
	w, ok := b.windowRecord(id)
	if !ok || !w.Standard {
		return Window{}, false, nil
	}
	return w, true, nil
}

// Window refreshes one window's record.
func (b *LinuxBackend) Window(id WindowID) (Window, bool, error) {
	w, ok := b.windowRecord(xproto.Window(id))
	return w, ok, nil
}

// ListWindows returns the normal windows on the current desktop in
// front-to-back stacking order.
func (b *LinuxBackend) ListWindows() ([]Window, error) {
	stack, err := b.conn.StackingList()
	if err != nil {
		return nil, err
	}

	currentDesktop, desktopErr := ewmh.CurrentDesktopGet(b.conn.XUtil)
	hasCurrentDesktop := desktopErr == nil

	// EWMH stacking is bottom to top; engines want front first.
	windows := make([]Window, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		id := stack[i]
		if !b.conn.IsNormalWindow(id) {
			continue
		}
		if hasCurrentDesktop {
			desktop, err := ewmh.WmDesktopGet(b.conn.XUtil, id)
			if err == nil && desktop != uint(0xFFFFFFFF) && desktop != currentDesktop {
				continue
			}
		}
		w, ok := b.windowRecord(id)
		if !ok {
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// SetFrame moves and resizes the window's decorated frame.
func (b *LinuxBackend) SetFrame(id WindowID, f geometry.Rect) error {
	return b.conn.MoveResizeWindow(
		xproto.Window(id),
		int(math.Round(f.X)),
		int(math.Round(f.Y)),
		int(math.Round(f.W)),
		int(math.Round(f.H)),
	)
}

func (b *LinuxBackend) Raise(id WindowID) error {
	return b.conn.Raise(xproto.Window(id))
}

func (b *LinuxBackend) Focus(id WindowID) error {
	return b.conn.Focus(xproto.Window(id))
}

func (b *LinuxBackend) Minimize(id WindowID) error {
	return b.conn.Minimize(xproto.Window(id))
}

func (b *LinuxBackend) Unminimize(id WindowID) error {
	return b.conn.Unminimize(xproto.Window(id))
}

// IsVisible reports whether the window is mapped and not hidden.
func (b *LinuxBackend) IsVisible(id WindowID) (bool, error) {
	hidden, err := b.conn.IsHidden(xproto.Window(id))
	if err != nil {
		return false, err
	}
	return !hidden, nil
}

// Screens returns all active displays, work-area adjusted.
func (b *LinuxBackend) Screens() ([]Screen, error) {
	monitors, err := b.conn.Monitors()
	if err != nil {
		return nil, err
	}

	screens := make([]Screen, 0, len(monitors))
	for _, m := range monitors {
		screens = append(screens, Screen{
			ID:   m.ID,
			Name: m.Name,
			Frame: geometry.Rect{
				X: float64(m.X), Y: float64(m.Y),
				W: float64(m.Width), H: float64(m.Height),
			},
			Primary: m.Primary,
		})
	}
	sort.Slice(screens, func(i, j int) bool { return screens[i].ID < screens[j].ID })
	return screens, nil
}

// ScreenOf returns the screen holding the window's center point,
// falling back to the primary display.
func (b *LinuxBackend) ScreenOf(id WindowID) (Screen, error) {
	w, ok := b.windowRecord(xproto.Window(id))
	if !ok {
		return Screen{}, fmt.Errorf("window %d not found", id)
	}
	screens, err := b.Screens()
	if err != nil {
		return Screen{}, err
	}

	cx, cy := w.Frame.CenterX(), w.Frame.CenterY()
	for _, s := range screens {
		if s.Frame.Contains(cx, cy) {
			return s, nil
		}
	}
	for _, s := range screens {
		if s.Primary {
			return s, nil
		}
	}
	if len(screens) == 0 {
		return Screen{}, fmt.Errorf("no screens found")
	}
	return screens[0], nil
}

func (b *LinuxBackend) windowRecord(id xproto.Window) (Window, bool) {
	x, y, w, h, err := b.conn.WindowFrame(id)
	if err != nil {
		return Window{}, false
	}
	hidden, _ := b.conn.IsHidden(id)
	return Window{
		ID:    WindowID(id),
		App:   b.conn.WindowClass(id),
		Title: b.conn.WindowTitle(id),
		Frame: geometry.Rect{
			X: float64(x), Y: float64(y),
			W: float64(w), H: float64(h),
		},
		Standard:  b.conn.IsNormalWindow(id),
		Minimized: hidden,
	}, true
}
