package platform

import "github.com/1broseidon/nudge/internal/geometry"

// WindowID is a platform-neutral window identifier, stable for the
// lifetime of the OS window.
type WindowID uint32

// Window contains metadata and geometry for a top-level window.
type Window struct {
	ID        WindowID
	App       string // application class, lower-cased
	Title     string
	Frame     geometry.Rect
	Standard  bool // normal application window (not a dock, panel, splash, ...)
	Minimized bool
}

// Screen describes a physical display.
type Screen struct {
	ID      int
	Name    string
	Frame   geometry.Rect
	Primary bool
}

// Backend abstracts window-system operations. Engines only ever talk to
// this interface so they can be exercised against a fake in tests.
type Backend interface {
	// ActiveWindow returns the currently focused window, or ok=false
	// when nothing suitable has focus. The absent case is expected and
	// not an error.
	ActiveWindow() (Window, bool, error)

	// Window refreshes a single window's record. ok=false means the
	// window no longer exists.
	Window(id WindowID) (Window, bool, error)

	// ListWindows returns all standard top-level windows in
	// front-to-back stacking order.
	ListWindows() ([]Window, error)

	SetFrame(id WindowID, f geometry.Rect) error
	Raise(id WindowID) error
	Focus(id WindowID) error
	Minimize(id WindowID) error
	Unminimize(id WindowID) error

	// IsVisible reports whether the window is mapped and not hidden.
	IsVisible(id WindowID) (bool, error)

	Screens() ([]Screen, error)

	// ScreenOf returns the screen holding the window's center point.
	ScreenOf(id WindowID) (Screen, error)
}
