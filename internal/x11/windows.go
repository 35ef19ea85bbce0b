package x11

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// ActiveWindow returns the currently focused window, 0 if none.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// StackingList returns all managed windows in EWMH stacking order,
// bottom to top.
func (c *Connection) StackingList() ([]xproto.Window, error) {
	return ewmh.ClientListStackingGet(c.XUtil)
}

// WindowFrame returns the window's decorated geometry in root
// coordinates: the client geometry translated to root, widened by the
// WM frame extents.
func (c *Connection) WindowFrame(id xproto.Window) (x, y, w, h int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(id)).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), id, c.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	x = int(translate.DstX)
	y = int(translate.DstY)
	w = int(geom.Width)
	h = int(geom.Height)

	left, right, top, bottom := c.FrameExtents(id)
	return x - left, y - top, w + left + right, h + top + bottom, nil
}

// FrameExtents returns the WM decoration sizes, zeros when the WM does
// not advertise them.
func (c *Connection) FrameExtents(id xproto.Window) (left, right, top, bottom int) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, id)
	if err != nil {
		return 0, 0, 0, 0
	}
	return int(extents.Left), int(extents.Right), int(extents.Top), int(extents.Bottom)
}

// MoveResizeWindow places the window so its decorated frame matches the
// given root-coordinate geometry. A maximized window is unmaximized
// first or the WM would ignore the request.
func (c *Connection) MoveResizeWindow(id xproto.Window, x, y, w, h int) error {
	c.unmaximize(id)

	left, right, top, bottom := c.FrameExtents(id)
	cw := w - left - right
	ch := h - top - bottom
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}

	if err := ewmh.MoveresizeWindow(c.XUtil, id, x, y, cw, ch); err != nil {
		// Fallback for WMs without _NET_MOVERESIZE_WINDOW.
		xwindow.New(c.XUtil, id).MoveResize(x, y, cw, ch)
	}
	return nil
}

func (c *Connection) unmaximize(id xproto.Window) {
	states, err := ewmh.WmStateGet(c.XUtil, id)
	if err != nil {
		return
	}
	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_FULLSCREEN":
			ewmh.WmStateReq(c.XUtil, id, ewmh.StateRemove, state)
		}
	}
}

// Raise restacks the window to the top without changing focus.
func (c *Connection) Raise(id xproto.Window) error {
	return ewmh.RestackWindow(c.XUtil, id)
}

// Focus asks the WM to activate the window.
func (c *Connection) Focus(id xproto.Window) error {
	return ewmh.ActiveWindowReq(c.XUtil, id)
}

// Minimize iconifies the window via WM_CHANGE_STATE.
func (c *Connection) Minimize(id xproto.Window) error {
	reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return err
	}

	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: id,
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}

	return xproto.SendEvent(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// Unminimize maps the window again and re-activates it.
func (c *Connection) Unminimize(id xproto.Window) error {
	xwindow.New(c.XUtil, id).Map()
	return ewmh.ActiveWindowReq(c.XUtil, id)
}

// IsHidden reports whether the window carries _NET_WM_STATE_HIDDEN
// (iconified or on another desktop under most WMs).
func (c *Connection) IsHidden(id xproto.Window) (bool, error) {
	states, err := ewmh.WmStateGet(c.XUtil, id)
	if err != nil {
		return false, nil
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_HIDDEN" {
			return true, nil
		}
	}
	return false, nil
}

// IsNormalWindow checks whether a window is a regular application
// window rather than a dock, desktop, splash or notification surface.
func (c *Connection) IsNormalWindow(id xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, id)
	if err != nil {
		// No type property: assume normal.
		return true
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_TOOLBAR",
			"_NET_WM_WINDOW_TYPE_MENU",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return len(types) == 0
}

// WindowClass returns the lower-cased WM_CLASS class name, empty when
// unset.
func (c *Connection) WindowClass(id xproto.Window) string {
	cls, err := icccm.WmClassGet(c.XUtil, id)
	if err != nil {
		return ""
	}
	return strings.ToLower(cls.Class)
}

// WindowTitle returns the EWMH window title, falling back to the ICCCM
// name.
func (c *Connection) WindowTitle(id xproto.Window) string {
	if name, err := ewmh.WmNameGet(c.XUtil, id); err == nil && name != "" {
		return name
	}
	name, err := icccm.WmNameGet(c.XUtil, id)
	if err != nil {
		return ""
	}
	return name
}
