// Package highlight draws transient edge flashes using small
// override-redirect X windows, one bar per screen edge. Engines call
// Flash and move on; the overlay unmaps itself after a short delay.
package highlight

import (
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/nudge/internal/geometry"
)

const (
	barColor     = 0x3498db
	barThickness = 4
	flashTime    = 250 * time.Millisecond
)

// Overlay owns four reusable border windows. Bars for edges not named
// in a flash stay unmapped.
type Overlay struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	mu      sync.Mutex
	bars    map[geometry.Direction]xproto.Window
	created bool
	gen     int
}

// New creates the overlay manager. Windows are created lazily on the
// first flash.
func New(xu *xgbutil.XUtil, root xproto.Window) *Overlay {
	return &Overlay{
		xu:   xu,
		root: root,
		bars: make(map[geometry.Direction]xproto.Window),
	}
}

// Flash shows bars along the named edges of f, then hides them after a
// fixed delay. A second flash restarts the timer.
func (o *Overlay) Flash(f geometry.Rect, edges []geometry.Direction) {
	if o == nil || o.xu == nil {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.created {
		if !o.createBars() {
			return
		}
	}

	shown := make(map[geometry.Direction]bool, len(edges))
	for _, edge := range edges {
		shown[edge] = true
		o.placeBar(edge, f)
	}
	for dir, wid := range o.bars {
		if !shown[dir] {
			xproto.UnmapWindow(o.xu.Conn(), wid)
		}
	}

	o.gen++
	gen := o.gen
	time.AfterFunc(flashTime, func() { o.hide(gen) })
}

// Cleanup destroys the overlay windows.
func (o *Overlay) Cleanup() {
	if o == nil || o.xu == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, wid := range o.bars {
		xproto.DestroyWindow(o.xu.Conn(), wid)
	}
	o.bars = make(map[geometry.Direction]xproto.Window)
	o.created = false
}

// hide unmaps all bars unless a newer flash superseded this one.
func (o *Overlay) hide(gen int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.gen {
		return
	}
	for _, wid := range o.bars {
		xproto.UnmapWindow(o.xu.Conn(), wid)
	}
}

func (o *Overlay) placeBar(edge geometry.Direction, f geometry.Rect) {
	wid, ok := o.bars[edge]
	if !ok {
		return
	}

	x, y := int(f.X), int(f.Y)
	w, h := int(f.W), int(f.H)
	t := barThickness

	var bx, by, bw, bh int
	switch edge {
	case geometry.DirUp:
		bx, by, bw, bh = x, y, w, t
	case geometry.DirDown:
		bx, by, bw, bh = x, y+h-t, w, t
	case geometry.DirLeft:
		bx, by, bw, bh = x, y, t, h
	case geometry.DirRight:
		bx, by, bw, bh = x+w-t, y, t, h
	}
	if bw < 1 {
		bw = 1
	}
	if bh < 1 {
		bh = 1
	}

	conn := o.xu.Conn()
	xproto.ConfigureWindow(
		conn,
		wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowStackMode,
		[]uint32{uint32(bx), uint32(by), uint32(bw), uint32(bh), xproto.StackModeAbove},
	)
	xproto.ChangeWindowAttributes(conn, wid, xproto.CwBackPixel, []uint32{barColor})
	xproto.ClearArea(conn, false, wid, 0, 0, 0, 0)
	xproto.MapWindow(conn, wid)
}

func (o *Overlay) createBars() bool {
	for _, dir := range []geometry.Direction{geometry.DirLeft, geometry.DirRight, geometry.DirUp, geometry.DirDown} {
		wid, err := o.createOverrideRedirectWindow()
		if err != nil {
			return false
		}
		o.bars[dir] = wid
	}
	o.created = true
	return true
}

// createOverrideRedirectWindow creates a window the WM will not manage.
func (o *Overlay) createOverrideRedirectWindow() (xproto.Window, error) {
	conn := o.xu.Conn()
	screen := o.xu.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, err
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		o.root,
		0, 0,
		1, 1,
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwOverrideRedirect|xproto.CwBackPixel,
		// Value list order follows the bit positions of the mask.
		// CwBackPixel comes before CwOverrideRedirect, so it is first.
		[]uint32{0, 1},
	).Check()
	if err != nil {
		return 0, err
	}
	return wid, nil
}
