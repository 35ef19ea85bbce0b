package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents one active physical display, already reduced to
// its usable work area.
type Monitor struct {
	ID      int
	Name    string
	X       int
	Y       int
	Width   int
	Height  int
	Primary bool
}

// Monitors retrieves all active monitors via XRandR. Dock struts are
// subtracted per monitor so panel-covered strips are never used as
// placement targets.
func (c *Connection) Monitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if p, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primary = p.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		isPrimary := false
		for _, out := range crtcInfo.Outputs {
			if out == primary && primary != 0 {
				isPrimary = true
			}
		}
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:      i,
			Name:    name,
			X:       int(crtcInfo.X),
			Y:       int(crtcInfo.Y),
			Width:   int(crtcInfo.Width),
			Height:  int(crtcInfo.Height),
			Primary: isPrimary,
		})
	}
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors found")
	}
	if primary == 0 {
		monitors[0].Primary = true
	}

	c.applyStruts(monitors)
	return monitors, nil
}

// applyStruts shrinks each monitor by the dock struts overlapping it.
func (c *Connection) applyStruts(monitors []Monitor) {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return
	}
	rootW := int(rootGeom.Width)
	rootH := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return
	}

	for _, id := range clients {
		if !c.isDock(id) {
			continue
		}
		sp := c.strutPartial(id, rootW, rootH)
		if sp == nil {
			continue
		}
		for i := range monitors {
			subtractStrut(&monitors[i], rootW, rootH, sp)
		}
	}
}

func (c *Connection) isDock(id xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, id)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DOCK" {
			return true
		}
	}
	return false
}

// strutPartial reads _NET_WM_STRUT_PARTIAL, synthesizing full-axis
// ranges from the plain _NET_WM_STRUT when a dock only sets that one.
func (c *Connection) strutPartial(id xproto.Window, rootW, rootH int) *ewmh.WmStrutPartial {
	if sp, err := ewmh.WmStrutPartialGet(c.XUtil, id); err == nil {
		return sp
	}
	s, err := ewmh.WmStrutGet(c.XUtil, id)
	if err != nil {
		return nil
	}
	return &ewmh.WmStrutPartial{
		Left: s.Left, Right: s.Right, Top: s.Top, Bottom: s.Bottom,
		LeftStartY: 0, LeftEndY: uint(rootH - 1),
		RightStartY: 0, RightEndY: uint(rootH - 1),
		TopStartX: 0, TopEndX: uint(rootW - 1),
		BottomStartX: 0, BottomEndX: uint(rootW - 1),
	}
}

// subtractStrut trims mon by the strut bands that intersect it.
func subtractStrut(mon *Monitor, rootW, rootH int, sp *ewmh.WmStrutPartial) {
	if sp.Top > 0 {
		band := overlap(mon.Y, mon.Y+mon.Height, 0, int(sp.Top))
		if band > 0 && spansX(mon, int(sp.TopStartX), int(sp.TopEndX)) {
			mon.Y += band
			mon.Height -= band
		}
	}
	if sp.Bottom > 0 {
		band := overlap(mon.Y, mon.Y+mon.Height, rootH-int(sp.Bottom), rootH)
		if band > 0 && spansX(mon, int(sp.BottomStartX), int(sp.BottomEndX)) {
			mon.Height -= band
		}
	}
	if sp.Left > 0 {
		band := overlap(mon.X, mon.X+mon.Width, 0, int(sp.Left))
		if band > 0 && spansY(mon, int(sp.LeftStartY), int(sp.LeftEndY)) {
			mon.X += band
			mon.Width -= band
		}
	}
	if sp.Right > 0 {
		band := overlap(mon.X, mon.X+mon.Width, rootW-int(sp.Right), rootW)
		if band > 0 && spansY(mon, int(sp.RightStartY), int(sp.RightEndY)) {
			mon.Width -= band
		}
	}
	if mon.Width < 1 {
		mon.Width = 1
	}
	if mon.Height < 1 {
		mon.Height = 1
	}
}

func spansX(mon *Monitor, start, end int) bool {
	return overlap(mon.X, mon.X+mon.Width, start, end+1) > 0
}

func spansY(mon *Monitor, start, end int) bool {
	return overlap(mon.Y, mon.Y+mon.Height, start, end+1) > 0
}

func overlap(a1, a2, b1, b2 int) int {
	lo := a1
	if b1 > lo {
		lo = b1
	}
	hi := a2
	if b2 < hi {
		hi = b2
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}
