package engine

import (
	"sort"

	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
	"github.com/1broseidon/nudge/internal/screens"
)

// FocusNavigator selects the next window to activate. It never mutates
// geometry: occluded windows are filtered out, candidates sharing a
// perpendicular shadow with the focused window are preferred, and the
// walk wraps at the ends of the ordered candidate list.
type FocusNavigator struct {
	backend platform.Backend
}

// NewFocusNavigator creates the navigator.
func NewFocusNavigator(backend platform.Backend) *FocusNavigator {
	return &FocusNavigator{backend: backend}
}

// Navigate activates the next visible window in dir on the current
// screen.
func (n *FocusNavigator) Navigate(dir geometry.Direction, win platform.Window) error {
	scr, err := n.backend.ScreenOf(win.ID)
	if err != nil {
		return nil
	}
	wins, err := n.backend.ListWindows()
	if err != nil {
		return err
	}

	visible := VisibleOnScreen(wins, scr.Frame, win.ID)
	if len(visible) < 2 {
		return nil
	}

	candidates := shadowSet(visible, win, dir)
	if len(candidates) < 2 {
		candidates = visible
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if dir.Horizontal() {
			return candidates[i].Frame.X < candidates[j].Frame.X
		}
		return candidates[i].Frame.Y < candidates[j].Frame.Y
	})

	cur := -1
	for i, w := range candidates {
		if w.ID == win.ID {
			cur = i
			break
		}
	}
	if cur < 0 {
		return nil
	}

	step := 1
	if dir == geometry.DirLeft || dir == geometry.DirUp {
		step = -1
	}
	next := candidates[(cur+step+len(candidates))%len(candidates)]
	if next.ID == win.ID {
		return nil
	}
	return n.activate(next.ID)
}

// FocusScreen jumps focus to the neighbor screen in dir, picking the
// window whose trailing edge is nearest the boundary being crossed.
func (n *FocusNavigator) FocusScreen(dir geometry.Direction, win platform.Window) error {
	src, err := n.backend.ScreenOf(win.ID)
	if err != nil {
		return nil
	}
	all, err := n.backend.Screens()
	if err != nil {
		return err
	}
	dst, ok := screens.Neighbor(all, src, screenDirection(dir))
	if !ok {
		return nil
	}
	wins, err := n.backend.ListWindows()
	if err != nil {
		return err
	}

	visible := VisibleOnScreen(wins, dst.Frame, 0)
	if len(visible) == 0 {
		return nil
	}

	best := visible[0]
	for _, w := range visible[1:] {
		if trailingEdge(w.Frame, dir) > trailingEdge(best.Frame, dir) {
			best = w
		}
	}
	return n.activate(best.ID)
}

func (n *FocusNavigator) activate(id platform.WindowID) error {
	if err := n.backend.Raise(id); err != nil {
		return err
	}
	return n.backend.Focus(id)
}

// shadowSet keeps the windows whose interval on the perpendicular axis
// overlaps the focused window's interval. The focused window is always
// a member of its own shadow.
func shadowSet(wins []platform.Window, focused platform.Window, dir geometry.Direction) []platform.Window {
	var out []platform.Window
	for _, w := range wins {
		if dir.Horizontal() {
			if w.Frame.Y < focused.Frame.MaxY() && w.Frame.MaxY() > focused.Frame.Y {
				out = append(out, w)
			}
		} else {
			if w.Frame.X < focused.Frame.MaxX() && w.Frame.MaxX() > focused.Frame.X {
				out = append(out, w)
			}
		}
	}
	return out
}

// trailingEdge scores a frame by the coordinate of the edge opposite to
// the travel direction; larger is closer to where the user came from.
func trailingEdge(f geometry.Rect, dir geometry.Direction) float64 {
	switch dir {
	case geometry.DirLeft:
		return f.MaxX()
	case geometry.DirRight:
		return -f.X
	case geometry.DirUp:
		return f.MaxY()
	default:
		return -f.Y
	}
}

func screenDirection(dir geometry.Direction) screens.Direction {
	switch dir {
	case geometry.DirLeft:
		return screens.West
	case geometry.DirRight:
		return screens.East
	case geometry.DirUp:
		return screens.North
	default:
		return screens.South
	}
}
