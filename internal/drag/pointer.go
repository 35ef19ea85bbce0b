package drag

import (
	"fmt"
	"log"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/mousebind"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/platform"
)

// x11Accessor is implemented by backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Pointer is the producer side: modifier-button drags on the root
// window feed deltas into the session. The begin callback resolves the
// focused window once; every step only accumulates.
type Pointer struct {
	backend platform.Backend
	xu      *xgbutil.XUtil
	root    xproto.Window
	session *Session
	runner  *Runner
	cfg     config.DragConfig

	lastX, lastY int
}

// NewPointer wires the producer. The runner's watchdog restart should
// call Detach then Attach.
func NewPointer(backend platform.Backend, session *Session, runner *Runner, cfg config.DragConfig) (*Pointer, error) {
	accessor, ok := backend.(x11Accessor)
	if !ok {
		return nil, fmt.Errorf("backend does not expose an X11 connection")
	}
	return &Pointer{
		backend: backend,
		xu:      accessor.XUtil(),
		root:    accessor.RootWindow(),
		session: session,
		runner:  runner,
		cfg:     cfg,
	}, nil
}

// Attach registers the move and resize drags.
func (p *Pointer) Attach() {
	if p.cfg.MoveButton != "" {
		p.attachDrag(p.cfg.MoveButton, KindMove)
	}
	if p.cfg.ResizeButton != "" {
		p.attachDrag(p.cfg.ResizeButton, KindResize)
	}
}

// Detach releases the pointer grabs.
func (p *Pointer) Detach() {
	mousebind.Detach(p.xu, p.root)
}

func (p *Pointer) attachDrag(buttonStr string, kind Kind) {
	begin := func(xu *xgbutil.XUtil, rootX, rootY, eventX, eventY int) (bool, xproto.Cursor) {
		win, ok, err := p.backend.ActiveWindow()
		if err != nil || !ok {
			return false, 0
		}
		p.lastX, p.lastY = rootX, rootY
		p.session.Start(kind, win.ID, win.Frame)
		p.runner.NoteMotion()
		return true, 0
	}
	step := func(xu *xgbutil.XUtil, rootX, rootY, eventX, eventY int) {
		p.session.Add(float64(rootX-p.lastX), float64(rootY-p.lastY))
		p.lastX, p.lastY = rootX, rootY
		p.runner.NoteMotion()
	}
	end := func(xu *xgbutil.XUtil, rootX, rootY, eventX, eventY int) {
		p.session.End()
	}

	mousebind.Drag(p.xu, p.root, p.root, buttonStr, true, begin, step, end)
	log.Printf("drag: %s bound to %v", buttonStr, kind)
}

func (k Kind) String() string {
	if k == KindResize {
		return "resize"
	}
	return "move"
}
