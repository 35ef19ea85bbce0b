// Package hotkeys binds global X11 key sequences to dispatcher
// operations.
package hotkeys

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/nudge/internal/platform"
)

// Runner executes a named operation. Implemented by the dispatcher.
type Runner interface {
	Dispatch(op string) error
}

// x11Accessor is implemented by backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Handler manages global keyboard shortcuts.
type Handler struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	runner Runner
}

var ignoreModsOnce sync.Once

// NewHandler creates a hotkey handler bound to the backend's X
// connection.
func NewHandler(backend platform.Backend, runner Runner) (*Handler, error) {
	accessor, ok := backend.(x11Accessor)
	if !ok {
		return nil, fmt.Errorf("backend does not expose an X11 connection")
	}

	xu := accessor.XUtil()
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:     xu,
		root:   accessor.RootWindow(),
		runner: runner,
	}, nil
}

// RegisterAll binds every configured op to its key sequence. Binding
// failures are logged and skipped so one stolen key does not take the
// daemon down; an error is returned only when nothing could be bound.
func (h *Handler) RegisterAll(bindings map[string]string) error {
	if len(bindings) == 0 {
		return nil
	}

	ops := make([]string, 0, len(bindings))
	for op := range bindings {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	bound := 0
	for _, op := range ops {
		seq := bindings[op]
		if seq == "" {
			continue
		}
		if err := h.register(seq, op); err != nil {
			log.Printf("hotkeys: cannot bind %s to %s: %v", seq, op, err)
			continue
		}
		bound++
	}
	if bound == 0 {
		return fmt.Errorf("no hotkeys could be bound")
	}
	log.Printf("hotkeys: %d bindings active", bound)
	return nil
}

// Detach releases every binding so a reload can re-register from a
// fresh configuration.
func (h *Handler) Detach() {
	keybind.Detach(h.xu, h.root)
}

func (h *Handler) register(keySequence, op string) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		if err := h.runner.Dispatch(op); err != nil {
			log.Printf("hotkeys: %s failed: %v", op, err)
		}
	}).Connect(h.xu, h.root, keySequence, true)
}

// configureIgnoreMods extends the keybind ignore list with NumLock and
// ScrollLock so hotkeys fire regardless of lock state.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
