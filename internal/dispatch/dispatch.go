// Package dispatch routes named operations to the geometry engines.
// Every operation is a function of the op name and the currently
// focused window; hotkeys, the IPC server and the MCP tools all funnel
// through the same table.
package dispatch

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/engine"
	"github.com/1broseidon/nudge/internal/geometry"
	"github.com/1broseidon/nudge/internal/platform"
	"github.com/1broseidon/nudge/internal/screens"
	"github.com/1broseidon/nudge/internal/undo"
)

// Dispatcher owns one instance of each engine and resolves the focus
// subject per call.
type Dispatcher struct {
	backend     platform.Backend
	store       *undo.Store
	highlighter engine.Highlighter

	mu      sync.RWMutex
	edge    *engine.EdgeResizer
	shrink  *engine.Shrinker
	cycle   *engine.Cycler
	compact *engine.CompactPlacer
	mover   *engine.Mover
	focus   *engine.FocusNavigator
}

// New wires the engines to a shared backend and undo store. highlighter
// may be nil.
func New(backend platform.Backend, cfg *config.Config, highlighter engine.Highlighter) *Dispatcher {
	d := &Dispatcher{
		backend:     backend,
		store:       undo.NewStore(),
		highlighter: highlighter,
	}
	d.build(cfg)
	return d
}

// UpdateConfig rebuilds the engines against a reloaded configuration.
// Saved undo frames and the compact dock registry survive the swap.
func (d *Dispatcher) UpdateConfig(cfg *config.Config) {
	d.mu.Lock()
	d.build(cfg)
	d.mu.Unlock()
}

func (d *Dispatcher) build(cfg *config.Config) {
	d.edge = engine.NewEdgeResizer(d.backend, cfg, d.highlighter)
	d.shrink = engine.NewShrinker(d.backend, cfg, d.store)
	d.cycle = engine.NewCycler(d.backend, cfg, d.store)
	if d.compact == nil {
		d.compact = engine.NewCompactPlacer(d.backend, cfg)
	} else {
		d.compact.SetConfig(cfg)
	}
	d.mover = engine.NewMover(d.backend, cfg, d.store)
	d.focus = engine.NewFocusNavigator(d.backend)
}

// Dispatch runs one named operation against the focused window. A
// missing focus subject is a silent no-op, not an error.
func (d *Dispatcher) Dispatch(op string) error {
	win, ok, err := d.backend.ActiveWindow()
	if err != nil {
		return fmt.Errorf("active window: %w", err)
	}
	if !ok {
		log.Printf("dispatch: %s ignored, no focused window", op)
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	switch {
	case strings.HasPrefix(op, "resize-"):
		dir, err := geometry.ParseDirection(strings.TrimPrefix(op, "resize-"))
		if err != nil {
			return err
		}
		return d.edge.Step(dir, win)

	case strings.HasPrefix(op, "shrink-"):
		dir, err := geometry.ParseDirection(strings.TrimPrefix(op, "shrink-"))
		if err != nil {
			return err
		}
		return d.shrink.Toggle(dir, win)

	case strings.HasPrefix(op, "focus-screen-"):
		dir, err := geometry.ParseDirection(strings.TrimPrefix(op, "focus-screen-"))
		if err != nil {
			return err
		}
		return d.focus.FocusScreen(dir, win)

	case strings.HasPrefix(op, "focus-"):
		dir, err := geometry.ParseDirection(strings.TrimPrefix(op, "focus-"))
		if err != nil {
			return err
		}
		return d.focus.Navigate(dir, win)

	case strings.HasPrefix(op, "cycle-"):
		dir, err := geometry.ParseDirection(strings.TrimPrefix(op, "cycle-"))
		if err != nil {
			return err
		}
		return d.cycle.HalfThird(dir, win)

	case strings.HasPrefix(op, "throw-"):
		role, err := screens.ParseRole(strings.TrimPrefix(op, "throw-"))
		if err != nil {
			return err
		}
		return d.mover.Throw(role, win)

	case op == "center":
		return d.cycle.Center(win)
	case op == "maximize":
		return d.cycle.Maximize(win)
	case op == "compact":
		return d.compact.Toggle(win)
	}
	return fmt.Errorf("unknown operation %q", op)
}
