package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// AppRule carries per-application size overrides, keyed by the
// lower-cased application class.
type AppRule struct {
	MinWidth      float64 `yaml:"min_width,omitempty"`
	MinHeight     float64 `yaml:"min_height,omitempty"`
	CompactWidth  float64 `yaml:"compact_width,omitempty"`
	CompactHeight float64 `yaml:"compact_height,omitempty"`
}

// DragConfig tunes the mouse drag/resize consumer loop.
type DragConfig struct {
	// MoveButton and ResizeButton are xgbutil button sequences that
	// start a pointer drag on the focused window. Empty disables.
	MoveButton   string `yaml:"move_button"`
	ResizeButton string `yaml:"resize_button"`
	// TickMS is the apply interval for accumulated pointer deltas.
	TickMS int `yaml:"tick_ms"`
	// WatchdogSeconds is how often the event-source watchdog checks
	// that motion handlers are still alive.
	WatchdogSeconds int `yaml:"watchdog_seconds"`
	// StaleSeconds is how long the motion stream may stay silent while
	// the pointer is active before the handlers are recreated.
	StaleSeconds int `yaml:"stale_seconds"`
}

// Config is the effective daemon configuration.
type Config struct {
	// SnapTolerance absorbs fractional-pixel drift when testing whether
	// a frame is stuck to a screen edge.
	SnapTolerance float64 `yaml:"snap_tolerance"`
	// StateTolerance is the looser tolerance used to recompute cycle
	// membership from geometry.
	StateTolerance float64 `yaml:"state_tolerance"`
	// StepDivisor sets the step size for directional resize: one press
	// moves the affected edge by screenAxis/StepDivisor.
	StepDivisor float64 `yaml:"step_divisor"`

	CompactWidth  float64 `yaml:"compact_width"`
	CompactHeight float64 `yaml:"compact_height"`

	ShrinkMaxIterations int `yaml:"shrink_max_iterations"`

	// ThrowUndoSeconds is the window during which repeating the same
	// throw command undoes the move.
	ThrowUndoSeconds int `yaml:"throw_undo_seconds"`

	// Apps maps a lower-cased application class to its overrides.
	Apps map[string]AppRule `yaml:"apps,omitempty"`

	// ScreenRoles overrides spatial role classification by display name
	// substring, e.g. top: "DP-2".
	ScreenRoles map[string]string `yaml:"screen_roles,omitempty"`

	// Hotkeys maps operation names to xgbutil key sequences, e.g.
	// resize-left: Mod4-Control-h.
	Hotkeys map[string]string `yaml:"hotkeys,omitempty"`

	Drag DragConfig `yaml:"drag"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SnapTolerance:       5,
		StateTolerance:      10,
		StepDivisor:         20,
		CompactWidth:        420,
		CompactHeight:       260,
		ShrinkMaxIterations: 30,
		ThrowUndoSeconds:    10,
		Drag: DragConfig{
			MoveButton:      "Mod4-1",
			ResizeButton:    "Mod4-3",
			TickMS:          33,
			WatchdogSeconds: 5,
			StaleSeconds:    15,
		},
	}
}

// knownOps lists the operation names hotkeys may bind. Directional
// operations take a -left/-right/-up/-down suffix.
var knownOps = map[string]bool{
	"resize-left": true, "resize-right": true, "resize-up": true, "resize-down": true,
	"shrink-left": true, "shrink-right": true, "shrink-up": true, "shrink-down": true,
	"focus-left": true, "focus-right": true, "focus-up": true, "focus-down": true,
	"focus-screen-left": true, "focus-screen-right": true,
	"focus-screen-up": true, "focus-screen-down": true,
	"cycle-left": true, "cycle-right": true,
	"throw-bottom": true, "throw-center": true, "throw-top": true,
	"throw-left": true, "throw-right": true,
	"center": true, "maximize": true, "compact": true,
}

// Validate checks ranges and key names, returning the first problem.
func (c *Config) Validate() error {
	if c.SnapTolerance < 0 || c.SnapTolerance > 50 {
		return fmt.Errorf("snap_tolerance must be between 0 and 50, got %v", c.SnapTolerance)
	}
	if c.StateTolerance < 0 || c.StateTolerance > 100 {
		return fmt.Errorf("state_tolerance must be between 0 and 100, got %v", c.StateTolerance)
	}
	if c.StepDivisor < 2 {
		return fmt.Errorf("step_divisor must be at least 2, got %v", c.StepDivisor)
	}
	if c.CompactWidth < 50 || c.CompactHeight < 50 {
		return fmt.Errorf("compact size must be at least 50x50, got %vx%v", c.CompactWidth, c.CompactHeight)
	}
	if c.ShrinkMaxIterations < 1 || c.ShrinkMaxIterations > 200 {
		return fmt.Errorf("shrink_max_iterations must be between 1 and 200, got %d", c.ShrinkMaxIterations)
	}
	if c.ThrowUndoSeconds < 0 {
		return fmt.Errorf("throw_undo_seconds must not be negative, got %d", c.ThrowUndoSeconds)
	}
	if c.Drag.TickMS < 5 || c.Drag.TickMS > 1000 {
		return fmt.Errorf("drag.tick_ms must be between 5 and 1000, got %d", c.Drag.TickMS)
	}

	for role := range c.ScreenRoles {
		switch role {
		case "bottom", "center", "top", "left", "right":
		default:
			return fmt.Errorf("screen_roles: unknown role %q", role)
		}
	}

	var unknown []string
	for op := range c.Hotkeys {
		if !knownOps[op] {
			unknown = append(unknown, op)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("hotkeys: unknown operations: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// MinSizeFor returns the configured minimum size for an application, if
// any. Lookup is by lower-cased class name.
func (c *Config) MinSizeFor(app string) (w, h float64, ok bool) {
	rule, found := c.Apps[strings.ToLower(app)]
	if !found || (rule.MinWidth <= 0 && rule.MinHeight <= 0) {
		return 0, 0, false
	}
	return rule.MinWidth, rule.MinHeight, true
}

// CompactSizeFor returns the dock size for an application, falling back
// to the global compact size.
func (c *Config) CompactSizeFor(app string) (w, h float64) {
	w, h = c.CompactWidth, c.CompactHeight
	if rule, found := c.Apps[strings.ToLower(app)]; found {
		if rule.CompactWidth > 0 {
			w = rule.CompactWidth
		}
		if rule.CompactHeight > 0 {
			h = rule.CompactHeight
		}
	}
	return w, h
}

// ThrowUndoWindow returns the throw-undo expiry as a duration.
func (c *Config) ThrowUndoWindow() time.Duration {
	return time.Duration(c.ThrowUndoSeconds) * time.Second
}

// TickInterval returns the drag apply interval as a duration.
func (c *DragConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}
