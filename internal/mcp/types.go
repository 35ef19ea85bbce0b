package mcp

// StatusOutput reports daemon health.
type StatusOutput struct {
	Running       bool  `json:"running"`
	UptimeSeconds int64 `json:"uptime_seconds"`
	ScreenCount   int   `json:"screen_count"`
	WindowCount   int   `json:"window_count"`
}

// ListWindowsInput has no parameters.
type ListWindowsInput struct{}

// WindowEntry is one managed window in front-to-back order.
type WindowEntry struct {
	ID      uint32 `json:"id"`
	App     string `json:"app"`
	Title   string `json:"title"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Focused bool   `json:"focused"`
}

// ListWindowsOutput returns the window list.
type ListWindowsOutput struct {
	Windows []WindowEntry `json:"windows"`
}

// ListScreensInput has no parameters.
type ListScreensInput struct{}

// ScreenEntry is one display with its classified spatial role.
type ScreenEntry struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Primary bool   `json:"primary"`
	Role    string `json:"role,omitempty"`
}

// ListScreensOutput returns the screen layout.
type ListScreensOutput struct {
	Screens []ScreenEntry `json:"screens"`
}

// DirectionInput selects one of the four axes.
type DirectionInput struct {
	Direction string `json:"direction" jsonschema:"required,One of left, right, up, down"`
}

// FocusScreenInput selects a neighbor screen direction.
type FocusScreenInput struct {
	Direction string `json:"direction" jsonschema:"required,One of left, right, up, down"`
}

// ThrowInput names the destination screen role.
type ThrowInput struct {
	Role string `json:"role" jsonschema:"required,Destination screen role: bottom, center, top, left or right"`
}

// CycleInput selects the screen side the cycle aligns to.
type CycleInput struct {
	Side string `json:"side" jsonschema:"required,Screen side the window aligns to: left or right"`
}

// ToggleInput has no parameters.
type ToggleInput struct{}

// OpOutput reports whether the operation was dispatched.
type OpOutput struct {
	Ok bool   `json:"ok"`
	Op string `json:"op"`
}
