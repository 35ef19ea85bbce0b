// Package mcp exposes the daemon's window operations as MCP tools over
// stdio, bridging every call to the IPC socket so an assistant can
// drive window management without touching X11 directly.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/nudge/internal/ipc"
)

const (
	ServerName    = "nudge"
	ServerVersion = "0.1.0"
)

// Server is the MCP bridge to a running daemon.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates the MCP server. The daemon must already be running;
// tool calls fail cleanly when it is not.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "daemon_status",
		Description: "Report whether the nudge daemon is running, with screen and window counts.",
	}, s.handleStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all managed windows in front-to-back stacking order with their frames and which one is focused.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_screens",
		Description: "List all displays with their work areas and classified spatial roles (bottom, center, top, left, right).",
	}, s.handleListScreens)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_step",
		Description: "Resize the focused window one step in a direction. Left/up shrink, right/down grow; edge-stuck windows stay stuck to their screen edge.",
	}, s.handleResizeStep)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "shrink_toggle",
		Description: "Shrink the focused window to its minimum (left/up) or restore/grow it to the screen edge (right/down).",
	}, s.handleShrinkToggle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_direction",
		Description: "Move focus to the next visible window in a direction on the current screen, preferring windows that overlap the focused one on the perpendicular axis.",
	}, s.handleFocusDirection)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_screen",
		Description: "Jump focus to the neighbor screen in a direction, landing on the window nearest the shared edge.",
	}, s.handleFocusScreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "cycle_window",
		Description: "Advance the focused window through the half, third, mid-third, two-thirds width cycle on one screen side, restoring the original frame at the end.",
	}, s.handleCycle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "center_window",
		Description: "Toggle the focused window through vertical center, full center, then restore.",
	}, s.handleCenter)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize_window",
		Description: "Cycle the focused window through max-height, full maximize, then restore.",
	}, s.handleMaximize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "compact_toggle",
		Description: "Dock the focused window into the compact corner dock, or restore it if already docked.",
	}, s.handleCompact)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_to_screen",
		Description: "Throw the focused window to the screen holding a spatial role, preserving apparent position and fitting the target. Repeating the same throw shortly after undoes it.",
	}, s.handleThrow)
}
