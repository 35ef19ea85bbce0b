package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ ToggleInput) (*mcpsdk.CallToolResult, StatusOutput, error) {
	status, err := s.client.GetStatus()
	if err != nil {
		return nil, StatusOutput{Running: false}, nil
	}
	return nil, StatusOutput{
		Running:       status.DaemonRunning,
		UptimeSeconds: status.UptimeSeconds,
		ScreenCount:   status.ScreenCount,
		WindowCount:   status.WindowCount,
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	data, err := s.client.GetWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]WindowEntry, len(data.Windows))}
	for i, w := range data.Windows {
		out.Windows[i] = WindowEntry{
			ID:      w.ID,
			App:     w.App,
			Title:   w.Title,
			X:       w.X,
			Y:       w.Y,
			Width:   w.Width,
			Height:  w.Height,
			Focused: w.Focused,
		}
	}
	return nil, out, nil
}

func (s *Server) handleListScreens(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListScreensInput) (*mcpsdk.CallToolResult, ListScreensOutput, error) {
	data, err := s.client.GetScreens()
	if err != nil {
		return nil, ListScreensOutput{}, err
	}

	out := ListScreensOutput{Screens: make([]ScreenEntry, len(data.Screens))}
	for i, scr := range data.Screens {
		out.Screens[i] = ScreenEntry{
			ID:      scr.ID,
			Name:    scr.Name,
			X:       scr.X,
			Y:       scr.Y,
			Width:   scr.Width,
			Height:  scr.Height,
			Primary: scr.Primary,
			Role:    scr.Role,
		}
	}
	return nil, out, nil
}

func (s *Server) handleResizeStep(_ context.Context, _ *mcpsdk.CallToolRequest, args DirectionInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	return s.runOp("resize-" + args.Direction)
}

func (s *Server) handleShrinkToggle(_ context.Context, _ *mcpsdk.CallToolRequest, args DirectionInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	return s.runOp("shrink-" + args.Direction)
}

func (s *Server) handleFocusDirection(_ context.Context, _ *mcpsdk.CallToolRequest, args DirectionInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	return s.runOp("focus-" + args.Direction)
}

func (s *Server) handleFocusScreen(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusScreenInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	return s.runOp("focus-screen-" + args.Direction)
}

func (s *Server) handleCycle(_ context.Context, _ *mcpsdk.CallToolRequest, args CycleInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	if args.Side != "left" && args.Side != "right" {
		return nil, OpOutput{}, fmt.Errorf("side must be left or right, got %q", args.Side)
	}
	return s.runOp("cycle-" + args.Side)
}

func (s *Server) handleCenter(_ context.Context, _ *mcpsdk.CallToolRequest, _ ToggleInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	return s.runOp("center")
}

func (s *Server) handleMaximize(_ context.Context, _ *mcpsdk.CallToolRequest, _ ToggleInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	return s.runOp("maximize")
}

func (s *Server) handleCompact(_ context.Context, _ *mcpsdk.CallToolRequest, _ ToggleInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	return s.runOp("compact")
}

func (s *Server) handleThrow(_ context.Context, _ *mcpsdk.CallToolRequest, args ThrowInput) (*mcpsdk.CallToolResult, OpOutput, error) {
	return s.runOp("throw-" + args.Role)
}

func (s *Server) runOp(op string) (*mcpsdk.CallToolResult, OpOutput, error) {
	if err := s.client.RunOp(op); err != nil {
		return nil, OpOutput{Ok: false, Op: op}, err
	}
	return nil, OpOutput{Ok: true, Op: op}, nil
}
