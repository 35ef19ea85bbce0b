// Package ipc carries daemon commands over a line-delimited JSON
// protocol on a unix socket.
package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType names an IPC command.
type CommandType string

const (
	CommandReload     CommandType = "RELOAD"
	CommandGetStatus  CommandType = "GET_STATUS"
	CommandGetScreens CommandType = "GET_SCREENS"
	CommandGetWindows CommandType = "GET_WINDOWS"
	CommandRunOp      CommandType = "RUN_OP"
)

// Request is an IPC request from client to daemon.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is an IPC response from daemon to client.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData is returned by GET_STATUS.
type StatusData struct {
	UptimeSeconds int64 `json:"uptime_seconds"`
	ScreenCount   int   `json:"screen_count"`
	WindowCount   int   `json:"window_count"`
	HotkeyCount   int   `json:"hotkey_count"`
	DaemonRunning bool  `json:"daemon_running"`
}

// ScreenInfo describes one display with its classified role.
type ScreenInfo struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Primary bool   `json:"primary"`
	Role    string `json:"role,omitempty"`
}

// ScreensData is returned by GET_SCREENS.
type ScreensData struct {
	Screens []ScreenInfo `json:"screens"`
}

// WindowInfo describes one managed window, front-to-back order.
type WindowInfo struct {
	ID        uint32 `json:"id"`
	App       string `json:"app"`
	Title     string `json:"title"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Focused   bool   `json:"focused"`
	Minimized bool   `json:"minimized,omitempty"`
}

// WindowsData is returned by GET_WINDOWS.
type WindowsData struct {
	Windows []WindowInfo `json:"windows"`
}

// RunOpPayload is the payload for RUN_OP.
type RunOpPayload struct {
	Op string `json:"op"`
}

// NewOKResponse creates a successful response with optional data.
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message.
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
