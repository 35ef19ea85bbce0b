package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/dispatch"
	"github.com/1broseidon/nudge/internal/platform"
	"github.com/1broseidon/nudge/internal/runtimepath"
	"github.com/1broseidon/nudge/internal/screens"
)

// Server answers IPC requests from the one-shot CLI verbs, the TUI and
// the MCP bridge.
type Server struct {
	socketPath string
	listener   net.Listener

	cfg   *config.Config
	cfgMu sync.RWMutex

	dispatcher *dispatch.Dispatcher
	backend    platform.Backend
	startTime  time.Time
	reloadChan chan struct{}

	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates the IPC server. reloadChan notifies the daemon loop
// of a config reload request.
func NewServer(cfg *config.Config, dispatcher *dispatch.Dispatcher, backend platform.Backend, reloadChan chan struct{}) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove stale socket from a previous run.
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		cfg:        cfg,
		dispatcher: dispatcher,
		backend:    backend,
		startTime:  time.Now(),
		reloadChan: reloadChan,
	}, nil
}

// Start begins listening for IPC connections.
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("IPC server listening on %s", s.socketPath)
	go s.acceptLoop()
	return nil
}

// Stop closes the listener and removes the socket.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

// SetConfig swaps the effective configuration after a reload.
func (s *Server) SetConfig(cfg *config.Config) {
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

// GetConfig returns the effective configuration.
func (s *Server) GetConfig() *config.Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			log.Printf("IPC accept error: %v", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		log.Printf("IPC read error: %v", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)

	respData, err := resp.Marshal()
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		return
	}
	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}

func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandReload:
		return s.handleReload()
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandGetScreens:
		return s.handleGetScreens()
	case CommandGetWindows:
		return s.handleGetWindows()
	case CommandRunOp:
		return s.handleRunOp(req.Payload)
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

func (s *Server) handleReload() *Response {
	log.Println("IPC: received RELOAD command")

	newCfg, err := config.Load()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
	}

	s.SetConfig(newCfg)

	select {
	case s.reloadChan <- struct{}{}:
	default:
	}

	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleGetStatus() *Response {
	scrs, _ := s.backend.Screens()
	wins, _ := s.backend.ListWindows()

	s.cfgMu.RLock()
	hotkeys := len(s.cfg.Hotkeys)
	s.cfgMu.RUnlock()

	status := StatusData{
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		ScreenCount:   len(scrs),
		WindowCount:   len(wins),
		HotkeyCount:   hotkeys,
		DaemonRunning: true,
	}

	resp, _ := NewOKResponse(status)
	return resp
}

func (s *Server) handleGetScreens() *Response {
	scrs, err := s.backend.Screens()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to get screens: %v", err))
	}

	s.cfgMu.RLock()
	roleMap := screens.BuildMap(scrs, s.cfg.ScreenRoles)
	s.cfgMu.RUnlock()

	roleByID := make(map[int]string, len(roleMap))
	for role, scr := range roleMap {
		roleByID[scr.ID] = string(role)
	}

	infos := make([]ScreenInfo, len(scrs))
	for i, scr := range scrs {
		infos[i] = ScreenInfo{
			ID:      scr.ID,
			Name:    scr.Name,
			X:       int(scr.Frame.X),
			Y:       int(scr.Frame.Y),
			Width:   int(scr.Frame.W),
			Height:  int(scr.Frame.H),
			Primary: scr.Primary,
			Role:    roleByID[scr.ID],
		}
	}

	resp, _ := NewOKResponse(ScreensData{Screens: infos})
	return resp
}

func (s *Server) handleGetWindows() *Response {
	wins, err := s.backend.ListWindows()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to get windows: %v", err))
	}

	var focusedID platform.WindowID
	if active, ok, err := s.backend.ActiveWindow(); err == nil && ok {
		focusedID = active.ID
	}

	infos := make([]WindowInfo, len(wins))
	for i, w := range wins {
		infos[i] = WindowInfo{
			ID:        uint32(w.ID),
			App:       w.App,
			Title:     w.Title,
			X:         int(w.Frame.X),
			Y:         int(w.Frame.Y),
			Width:     int(w.Frame.W),
			Height:    int(w.Frame.H),
			Focused:   w.ID == focusedID,
			Minimized: w.Minimized,
		}
	}

	resp, _ := NewOKResponse(WindowsData{Windows: infos})
	return resp
}

func (s *Server) handleRunOp(payload json.RawMessage) *Response {
	var runReq RunOpPayload
	if err := json.Unmarshal(payload, &runReq); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid run payload: %v", err))
	}
	if runReq.Op == "" {
		return NewErrorResponse("missing op")
	}

	if err := s.dispatcher.Dispatch(runReq.Op); err != nil {
		return NewErrorResponse(fmt.Sprintf("Operation failed: %v", err))
	}

	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) sendError(conn net.Conn, msg string) {
	resp := NewErrorResponse(msg)
	respData, err := resp.Marshal()
	if err != nil {
		return
	}
	respData = append(respData, '\n')
	conn.Write(respData)
}
