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

	"github.com/1broseidon/glide/internal/config"
	"github.com/1broseidon/glide/internal/controlpage"
	"github.com/1broseidon/glide/internal/easing"
	"github.com/1broseidon/glide/internal/layout"
	"github.com/1broseidon/glide/internal/runtimepath"
	"github.com/1broseidon/glide/internal/wm"
)

// Server handles IPC requests from clients
type Server struct {
	socketPath   string
	listener     net.Listener
	cfg          *config.Config
	cfgMu        sync.RWMutex
	manager      *wm.Manager
	startTime    time.Time
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server
func NewServer(cfg *config.Config, manager *wm.Manager) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove existing socket if present
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		cfg:        cfg,
		manager:    manager,
		startTime:  time.Now(),
	}, nil
}

// Start begins listening for IPC connections
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	// Set socket permissions
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("IPC server listening on %s", s.socketPath)

	// Accept connections
	go s.acceptLoop()

	return nil
}

// acceptLoop accepts incoming connections
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

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	// Read the request (expect JSON on a single line)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		log.Printf("IPC read error: %v", err)
		return
	}

	// Parse request
	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Handle command
	resp := s.handleCommand(req)

	// Send response
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

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandPlace:
		return s.handlePlace(req.Payload)
	case CommandMoveToScreen:
		return s.handleMoveToScreen(req.Payload)
	case CommandGetControlPage:
		return s.handleGetControlPage()
	case CommandListStyles:
		return s.handleListStyles()
	case CommandGetMonitors:
		return s.handleGetMonitors()
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandSetDefaults:
		return s.handleSetDefaults(req.Payload)
	case CommandReload:
		return s.handleReload()
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

// handlePlace moves the focused window into a named layout slot.
func (s *Server) handlePlace(payload json.RawMessage) *Response {
	var req PlacePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid place payload: %v", err))
	}
	if req.Placement == "" {
		return NewErrorResponse("placement is required")
	}

	placement, sess, err := s.manager.Place(req.Placement, req.Style)
	if err != nil {
		return NewErrorResponse(err.Error())
	}

	log.Printf("IPC: place '%s' with style '%s'", placement, sess.Style())

	resp, _ := NewOKResponse(PlaceData{
		Placement: string(placement),
		Style:     string(sess.Style()),
	})
	return resp
}

// handleMoveToScreen moves the focused window to another monitor.
func (s *Server) handleMoveToScreen(payload json.RawMessage) *Response {
	var req MoveToScreenPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid move payload: %v", err))
	}

	index, sess, err := s.manager.MoveToScreen(req.Index, req.Style)
	if err != nil {
		return NewErrorResponse(err.Error())
	}

	log.Printf("IPC: move to screen %d with style '%s'", index, sess.Style())

	resp, _ := NewOKResponse(MoveToScreenData{
		Index: index,
		Style: string(sess.Style()),
	})
	return resp
}

func (s *Server) handleGetControlPage() *Response {
	resp, _ := NewOKResponse(ControlPageData{HTML: controlpage.HTML()})
	return resp
}

func (s *Server) handleListStyles() *Response {
	styles := easing.Styles()
	infos := make([]StyleInfo, 0, len(styles))
	for _, style := range styles {
		infos = append(infos, StyleInfo{
			Name:       string(style),
			DurationMS: easing.Duration(style).Milliseconds(),
		})
	}

	resp, _ := NewOKResponse(StylesData{
		Styles:       infos,
		DefaultStyle: string(s.manager.Defaults().Style),
	})
	return resp
}

func (s *Server) handleGetMonitors() *Response {
	displays, err := s.manager.Displays()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to get monitors: %v", err))
	}

	monitorInfos := make([]MonitorInfo, len(displays))
	for i, d := range displays {
		monitorInfos[i] = MonitorInfo{
			ID:           d.ID,
			Name:         d.Name,
			X:            d.Bounds.X,
			Y:            d.Bounds.Y,
			Width:        d.Bounds.Width,
			Height:       d.Bounds.Height,
			UsableX:      d.Usable.X,
			UsableY:      d.Usable.Y,
			UsableWidth:  d.Usable.Width,
			UsableHeight: d.Usable.Height,
		}
	}

	resp, _ := NewOKResponse(MonitorsData{Monitors: monitorInfos})
	return resp
}

func (s *Server) handleGetStatus() *Response {
	s.cfgMu.RLock()
	defaults := s.manager.Defaults()
	s.cfgMu.RUnlock()

	status := StatusData{
		DaemonRunning:    true,
		UptimeSeconds:    int64(time.Since(s.startTime).Seconds()),
		ActiveAnimations: s.manager.Engine().ActiveCount(),
		DefaultStyle:     string(defaults.Style),
		Padding:          string(defaults.Padding),
	}

	resp, _ := NewOKResponse(status)
	return resp
}

// handleSetDefaults updates and persists the default style and padding.
func (s *Server) handleSetDefaults(payload json.RawMessage) *Response {
	var req SetDefaultsPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid defaults payload: %v", err))
	}
	if req.Style == "" && req.Padding == "" {
		return NewErrorResponse("style or padding is required")
	}

	s.cfgMu.Lock()
	if req.Style != "" {
		if _, err := easing.ParseStyle(req.Style); err != nil {
			s.cfgMu.Unlock()
			return NewErrorResponse(err.Error())
		}
		s.cfg.DefaultStyle = req.Style
	}
	if req.Padding != "" {
		if _, err := layout.ParsePadding(req.Padding); err != nil {
			s.cfgMu.Unlock()
			return NewErrorResponse(err.Error())
		}
		s.cfg.Padding = req.Padding
	}
	err := s.cfg.Save()
	defaults := wm.Defaults{Style: s.cfg.Style(), Padding: s.cfg.PaddingLevel()}
	s.cfgMu.Unlock()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to save config: %v", err))
	}

	s.manager.SetDefaults(defaults)
	log.Printf("IPC: defaults updated (style=%s padding=%s)", defaults.Style, defaults.Padding)

	resp, _ := NewOKResponse(nil)
	return resp
}

// handleReload re-reads the config file and applies it.
func (s *Server) handleReload() *Response {
	newCfg, err := config.Load()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
	}

	s.cfgMu.Lock()
	s.cfg = newCfg
	s.cfgMu.Unlock()

	s.manager.SetDefaults(wm.Defaults{Style: newCfg.Style(), Padding: newCfg.PaddingLevel()})
	log.Println("IPC: Config reloaded successfully")

	resp, _ := NewOKResponse(nil)
	return resp
}

// sendError sends an error response
func (s *Server) sendError(conn net.Conn, errMsg string) {
	resp := NewErrorResponse(errMsg)
	data, _ := resp.Marshal()
	data = append(data, '\n')
	conn.Write(data)
}

// Stop gracefully shuts down the IPC server
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}
