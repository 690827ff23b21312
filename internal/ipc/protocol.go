package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandPlace          CommandType = "PLACE"
	CommandMoveToScreen   CommandType = "MOVE_TO_SCREEN"
	CommandGetControlPage CommandType = "GET_CONTROL_PAGE"
	CommandListStyles     CommandType = "LIST_STYLES"
	CommandGetMonitors    CommandType = "GET_MONITORS"
	CommandGetStatus      CommandType = "GET_STATUS"
	CommandSetDefaults    CommandType = "SET_DEFAULTS"
	CommandReload         CommandType = "RELOAD"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// PlacePayload asks the daemon to move the focused window into a layout slot.
type PlacePayload struct {
	Placement string `json:"placement"`
	Style     string `json:"style,omitempty"`
}

// PlaceData is returned on a successful PLACE.
type PlaceData struct {
	Placement string `json:"placement"`
	Style     string `json:"style"`
}

// MoveToScreenPayload asks the daemon to move the focused window to another
// monitor. Index is 1-based.
type MoveToScreenPayload struct {
	Index int    `json:"index"`
	Style string `json:"style,omitempty"`
}

// MoveToScreenData is returned on a successful MOVE_TO_SCREEN.
type MoveToScreenData struct {
	Index int    `json:"index"`
	Style string `json:"style"`
}

// ControlPageData carries the embedded HTML control surface.
type ControlPageData struct {
	HTML string `json:"html"`
}

// StyleInfo describes one easing style.
type StyleInfo struct {
	Name       string `json:"name"`
	DurationMS int64  `json:"duration_ms"`
}

// StylesData is returned by LIST_STYLES.
type StylesData struct {
	Styles       []StyleInfo `json:"styles"`
	DefaultStyle string      `json:"default_style"`
}

// MonitorInfo represents information about a single monitor.
type MonitorInfo struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	UsableX      float64 `json:"usable_x"`
	UsableY      float64 `json:"usable_y"`
	UsableWidth  float64 `json:"usable_width"`
	UsableHeight float64 `json:"usable_height"`
}

// MonitorsData represents the data returned by GET_MONITORS
type MonitorsData struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	DaemonRunning    bool   `json:"daemon_running"`
	UptimeSeconds    int64  `json:"uptime_seconds"`
	ActiveAnimations int    `json:"active_animations"`
	DefaultStyle     string `json:"default_style"`
	Padding          string `json:"padding"`
}

// SetDefaultsPayload updates and persists the default style and/or padding.
type SetDefaultsPayload struct {
	Style   string `json:"style,omitempty"`
	Padding string `json:"padding,omitempty"`
}

// NewOKResponse creates a successful response with optional data
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

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
