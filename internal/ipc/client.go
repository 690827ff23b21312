package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/glide/internal/runtimepath"
)

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}

	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	// Connect to socket
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	// Set deadline
	conn.SetDeadline(time.Now().Add(c.timeout))

	// Marshal request
	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Send request
	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	// Read response
	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Parse response
	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// Check for error response
	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

// Place moves the focused window into a named layout slot. style may be empty
// to use the daemon's default.
func (c *Client) Place(placement, style string) (*PlaceData, error) {
	payload, err := json.Marshal(PlacePayload{Placement: placement, Style: style})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal place payload: %w", err)
	}

	resp, err := c.sendRequest(&Request{Command: CommandPlace, Payload: payload})
	if err != nil {
		return nil, err
	}

	var data PlaceData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse place data: %w", err)
	}
	return &data, nil
}

// MoveToScreen moves the focused window to the 1-based monitor index.
func (c *Client) MoveToScreen(index int, style string) (*MoveToScreenData, error) {
	payload, err := json.Marshal(MoveToScreenPayload{Index: index, Style: style})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal move payload: %w", err)
	}

	resp, err := c.sendRequest(&Request{Command: CommandMoveToScreen, Payload: payload})
	if err != nil {
		return nil, err
	}

	var data MoveToScreenData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse move data: %w", err)
	}
	return &data, nil
}

// ControlPage retrieves the embedded HTML control surface.
func (c *Client) ControlPage() (string, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetControlPage})
	if err != nil {
		return "", err
	}

	var data ControlPageData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", fmt.Errorf("failed to parse control page data: %w", err)
	}
	return data.HTML, nil
}

// ListStyles retrieves the available easing styles.
func (c *Client) ListStyles() (*StylesData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandListStyles})
	if err != nil {
		return nil, err
	}

	var data StylesData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return &data, nil
}

// GetMonitors retrieves monitor information
func (c *Client) GetMonitors() (*MonitorsData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetMonitors})
	if err != nil {
		return nil, err
	}

	var monitors MonitorsData
	if err := json.Unmarshal(resp.Data, &monitors); err != nil {
		return nil, fmt.Errorf("failed to parse monitors data: %w", err)
	}
	return &monitors, nil
}

// GetStatus retrieves daemon status
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}
	return &status, nil
}

// SetDefaults updates and persists the default style and/or padding.
func (c *Client) SetDefaults(style, padding string) error {
	payload, err := json.Marshal(SetDefaultsPayload{Style: style, Padding: padding})
	if err != nil {
		return fmt.Errorf("failed to marshal defaults payload: %w", err)
	}

	_, err = c.sendRequest(&Request{Command: CommandSetDefaults, Payload: payload})
	return err
}

// Reload sends a RELOAD command to the daemon
func (c *Client) Reload() error {
	_, err := c.sendRequest(&Request{Command: CommandReload})
	return err
}

// Ping checks if the daemon is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
