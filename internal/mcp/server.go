// Package mcp exposes the glide daemon to MCP clients over stdio. Every tool
// is backed by the IPC client, so MCP callers drive a running daemon the same
// way the CLI does.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/glide/internal/ipc"
)

const (
	ServerName    = "glide"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window placement.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates an MCP server backed by the daemon's IPC socket.
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
		Name:        "place_window",
		Description: "Move the currently focused window into a named layout slot (halves, quadrants, thirds, center, maximize) with an animated transition. The daemon must be running.",
	}, s.handlePlaceWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window_to_screen",
		Description: "Move the currently focused window to another monitor, preserving its relative position and size. Monitor indexes are 1-based; use get_monitors to list them.",
	}, s.handleMoveToScreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_easing_styles",
		Description: "List the thirty animation easing styles and their fixed durations.",
	}, s.handleListStyles)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_monitors",
		Description: "List connected monitors with their bounds and usable work areas.",
	}, s.handleGetMonitors)
}
