package platform

import "github.com/1broseidon/glide/internal/layout"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Display describes a physical display and its usable work area. IDs are
// 1-based and stable for the duration of one request.
type Display struct {
	ID     int
	Name   string
	Bounds layout.Rect
	Usable layout.Rect
}

// Backend abstracts window-system operations across platforms.
type Backend interface {
	Displays() ([]Display, error)
	ActiveWindow() (WindowID, error)
	WindowRect(id WindowID) (layout.Rect, error)
	MoveResize(id WindowID, bounds layout.Rect) error
	DisplayContaining(id WindowID) (Display, error)
	Disconnect()
}
