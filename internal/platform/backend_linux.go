//go:build linux

package platform

import (
	"fmt"
	"math"
	"sort"

	"github.com/1broseidon/glide/internal/layout"
	"github.com/1broseidon/glide/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// LinuxBackend implements Backend on top of an X11 connection.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend wraps an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EventLoop starts the X11 event loop (blocking).
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

// XUtil returns the underlying xgbutil connection for X11-specific operations.
func (b *LinuxBackend) XUtil() *xgbutil.XUtil {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.XUtil
}

// RootWindow returns the X11 root window ID.
func (b *LinuxBackend) RootWindow() xproto.Window {
	if b == nil || b.conn == nil {
		return 0
	}
	return b.conn.Root
}

// Displays returns all active displays with 1-based IDs in a stable order.
func (b *LinuxBackend) Displays() ([]Display, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	sort.Slice(monitors, func(i, j int) bool {
		return monitors[i].ID < monitors[j].ID
	})

	displays := make([]Display, 0, len(monitors))
	for i, m := range monitors {
		usable := conn.WorkArea(m)
		displays = append(displays, Display{
			ID:     i + 1,
			Name:   m.Name,
			Bounds: rectFromMonitor(m),
			Usable: rectFromMonitor(usable),
		})
	}

	return displays, nil
}

// ActiveWindow returns the currently focused window.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	if wid == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return WindowID(wid), nil
}

// WindowRect returns a window's current bounds in root coordinates.
func (b *LinuxBackend) WindowRect(id WindowID) (layout.Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return layout.Rect{}, err
	}

	x, y, w, h, err := conn.GetWindowGeometry(xproto.Window(id))
	if err != nil {
		return layout.Rect{}, fmt.Errorf("failed to read window %d geometry: %w", id, err)
	}
	return layout.Rect{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}, nil
}

// MoveResize moves and resizes a window, rounding points to whole pixels.
func (b *LinuxBackend) MoveResize(id WindowID, bounds layout.Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	return conn.MoveResizeWindow(
		xproto.Window(id),
		int(math.Round(bounds.X)),
		int(math.Round(bounds.Y)),
		int(math.Round(bounds.Width)),
		int(math.Round(bounds.Height)),
	)
}

// DisplayContaining returns the display holding the window's center point.
func (b *LinuxBackend) DisplayContaining(id WindowID) (Display, error) {
	rect, err := b.WindowRect(id)
	if err != nil {
		return Display{}, err
	}

	displays, err := b.Displays()
	if err != nil {
		return Display{}, err
	}

	cx := rect.X + rect.Width/2
	cy := rect.Y + rect.Height/2
	for _, d := range displays {
		if containsPoint(d.Bounds, cx, cy) {
			return d, nil
		}
	}
	return Display{}, fmt.Errorf("no display contains window %d", id)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func rectFromMonitor(m x11.Monitor) layout.Rect {
	return layout.Rect{
		X:      float64(m.X),
		Y:      float64(m.Y),
		Width:  float64(m.Width),
		Height: float64(m.Height),
	}
}

func containsPoint(r layout.Rect, x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
