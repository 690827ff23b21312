// Package wm translates placement requests into geometry and animation calls.
// It is the daemon-side core behind the IPC and MCP surfaces.
package wm

import (
	"fmt"
	"sync"

	"github.com/1broseidon/glide/internal/animation"
	"github.com/1broseidon/glide/internal/easing"
	"github.com/1broseidon/glide/internal/layout"
	"github.com/1broseidon/glide/internal/platform"
)

// Defaults are the preferences applied when a request doesn't override them.
// They are threaded in explicitly so the core stays testable without a live
// desktop session.
type Defaults struct {
	Style   easing.Style
	Padding layout.PaddingLevel
}

// Manager owns placement handling for one daemon instance.
type Manager struct {
	backend platform.Backend
	engine  *animation.Engine

	mu       sync.RWMutex
	defaults Defaults
}

// NewManager creates a manager around a backend and animation engine.
func NewManager(backend platform.Backend, engine *animation.Engine, defaults Defaults) *Manager {
	return &Manager{
		backend:  backend,
		engine:   engine,
		defaults: defaults,
	}
}

// Defaults returns the current default style and padding.
func (m *Manager) Defaults() Defaults {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaults
}

// SetDefaults replaces the default style and padding.
func (m *Manager) SetDefaults(d Defaults) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaults = d
}

// Engine exposes the animation engine for status reporting.
func (m *Manager) Engine() *animation.Engine {
	return m.engine
}

// Displays enumerates the connected displays.
func (m *Manager) Displays() ([]platform.Display, error) {
	return m.backend.Displays()
}

// Place animates the focused window into a named layout slot on its own
// screen. styleOverride may be empty to use the default style.
func (m *Manager) Place(placementName, styleOverride string) (layout.Placement, *animation.Session, error) {
	p, err := layout.ParsePlacement(placementName)
	if err != nil {
		return "", nil, err
	}

	style, err := m.resolveStyle(styleOverride)
	if err != nil {
		return "", nil, err
	}

	id, err := m.backend.ActiveWindow()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrNoFocusedWindow, err)
	}

	cur, err := m.backend.WindowRect(id)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrHandleInvalid, err)
	}

	disp, err := m.backend.DisplayContaining(id)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrNoScreenForWindow, err)
	}

	padding := m.Defaults().Padding.Points()
	target := layout.ComputeFrame(p, disp.Usable, padding)
	sess := m.engine.Start(id, cur, target, style)
	return p, sess, nil
}

// MoveToScreen animates the focused window onto another monitor, preserving
// its relative position and size. index is 1-based.
func (m *Manager) MoveToScreen(index int, styleOverride string) (int, *animation.Session, error) {
	style, err := m.resolveStyle(styleOverride)
	if err != nil {
		return 0, nil, err
	}

	displays, err := m.backend.Displays()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to enumerate displays: %w", err)
	}
	if index < 1 || index > len(displays) {
		return 0, nil, fmt.Errorf("%w: %d (valid range 1-%d)", ErrInvalidMonitorIndex, index, len(displays))
	}

	id, err := m.backend.ActiveWindow()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrNoFocusedWindow, err)
	}

	cur, err := m.backend.WindowRect(id)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrHandleInvalid, err)
	}

	curDisp, err := m.backend.DisplayContaining(id)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrNoScreenForWindow, err)
	}

	padding := m.Defaults().Padding.Points()
	target := layout.MapAcrossScreens(cur, curDisp.Usable, displays[index-1].Usable, padding)
	sess := m.engine.Start(id, cur, target, style)
	return index, sess, nil
}

func (m *Manager) resolveStyle(override string) (easing.Style, error) {
	if override == "" {
		return m.Defaults().Style, nil
	}
	return easing.ParseStyle(override)
}
