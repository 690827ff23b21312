// Package animation drives window rectangles from a start frame to a target
// frame over time. Each window has at most one live session; starting a new
// one supersedes the old. Sessions for distinct windows tick independently.
package animation

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/1broseidon/glide/internal/easing"
	"github.com/1broseidon/glide/internal/layout"
	"github.com/1broseidon/glide/internal/platform"
)

// FrameRate is the fixed tick frequency for all sessions.
const FrameRate = 60

// Sink receives the interpolated rectangles. It is the write half of the
// platform backend; an error means the window handle is no longer valid.
type Sink interface {
	MoveResize(id platform.WindowID, r layout.Rect) error
}

// Engine owns the per-window session arena.
type Engine struct {
	sink   Sink
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[platform.WindowID]*Session
}

// NewEngine creates an engine writing through sink.
func NewEngine(sink Sink, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		sink:     sink,
		logger:   logger,
		sessions: make(map[platform.WindowID]*Session),
	}
}

// Start begins animating a window from one rectangle to another. If a session
// is already running for the window it is cancelled first, and the new
// session picks up from the rectangle the old one last wrote rather than the
// caller's (possibly stale) from rect. The seed read happens before the old
// session is marked cancelled, both under the engine lock.
func (e *Engine) Start(id platform.WindowID, from, to layout.Rect, style easing.Style) *Session {
	steps := int(math.Round(easing.Duration(style).Seconds() * FrameRate))
	if steps < 1 {
		steps = 1
	}

	e.mu.Lock()
	if old, ok := e.sessions[id]; ok {
		from = old.CurrentRect()
		old.cancel()
		e.logger.Debug("animation superseded", "window", id, "style", old.Style())
	}

	s := &Session{
		window:     id,
		from:       from,
		to:         to,
		style:      style,
		state:      StateRunning,
		totalSteps: steps,
		current:    from,
		done:       make(chan struct{}),
	}
	e.sessions[id] = s
	e.mu.Unlock()

	go e.run(s)
	return s
}

// Cancel stops the session for a window, if any.
func (e *Engine) Cancel(id platform.WindowID) {
	e.mu.Lock()
	s, ok := e.sessions[id]
	e.mu.Unlock()
	if ok {
		s.cancel()
	}
}

// Active reports whether a session is currently running for the window.
func (e *Engine) Active(id platform.WindowID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	return ok && s.State() == StateRunning
}

// ActiveCount returns the number of live sessions.
func (e *Engine) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, s := range e.sessions {
		if s.State() == StateRunning {
			n++
		}
	}
	return n
}

// run ticks a single session to its terminal state.
func (e *Engine) run(s *Session) {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for range ticker.C {
		_, more, err := s.advance(e.sink)
		if err != nil {
			// Window vanished mid-flight. The placement call already
			// succeeded, so this is only worth a log line.
			e.logger.Warn("animation tick failed, window gone",
				"window", s.window, "style", s.style, "error", err)
		}
		if !more {
			break
		}
	}

	e.mu.Lock()
	if e.sessions[s.window] == s {
		delete(e.sessions, s.window)
	}
	e.mu.Unlock()
}
