package animation

import (
	"sync"

	"github.com/1broseidon/glide/internal/easing"
	"github.com/1broseidon/glide/internal/layout"
	"github.com/1broseidon/glide/internal/platform"
)

// State is the lifecycle phase of a Session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Session is one in-flight animated transition for one window. It is created
// by Engine.Start and advanced by the engine's tick loop; at most one session
// is live per window at a time.
type Session struct {
	window platform.WindowID
	from   layout.Rect
	to     layout.Rect
	style  easing.Style

	mu         sync.Mutex
	state      State
	step       int
	totalSteps int
	current    layout.Rect
	done       chan struct{}
}

// Window returns the handle this session animates.
func (s *Session) Window() platform.WindowID {
	return s.window
}

// Style returns the easing style driving this session.
func (s *Session) Style() easing.Style {
	return s.style
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentRect returns the most recently written rectangle.
func (s *Session) CurrentRect() layout.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Done returns a channel closed when the session completes or is cancelled.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// cancel marks the session terminal. Because ticks write under the same
// mutex, no further rectangle reaches the sink once cancel returns.
func (s *Session) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminate(StateCancelled)
}

// terminate must be called with s.mu held.
func (s *Session) terminate(st State) {
	if s.state == StateCompleted || s.state == StateCancelled {
		return
	}
	s.state = st
	close(s.done)
}

// advance performs one tick: sample the easing curve, interpolate, and write
// through the sink. Returns false once the session is terminal.
func (s *Session) advance(sink Sink) (layout.Rect, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return layout.Rect{}, false, nil
	}

	s.step++
	t := float64(s.step) / float64(s.totalSteps)
	p := easing.Ease(s.style, t)

	// The blend factor is deliberately unclamped: overshoot styles push the
	// rectangle past the target before settling.
	r := lerpRect(s.from, s.to, p)
	s.current = r

	if err := sink.MoveResize(s.window, r); err != nil {
		s.terminate(StateCancelled)
		return r, false, err
	}

	if s.step >= s.totalSteps {
		s.terminate(StateCompleted)
		return r, false, nil
	}
	return r, true, nil
}

func lerpRect(from, to layout.Rect, p float64) layout.Rect {
	return layout.Rect{
		X:      from.X + (to.X-from.X)*p,
		Y:      from.Y + (to.Y-from.Y)*p,
		Width:  from.Width + (to.Width-from.Width)*p,
		Height: from.Height + (to.Height-from.Height)*p,
	}
}
