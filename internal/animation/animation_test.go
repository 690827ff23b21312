package animation

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/1broseidon/glide/internal/easing"
	"github.com/1broseidon/glide/internal/layout"
	"github.com/1broseidon/glide/internal/platform"
)

// recordingSink captures every rectangle written, optionally failing after a
// set number of writes.
type recordingSink struct {
	mu        sync.Mutex
	rects     []layout.Rect
	failAfter int // 0 means never fail
}

func (s *recordingSink) MoveResize(id platform.WindowID, r layout.Rect) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAfter > 0 && len(s.rects) >= s.failAfter {
		return fmt.Errorf("window %d destroyed", id)
	}
	s.rects = append(s.rects, r)
	return nil
}

func (s *recordingSink) last() (layout.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rects) == 0 {
		return layout.Rect{}, false
	}
	return s.rects[len(s.rects)-1], true
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rects)
}

func waitDone(t *testing.T, s *Session, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(timeout):
		t.Fatalf("session did not finish within %v", timeout)
	}
}

func rectsClose(a, b layout.Rect) bool {
	const eps = 1e-6
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

func TestSessionCompletesOnTarget(t *testing.T) {
	sink := &recordingSink{}
	engine := NewEngine(sink, nil)

	from := layout.Rect{X: 0, Y: 0, Width: 400, Height: 300}
	to := layout.Rect{X: 960, Y: 8, Width: 944, Height: 1064}
	sess := engine.Start(1, from, to, easing.StyleLinear)

	waitDone(t, sess, 2*time.Second)

	if got := sess.State(); got != StateCompleted {
		t.Fatalf("state = %v, want completed", got)
	}
	last, ok := sink.last()
	if !ok {
		t.Fatal("sink saw no writes")
	}
	if !rectsClose(last, to) {
		t.Errorf("final rect = %+v, want %+v", last, to)
	}
	if !rectsClose(sess.CurrentRect(), to) {
		t.Errorf("CurrentRect = %+v, want %+v", sess.CurrentRect(), to)
	}
}

func TestSessionStepCount(t *testing.T) {
	sink := &recordingSink{}
	engine := NewEngine(sink, nil)

	// linear is 300ms at 60Hz: exactly 18 ticks.
	sess := engine.Start(1, layout.Rect{}, layout.Rect{X: 100}, easing.StyleLinear)
	waitDone(t, sess, 2*time.Second)

	if got := sink.count(); got != 18 {
		t.Errorf("sink saw %d writes, want 18", got)
	}
}

func TestStartSupersedesRunningSession(t *testing.T) {
	sink := &recordingSink{}
	engine := NewEngine(sink, nil)

	from := layout.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	mid := layout.Rect{X: 1000, Y: 0, Width: 100, Height: 100}
	final := layout.Rect{X: 0, Y: 1000, Width: 100, Height: 100}

	first := engine.Start(7, from, mid, easing.StyleTornado)
	time.Sleep(100 * time.Millisecond)
	second := engine.Start(7, from, final, easing.StyleLinear)

	waitDone(t, first, time.Second)
	if got := first.State(); got != StateCancelled {
		t.Fatalf("superseded session state = %v, want cancelled", got)
	}

	waitDone(t, second, 2*time.Second)
	if got := second.State(); got != StateCompleted {
		t.Fatalf("second session state = %v, want completed", got)
	}
	last, _ := sink.last()
	if !rectsClose(last, final) {
		t.Errorf("final rect = %+v, want %+v", last, final)
	}
}

func TestCancelStopsWrites(t *testing.T) {
	sink := &recordingSink{}
	engine := NewEngine(sink, nil)

	sess := engine.Start(3, layout.Rect{}, layout.Rect{X: 500}, easing.StyleTornado)
	time.Sleep(50 * time.Millisecond)
	engine.Cancel(3)

	waitDone(t, sess, time.Second)
	if got := sess.State(); got != StateCancelled {
		t.Fatalf("state = %v, want cancelled", got)
	}

	// No rectangle may reach the sink after cancel returns.
	n := sink.count()
	time.Sleep(100 * time.Millisecond)
	if got := sink.count(); got != n {
		t.Errorf("sink saw %d writes after cancel, want %d", got, n)
	}
}

func TestSinkErrorCancelsSession(t *testing.T) {
	sink := &recordingSink{failAfter: 3}
	engine := NewEngine(sink, nil)

	sess := engine.Start(9, layout.Rect{}, layout.Rect{X: 500}, easing.StyleLinear)
	waitDone(t, sess, 2*time.Second)

	if got := sess.State(); got != StateCancelled {
		t.Errorf("state = %v, want cancelled", got)
	}
	if got := sink.count(); got != 3 {
		t.Errorf("sink saw %d writes, want 3", got)
	}
}

func TestActiveTracking(t *testing.T) {
	sink := &recordingSink{}
	engine := NewEngine(sink, nil)

	if engine.Active(5) {
		t.Fatal("Active(5) before Start")
	}
	sess := engine.Start(5, layout.Rect{}, layout.Rect{X: 100}, easing.StyleTornado)
	if !engine.Active(5) {
		t.Error("Active(5) false while running")
	}
	if got := engine.ActiveCount(); got != 1 {
		t.Errorf("ActiveCount = %d, want 1", got)
	}

	engine.Cancel(5)
	waitDone(t, sess, time.Second)
	if engine.Active(5) {
		t.Error("Active(5) true after cancel")
	}
}

func TestIndependentWindowsRunConcurrently(t *testing.T) {
	sink := &recordingSink{}
	engine := NewEngine(sink, nil)

	a := engine.Start(1, layout.Rect{}, layout.Rect{X: 100}, easing.StyleLinear)
	b := engine.Start(2, layout.Rect{}, layout.Rect{Y: 100}, easing.StyleLinear)

	waitDone(t, a, 2*time.Second)
	waitDone(t, b, 2*time.Second)
	if a.State() != StateCompleted || b.State() != StateCompleted {
		t.Errorf("states = %v/%v, want completed/completed", a.State(), b.State())
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateIdle:      "idle",
		StateRunning:   "running",
		StateCompleted: "completed",
		StateCancelled: "cancelled",
		State(42):      "unknown",
	}
	for st, want := range tests {
		if got := st.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", st, got, want)
		}
	}
}
