package easing

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-6

func TestEveryStyleHasDuration(t *testing.T) {
	all := Styles()
	if len(all) != 30 {
		t.Fatalf("Styles() has %d entries, want 30", len(all))
	}
	for _, s := range all {
		d := Duration(s)
		if d < 150*time.Millisecond || d > 1200*time.Millisecond {
			t.Errorf("%s duration %v outside expected range", s, d)
		}
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range Styles() {
		got, err := ParseStyle(string(s))
		if err != nil {
			t.Errorf("ParseStyle(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("ParseStyle(%q) = %q", s, got)
		}
	}
	if _, err := ParseStyle("easeInOutQuint"); err == nil {
		t.Error("ParseStyle should reject unknown names")
	}
}

func TestEaseEndpoints(t *testing.T) {
	for _, s := range Styles() {
		if got := Ease(s, 0); math.Abs(got) > epsilon {
			t.Errorf("%s: Ease(0) = %v, want 0", s, got)
		}
		if got := Ease(s, 1); math.Abs(got-1) > epsilon {
			t.Errorf("%s: Ease(1) = %v, want 1", s, got)
		}
		// Out-of-range time clamps to the endpoints.
		if got := Ease(s, -0.5); got != 0 {
			t.Errorf("%s: Ease(-0.5) = %v, want 0", s, got)
		}
		if got := Ease(s, 1.5); got != 1 {
			t.Errorf("%s: Ease(1.5) = %v, want 1", s, got)
		}
	}
}

func TestEaseKnownValues(t *testing.T) {
	tests := []struct {
		style Style
		t     float64
		want  float64
	}{
		{StyleLinear, 0.25, 0.25},
		{StyleLinear, 0.5, 0.5},
		{StyleSmooth, 0.5, 0.5},
		{StyleBounce, 0.5, 0.80859375},
		{StyleGlide, 0.5, 0.5},
		{StyleSilk, 0.5, 0.5},
		{StyleFlow, 0.5, 0.5},
		{StyleRocket, 0.5, (math.Pow(2, 5) - 1) / 1023},
	}
	for _, tt := range tests {
		if got := Ease(tt.style, tt.t); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Ease(%s, %v) = %v, want %v", tt.style, tt.t, got, tt.want)
		}
	}
}

func TestTeleportSnaps(t *testing.T) {
	for _, tt := range []struct {
		t    float64
		want float64
	}{
		{0.0, 0}, {0.05, 0}, {0.09, 0}, {0.1, 1}, {0.5, 1}, {1.0, 1},
	} {
		if got := Ease(StyleTeleport, tt.t); got != tt.want {
			t.Errorf("teleport(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

// The overshoot family must leave [0,1] somewhere mid-flight.
func TestOvershootStylesExceedTarget(t *testing.T) {
	for _, s := range []Style{StyleOvershoot, StyleElastic, StyleSpring, StyleRubberBand} {
		exceeded := false
		for i := 1; i < 1000; i++ {
			p := Ease(s, float64(i)/1000)
			if p > 1+epsilon || p < -epsilon {
				exceeded = true
				break
			}
		}
		if !exceeded {
			t.Errorf("%s never leaves [0,1] mid-flight", s)
		}
	}
}

// The smooth family stays within [0,1] and never moves backward.
func TestSmoothStylesMonotonic(t *testing.T) {
	for _, s := range []Style{StyleLinear, StyleSmooth, StyleGlide, StyleSilk, StyleFlow, StyleDrift} {
		prev := 0.0
		for i := 0; i <= 1000; i++ {
			p := Ease(s, float64(i)/1000)
			if p < -epsilon || p > 1+epsilon {
				t.Errorf("%s: Ease(%v) = %v outside [0,1]", s, float64(i)/1000, p)
			}
			if p < prev-epsilon {
				t.Errorf("%s: regressed from %v to %v at t=%v", s, prev, p, float64(i)/1000)
			}
			prev = p
		}
	}
}

func TestBounceSegmentsContinuous(t *testing.T) {
	// The four parabola segments must join without jumps.
	for _, boundary := range []float64{0.125, 0.25, 0.75} {
		lo := Ease(StyleBounce, boundary-1e-9)
		hi := Ease(StyleBounce, boundary+1e-9)
		if math.Abs(hi-lo) > 1e-6 {
			t.Errorf("bounce discontinuous at %v: %v vs %v", boundary, lo, hi)
		}
	}
}
