package layout

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-6

func rectsEqual(a, b Rect) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Width-b.Width) < epsilon &&
		math.Abs(a.Height-b.Height) < epsilon
}

func TestParsePlacement(t *testing.T) {
	for _, p := range Placements() {
		got, err := ParsePlacement(string(p))
		if err != nil {
			t.Errorf("ParsePlacement(%q) returned error: %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePlacement(%q) = %q", p, got)
		}
	}

	if _, err := ParsePlacement("leftish"); !errors.Is(err, ErrUnknownPlacement) {
		t.Errorf("ParsePlacement(\"leftish\") error = %v, want ErrUnknownPlacement", err)
	}
	if _, err := ParsePlacement("Left"); err == nil {
		t.Error("ParsePlacement should be case sensitive")
	}
}

func TestPlacementsCount(t *testing.T) {
	if got := len(Placements()); got != 12 {
		t.Errorf("Placements() has %d entries, want 12", got)
	}
}

func TestComputeFrameKnownValues(t *testing.T) {
	screen := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}

	tests := []struct {
		placement Placement
		padding   float64
		want      Rect
	}{
		{PlacementCenter, 0, Rect{150, 150, 700, 700}},
		{PlacementMaximize, 0, Rect{0, 0, 1000, 1000}},
		{PlacementLeft, 0, Rect{0, 0, 500, 1000}},
		{PlacementRight, 0, Rect{500, 0, 500, 1000}},
		{PlacementTop, 0, Rect{0, 0, 1000, 500}},
		{PlacementBottom, 0, Rect{0, 500, 1000, 500}},
		{PlacementTopLeft, 0, Rect{0, 0, 500, 500}},
		{PlacementBottomRight, 0, Rect{500, 500, 500, 500}},
		{PlacementMaximize, 8, Rect{8, 8, 984, 984}},
		{PlacementLeft, 8, Rect{8, 8, 488, 984}},
		{PlacementRight, 8, Rect{512, 8, 488, 984}},
	}

	for _, tt := range tests {
		got := ComputeFrame(tt.placement, screen, tt.padding)
		if !rectsEqual(got, tt.want) {
			t.Errorf("ComputeFrame(%s, pad %v) = %+v, want %+v",
				tt.placement, tt.padding, got, tt.want)
		}
	}
}

func TestComputeFrameOffsetScreen(t *testing.T) {
	// A second monitor to the right of a 1920-wide primary.
	screen := Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}
	got := ComputeFrame(PlacementLeft, screen, 8)
	want := Rect{X: 1928, Y: 8, Width: (2560 - 24) / 2, Height: 1440 - 16}
	if !rectsEqual(got, want) {
		t.Errorf("ComputeFrame(left) on offset screen = %+v, want %+v", got, want)
	}
}

func TestComputeFrameContained(t *testing.T) {
	screen := Rect{X: 1920, Y: 32, Width: 2560, Height: 1408}
	for _, padding := range []float64{0, 4, 8, 12} {
		for _, p := range Placements() {
			r := ComputeFrame(p, screen, padding)
			if r.Width <= 0 || r.Height <= 0 {
				t.Errorf("%s pad %v: degenerate size %+v", p, padding, r)
			}
			if r.X < screen.X+padding-epsilon || r.Y < screen.Y+padding-epsilon {
				t.Errorf("%s pad %v: origin %+v escapes padded screen", p, padding, r)
			}
			if r.X+r.Width > screen.X+screen.Width-padding+epsilon ||
				r.Y+r.Height > screen.Y+screen.Height-padding+epsilon {
				t.Errorf("%s pad %v: extent %+v escapes padded screen", p, padding, r)
			}
		}
	}
}

// Complementary pairs must tile the padded width exactly, with a single
// padding gap between the panes and no overlap.
func TestComputeFramePairsTile(t *testing.T) {
	screen := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	pairs := []struct {
		a, b Placement
	}{
		{PlacementLeft, PlacementRight},
		{PlacementTopLeft, PlacementTopRight},
		{PlacementBottomLeft, PlacementBottomRight},
		{PlacementLeftTwoThirds, PlacementRightTwoThirds},
	}

	for _, padding := range []float64{0, 8} {
		for _, pair := range pairs {
			a := ComputeFrame(pair.a, screen, padding)
			b := ComputeFrame(pair.b, screen, padding)

			total := a.Width + b.Width + 3*padding
			if math.Abs(total-screen.Width) > epsilon {
				t.Errorf("%s+%s pad %v: widths %v+%v don't tile screen width %v",
					pair.a, pair.b, padding, a.Width, b.Width, screen.Width)
			}
			if a.X+a.Width > b.X+epsilon {
				t.Errorf("%s+%s pad %v: panes overlap (%v > %v)",
					pair.a, pair.b, padding, a.X+a.Width, b.X)
			}
		}
	}
}

func TestComputeFrameTwoThirdsSplit(t *testing.T) {
	screen := Rect{X: 0, Y: 0, Width: 1200, Height: 900}
	left := ComputeFrame(PlacementLeftTwoThirds, screen, 0)
	right := ComputeFrame(PlacementRightTwoThirds, screen, 0)

	if math.Abs(left.Width-800) > epsilon {
		t.Errorf("leftTwoThirds width = %v, want 800", left.Width)
	}
	if math.Abs(right.X-800) > epsilon || math.Abs(right.Width-400) > epsilon {
		t.Errorf("rightTwoThirds = %+v, want x=800 width=400", right)
	}
}

func TestParsePadding(t *testing.T) {
	wantPoints := map[string]float64{
		"none": 0, "small": 4, "medium": 8, "large": 12,
	}
	for name, points := range wantPoints {
		level, err := ParsePadding(name)
		if err != nil {
			t.Fatalf("ParsePadding(%q): %v", name, err)
		}
		if level.Points() != points {
			t.Errorf("%s.Points() = %v, want %v", name, level.Points(), points)
		}
	}

	if _, err := ParsePadding("huge"); err == nil {
		t.Error("ParsePadding(\"huge\") should fail")
	}
}
