package layout

import (
	"math"
	"testing"
)

func TestMapAcrossScreensPreservesFractions(t *testing.T) {
	curScreen := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	targetScreen := Rect{X: 1000, Y: 0, Width: 2000, Height: 1000}

	// A quarter-sized window at 10%/20% of the source screen.
	cur := Rect{X: 100, Y: 200, Width: 250, Height: 250}
	got := MapAcrossScreens(cur, curScreen, targetScreen, 0)
	want := Rect{X: 1200, Y: 200, Width: 500, Height: 250}
	if !rectsEqual(got, want) {
		t.Errorf("MapAcrossScreens = %+v, want %+v", got, want)
	}
}

func TestMapAcrossScreensRoundTrip(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	b := Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}

	cur := Rect{X: 480, Y: 270, Width: 960, Height: 540}
	there := MapAcrossScreens(cur, a, b, 0)
	back := MapAcrossScreens(there, b, a, 0)
	if !rectsEqual(back, cur) {
		t.Errorf("round trip = %+v, want %+v", back, cur)
	}
}

// An oversized mapping is capped to the padded target size first, and the
// origin is then clamped against the capped size, so the window lands flush
// with the padded edge.
func TestMapAcrossScreensCapsBeforeClamping(t *testing.T) {
	curScreen := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	targetScreen := Rect{X: 1000, Y: 0, Width: 500, Height: 500}
	padding := 8.0

	cur := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	got := MapAcrossScreens(cur, curScreen, targetScreen, padding)

	want := Rect{X: 1008, Y: 8, Width: 484, Height: 484}
	if !rectsEqual(got, want) {
		t.Errorf("oversized mapping = %+v, want %+v", got, want)
	}
}

func TestMapAcrossScreensClampsIntoPaddedArea(t *testing.T) {
	curScreen := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	targetScreen := Rect{X: 0, Y: 1000, Width: 1000, Height: 1000}
	padding := 12.0

	// Hugs the bottom-right corner of the source screen.
	cur := Rect{X: 700, Y: 700, Width: 300, Height: 300}
	got := MapAcrossScreens(cur, curScreen, targetScreen, padding)

	if math.Abs((got.X+got.Width)-(targetScreen.X+targetScreen.Width-padding)) > epsilon {
		t.Errorf("right edge %v not flush with padded edge", got.X+got.Width)
	}
	if math.Abs((got.Y+got.Height)-(targetScreen.Y+targetScreen.Height-padding)) > epsilon {
		t.Errorf("bottom edge %v not flush with padded edge", got.Y+got.Height)
	}
	if got.Width != 300 || got.Height != 300 {
		t.Errorf("size changed to %vx%v, want 300x300", got.Width, got.Height)
	}
}
