package layout

import "fmt"

// Rect describes a window or screen region in points. The origin is the
// top-left corner with y increasing downward.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Placement identifies a named layout slot on a screen.
type Placement string

const (
	PlacementLeft           Placement = "left"
	PlacementRight          Placement = "right"
	PlacementTop            Placement = "top"
	PlacementBottom         Placement = "bottom"
	PlacementTopLeft        Placement = "topLeft"
	PlacementTopRight       Placement = "topRight"
	PlacementBottomLeft     Placement = "bottomLeft"
	PlacementBottomRight    Placement = "bottomRight"
	PlacementCenter         Placement = "center"
	PlacementMaximize       Placement = "maximize"
	PlacementLeftTwoThirds  Placement = "leftTwoThirds"
	PlacementRightTwoThirds Placement = "rightTwoThirds"
)

// ErrUnknownPlacement is returned when a placement name is not in the closed set.
var ErrUnknownPlacement = fmt.Errorf("unknown placement")

var placements = []Placement{
	PlacementLeft,
	PlacementRight,
	PlacementTop,
	PlacementBottom,
	PlacementTopLeft,
	PlacementTopRight,
	PlacementBottomLeft,
	PlacementBottomRight,
	PlacementCenter,
	PlacementMaximize,
	PlacementLeftTwoThirds,
	PlacementRightTwoThirds,
}

// Placements returns all placements in a stable order.
func Placements() []Placement {
	out := make([]Placement, len(placements))
	copy(out, placements)
	return out
}

// ParsePlacement validates a placement name.
func ParsePlacement(name string) (Placement, error) {
	for _, p := range placements {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlacement, name)
}

// ComputeFrame returns the target rectangle for a placement within a screen's
// usable area. Pure and total: a padding too large for the area produces a
// degenerate (non-positive size) rectangle rather than an error.
func ComputeFrame(p Placement, screen Rect, padding float64) Rect {
	halfW := (screen.Width - 3*padding) / 2
	halfH := (screen.Height - 3*padding) / 2
	midX := screen.X + screen.Width/2 + padding/2
	midY := screen.Y + screen.Height/2 + padding/2

	switch p {
	case PlacementLeft:
		return Rect{screen.X + padding, screen.Y + padding, halfW, screen.Height - 2*padding}
	case PlacementRight:
		return Rect{midX, screen.Y + padding, halfW, screen.Height - 2*padding}
	case PlacementTop:
		return Rect{screen.X + padding, screen.Y + padding, screen.Width - 2*padding, halfH}
	case PlacementBottom:
		return Rect{screen.X + padding, midY, screen.Width - 2*padding, halfH}
	case PlacementTopLeft:
		return Rect{screen.X + padding, screen.Y + padding, halfW, halfH}
	case PlacementTopRight:
		return Rect{midX, screen.Y + padding, halfW, halfH}
	case PlacementBottomLeft:
		return Rect{screen.X + padding, midY, halfW, halfH}
	case PlacementBottomRight:
		return Rect{midX, midY, halfW, halfH}
	case PlacementCenter:
		w := screen.Width * 0.7
		h := screen.Height * 0.7
		return Rect{
			X:      screen.X + (screen.Width-w)/2,
			Y:      screen.Y + (screen.Height-h)/2,
			Width:  w,
			Height: h,
		}
	case PlacementMaximize:
		return Rect{
			X:      screen.X + padding,
			Y:      screen.Y + padding,
			Width:  screen.Width - 2*padding,
			Height: screen.Height - 2*padding,
		}
	// The two-thirds placements split at the 2/3 boundary into an
	// asymmetric pane pair: left pane takes two thirds, right pane the rest.
	case PlacementLeftTwoThirds:
		thirdW := (screen.Width - 3*padding) / 3
		return Rect{
			X:      screen.X + padding,
			Y:      screen.Y + padding,
			Width:  2 * thirdW,
			Height: screen.Height - 2*padding,
		}
	case PlacementRightTwoThirds:
		thirdW := (screen.Width - 3*padding) / 3
		return Rect{
			X:      screen.X + 2*padding + 2*thirdW,
			Y:      screen.Y + padding,
			Width:  thirdW,
			Height: screen.Height - 2*padding,
		}
	}
	return screen
}
