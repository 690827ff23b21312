// Package easing provides the timing curves used to animate window
// transitions. Every style is a pure closed-form function of normalized time
// together with a fixed duration. Styles in the overshoot and elastic families
// deliberately leave [0,1] mid-flight; that is what produces the visual
// overshoot past the target rectangle.
package easing

import (
	"fmt"
	"math"
	"time"
)

// Style names one of the thirty animation curves.
type Style string

const (
	// Foundational curves.
	StyleLinear     Style = "linear"
	StyleSmooth     Style = "smooth"
	StyleBounce     Style = "bounce"
	StyleElastic    Style = "elastic"
	StyleSpring     Style = "spring"
	StyleOvershoot  Style = "overshoot"
	StyleAnticipate Style = "anticipate"
	StyleRubberBand Style = "rubberBand"
	StyleJello      Style = "jello"
	StyleWobbly     Style = "wobbly"

	// Smooth curves: monotonic, no overshoot.
	StyleGlide Style = "glide"
	StyleSilk  Style = "silk"
	StyleFlow  Style = "flow"
	StyleDrift Style = "drift"

	// Playful curves: power-law ramp plus a decaying oscillation.
	StyleZoom         Style = "zoom"
	StylePop          Style = "pop"
	StyleSwoosh       Style = "swoosh"
	StyleWhip         Style = "whip"
	StyleDoubleBounce Style = "doubleBounce"
	StyleWiggle       Style = "wiggle"

	// Premium curves: monotonic base plus a small sinusoidal deviation.
	StyleMagnetic Style = "magnetic"
	StyleGravity  Style = "gravity"
	StyleOrbit    Style = "orbit"
	StyleSpiral   Style = "spiral"
	StyleWave     Style = "wave"

	// Dynamic curves.
	StyleRocket    Style = "rocket"
	StyleTeleport  Style = "teleport"
	StyleLightning Style = "lightning"
	StylePulse     Style = "pulse"
	StyleTornado   Style = "tornado"
)

// durations maps each style to its intrinsic animation length. The duration
// is part of the style, not a per-call knob.
var durations = map[Style]time.Duration{
	StyleLinear:     300 * time.Millisecond,
	StyleSmooth:     400 * time.Millisecond,
	StyleBounce:     800 * time.Millisecond,
	StyleElastic:    900 * time.Millisecond,
	StyleSpring:     550 * time.Millisecond,
	StyleOvershoot:  450 * time.Millisecond,
	StyleAnticipate: 600 * time.Millisecond,
	StyleRubberBand: 700 * time.Millisecond,
	StyleJello:      750 * time.Millisecond,
	StyleWobbly:     650 * time.Millisecond,

	StyleGlide: 350 * time.Millisecond,
	StyleSilk:  400 * time.Millisecond,
	StyleFlow:  450 * time.Millisecond,
	StyleDrift: 500 * time.Millisecond,

	StyleZoom:         350 * time.Millisecond,
	StylePop:          400 * time.Millisecond,
	StyleSwoosh:       450 * time.Millisecond,
	StyleWhip:         500 * time.Millisecond,
	StyleDoubleBounce: 900 * time.Millisecond,
	StyleWiggle:       550 * time.Millisecond,

	StyleMagnetic: 500 * time.Millisecond,
	StyleGravity:  1100 * time.Millisecond,
	StyleOrbit:    850 * time.Millisecond,
	StyleSpiral:   1000 * time.Millisecond,
	StyleWave:     650 * time.Millisecond,

	StyleRocket:    300 * time.Millisecond,
	StyleTeleport:  150 * time.Millisecond,
	StyleLightning: 200 * time.Millisecond,
	StylePulse:     450 * time.Millisecond,
	StyleTornado:   1200 * time.Millisecond,
}

var styles = []Style{
	StyleLinear, StyleSmooth, StyleBounce, StyleElastic, StyleSpring,
	StyleOvershoot, StyleAnticipate, StyleRubberBand, StyleJello, StyleWobbly,
	StyleGlide, StyleSilk, StyleFlow, StyleDrift,
	StyleZoom, StylePop, StyleSwoosh, StyleWhip, StyleDoubleBounce, StyleWiggle,
	StyleMagnetic, StyleGravity, StyleOrbit, StyleSpiral, StyleWave,
	StyleRocket, StyleTeleport, StyleLightning, StylePulse, StyleTornado,
}

// Styles returns all styles in a stable order.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle validates a style name.
func ParseStyle(name string) (Style, error) {
	s := Style(name)
	if _, ok := durations[s]; !ok {
		return "", fmt.Errorf("unknown easing style: %q", name)
	}
	return s, nil
}

// Duration returns the fixed animation length of a style.
func Duration(s Style) time.Duration {
	return durations[s]
}

// Ease maps normalized time t in [0,1] to animation progress. Progress starts
// at 0 and ends at 1 for every style, but is not bounded to [0,1] in between.
func Ease(s Style, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	switch s {
	case StyleLinear:
		return t
	case StyleSmooth:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	case StyleBounce:
		return bounce(t)
	case StyleElastic:
		const c4 = 2 * math.Pi / 3
		return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*c4) + 1
	case StyleSpring:
		return 1 - (1-t)*math.Exp(-6*t)*math.Cos(12*t)
	case StyleOvershoot:
		const c1 = 1.70158
		const c3 = c1 + 1
		u := t - 1
		return 1 + u*u*(c3*u+c1)
	case StyleAnticipate:
		const c2 = 1.70158 * 1.525
		if t < 0.5 {
			u := 2 * t
			return u * u * ((c2+1)*u - c2) / 2
		}
		u := 2*t - 2
		return (u*u*((c2+1)*u+c2) + 2) / 2
	case StyleRubberBand:
		return 1 - (1-t)*math.Exp(-6*t)*math.Cos(4*math.Pi*t)
	case StyleJello:
		u := 1 - t
		return 1 - u*u*math.Cos(6*math.Pi*t)
	case StyleWobbly:
		return 1 - (1-t)*math.Exp(-3*t)*math.Cos(5*math.Pi*t)

	case StyleGlide:
		return t * t * (3 - 2*t)
	case StyleSilk:
		return t * t * t * (t*(6*t-15) + 10)
	case StyleFlow:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case StyleDrift:
		u := 1 - t
		return 1 - u*u*u*u*u

	case StyleZoom:
		u := 1 - t
		return 1 - u*u*u + 0.05*math.Sin(8*math.Pi*t)*t*t*(1-t)
	case StylePop:
		u := 1 - t
		return 1 - u*u*u*u + 0.08*math.Sin(6*math.Pi*t)*t*(1-t)
	case StyleSwoosh:
		return t*t*(3-2*t) + 0.06*math.Sin(7*math.Pi*t)*t*(1-t)
	case StyleWhip:
		// Slow wind-up for 60% of the run, then a fast cubic release.
		if t < 0.6 {
			u := t / 0.6
			return 0.5 * u * u * u
		}
		u := 1 - (t-0.6)/0.4
		return 0.5 + 0.5*(1-u*u*u)
	case StyleDoubleBounce:
		u := 1 - t
		return 1 - u*u*math.Abs(math.Cos(3*math.Pi*t))
	case StyleWiggle:
		return t + 0.08*math.Sin(9*math.Pi*t)*t*(1-t)

	case StyleMagnetic:
		base := (1 - math.Pow(2, -10*t)) / (1 - math.Pow(2, -10))
		return base + 0.03*math.Sin(2*math.Pi*t)*(1-t)
	case StyleGravity:
		return t*t + 0.05*math.Sin(3*math.Pi*t)*t*(1-t)
	case StyleOrbit:
		return t*t*(3-2*t) + 0.08*math.Sin(4*math.Pi*t)*math.Sin(math.Pi*t)
	case StyleSpiral:
		base := t * t * t * (t*(6*t-15) + 10)
		return base + 0.06*math.Sin(6*math.Pi*t)*4*t*(1-t)
	case StyleWave:
		return t + 0.1*math.Sin(2*math.Pi*t)*math.Sin(math.Pi*t)

	case StyleRocket:
		return (math.Pow(2, 10*t) - 1) / 1023
	case StyleTeleport:
		// Hold at the start, then snap. The endpoints are the holds.
		if t < 0.1 {
			return 0
		}
		return 1
	case StyleLightning:
		u := 1 - t
		return 1 - math.Pow(u, 8) + 0.02*math.Sin(20*math.Pi*t)*(1-t)
	case StylePulse:
		return t + 0.08*math.Sin(12*math.Pi*t)*t*(1-t)
	case StyleTornado:
		return t*t*(3-2*t) + 0.07*math.Sin(16*math.Pi*t)*2*t*(1-t)
	}

	return t
}

// bounce is a four-segment piecewise parabola: a fast rise to the target, a
// shallow rebound dipping to 0.75, and two diminishing settles back to 1.
func bounce(t float64) float64 {
	switch {
	case t < 0.125:
		return 64 * t * t
	case t < 0.25:
		u := t - 0.125
		return 1 - 16*u*u
	case t < 0.75:
		u := t - 0.25
		return 0.75 + 0.9375*u*u
	default:
		u := t - 0.75
		return 0.984375 + 0.25*u*u
	}
}
