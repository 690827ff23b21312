package layout

import "fmt"

// PaddingLevel names a preset gap size.
type PaddingLevel string

const (
	PaddingNone   PaddingLevel = "none"
	PaddingSmall  PaddingLevel = "small"
	PaddingMedium PaddingLevel = "medium"
	PaddingLarge  PaddingLevel = "large"
)

var paddingPoints = map[PaddingLevel]float64{
	PaddingNone:   0,
	PaddingSmall:  4,
	PaddingMedium: 8,
	PaddingLarge:  12,
}

// PaddingLevels returns the preset levels from tightest to widest.
func PaddingLevels() []PaddingLevel {
	return []PaddingLevel{PaddingNone, PaddingSmall, PaddingMedium, PaddingLarge}
}

// Points returns the gap size of a level in points.
func (p PaddingLevel) Points() float64 {
	return paddingPoints[p]
}

// ParsePadding validates a padding level name.
func ParsePadding(name string) (PaddingLevel, error) {
	level := PaddingLevel(name)
	if _, ok := paddingPoints[level]; !ok {
		return "", fmt.Errorf("unknown padding level: %q", name)
	}
	return level, nil
}
