package layout

// MapAcrossScreens transposes a window rectangle from one screen to another,
// preserving its position and size as fractions of the source screen. The
// result is capped to fit the target screen inset by padding: size first, then
// origin against the capped size, so an oversized window lands flush with the
// padded edge instead of hanging past it.
func MapAcrossScreens(cur, curScreen, targetScreen Rect, padding float64) Rect {
	relX := (cur.X - curScreen.X) / curScreen.Width
	relY := (cur.Y - curScreen.Y) / curScreen.Height
	relW := cur.Width / curScreen.Width
	relH := cur.Height / curScreen.Height

	mapped := Rect{
		X:      targetScreen.X + relX*targetScreen.Width,
		Y:      targetScreen.Y + relY*targetScreen.Height,
		Width:  relW * targetScreen.Width,
		Height: relH * targetScreen.Height,
	}

	maxW := targetScreen.Width - 2*padding
	maxH := targetScreen.Height - 2*padding
	if mapped.Width > maxW {
		mapped.Width = maxW
	}
	if mapped.Height > maxH {
		mapped.Height = maxH
	}

	minX := targetScreen.X + padding
	minY := targetScreen.Y + padding
	maxX := targetScreen.X + targetScreen.Width - padding - mapped.Width
	maxY := targetScreen.Y + targetScreen.Height - padding - mapped.Height
	if mapped.X < minX {
		mapped.X = minX
	}
	if mapped.X > maxX {
		mapped.X = maxX
	}
	if mapped.Y < minY {
		mapped.Y = minY
	}
	if mapped.Y > maxY {
		mapped.Y = maxY
	}

	return mapped
}
