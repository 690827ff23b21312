package mcp

// PlaceWindowInput is the input for the place_window tool.
type PlaceWindowInput struct {
	Placement string `json:"placement" jsonschema:"required,The layout slot: left, right, top, bottom, topLeft, topRight, bottomLeft, bottomRight, center, maximize, leftTwoThirds, rightTwoThirds"`
	Style     string `json:"style,omitempty" jsonschema:"Optional easing style name for this call. Omit to use the daemon's default."`
}

// PlaceWindowOutput is the output for the place_window tool.
type PlaceWindowOutput struct {
	Placement string `json:"placement"`
	Style     string `json:"style"`
}

// MoveToScreenInput is the input for the move_window_to_screen tool.
type MoveToScreenInput struct {
	Index int    `json:"index" jsonschema:"required,1-based monitor index to move the focused window to"`
	Style string `json:"style,omitempty" jsonschema:"Optional easing style name for this call. Omit to use the daemon's default."`
}

// MoveToScreenOutput is the output for the move_window_to_screen tool.
type MoveToScreenOutput struct {
	Index int    `json:"index"`
	Style string `json:"style"`
}

// ListStylesInput is the input for the list_easing_styles tool.
type ListStylesInput struct{}

// StyleEntry describes one easing style.
type StyleEntry struct {
	Name       string `json:"name"`
	DurationMS int64  `json:"duration_ms"`
}

// ListStylesOutput is the output for the list_easing_styles tool.
type ListStylesOutput struct {
	Styles       []StyleEntry `json:"styles"`
	DefaultStyle string       `json:"default_style"`
}

// GetMonitorsInput is the input for the get_monitors tool.
type GetMonitorsInput struct{}

// MonitorEntry describes one monitor and its usable work area.
type MonitorEntry struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	UsableWidth  float64 `json:"usable_width"`
	UsableHeight float64 `json:"usable_height"`
}

// GetMonitorsOutput is the output for the get_monitors tool.
type GetMonitorsOutput struct {
	Monitors []MonitorEntry `json:"monitors"`
}
