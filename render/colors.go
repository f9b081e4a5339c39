package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/steering"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbShip       = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbCursor     = tcell.NewRGBColor(255, 255, 255) // White
	RgbPath       = tcell.NewRGBColor(90, 90, 110)   // Dim slate for path edges
	RgbPathPoint  = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbTarget     = tcell.NewRGBColor(154, 205, 50)  // Yellow green
	RgbOffset     = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbWander     = tcell.NewRGBColor(120, 160, 60)  // Muted yellow green
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbPausedBg   = tcell.NewRGBColor(200, 50, 50)   // Red
)

// behaviorBg gives every behavior its own status-line badge color
var behaviorBg = map[steering.Behavior]tcell.Color{
	steering.BehaviorSeek:       tcell.NewRGBColor(135, 206, 250), // Light sky blue
	steering.BehaviorArrive:     tcell.NewRGBColor(144, 238, 144), // Light grass green
	steering.BehaviorWander:     tcell.NewRGBColor(255, 192, 203), // Pink
	steering.BehaviorPursue:     tcell.NewRGBColor(255, 165, 0),   // Orange
	steering.BehaviorFlee:       tcell.NewRGBColor(255, 120, 120), // Bright red
	steering.BehaviorEvade:      tcell.NewRGBColor(186, 85, 211),  // Orchid
	steering.BehaviorPathFollow: tcell.NewRGBColor(140, 190, 255), // Bright blue
}

// markerStyle returns the glyph and color for a marker kind
func markerStyle(kind event.MarkerKind) (rune, tcell.Color) {
	switch kind {
	case event.MarkerPursueTarget:
		return '●', RgbTarget
	case event.MarkerPursueOffset:
		return '∘', RgbOffset
	case event.MarkerWanderCircle:
		return '·', RgbWander
	case event.MarkerWanderTarget:
		return '•', RgbOffset
	case event.MarkerPathPoint:
		return '◆', RgbPathPoint
	default:
		return '?', RgbCursor
	}
}
