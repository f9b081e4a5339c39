package parameter

// World - play area, origin at screen center
const (
	WorldHalfWidth  = 400.0
	WorldHalfHeight = 300.0
)

// Ship defaults
const (
	ShipStartX          = 0.0
	ShipStartY          = -150.0
	ShipMaxLinearSpeed  = 250.0
	ShipMaxAngularSpeed = 10.0
	ShipRadius          = 10.0
)

// Cursor target start position before the first mouse event
const (
	CursorStartX = -150.0
	CursorStartY = 0.0
)

// Debug marker sizes for Wander
const (
	WanderCircleMarkerRadius = 50.0
	WanderTargetMarkerRadius = 5.0
)

// Tick
const (
	DefaultTickRate = 60
	// MaxTickSeconds caps dt after stalls so a long pause does not fling the ship
	MaxTickSeconds = 0.1
)

// Input queue
const (
	// InputQueueSize is the fixed capacity of the input ring buffer, power of two
	InputQueueSize = 256

	// InputBufferMask is the bitmask for fast modulo operations (256 - 1)
	InputBufferMask = InputQueueSize - 1
)
