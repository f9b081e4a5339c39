package core

import "github.com/lixenwraith/steer/vmath"

// Kinetic is the integrated motion state of any simulated body
type Kinetic struct {
	// Position in world units, origin at screen center
	Position vmath.Vec2
	// Velocity in world units per second
	Velocity vmath.Vec2
}

// Agent is a steered ship
// Position and velocity are integrated externally; steering only writes Velocity and Orientation
type Agent struct {
	Kinetic
	MaxLinearSpeed  float32 // Soft cap steering aims for, not enforced
	MaxAngularSpeed float32 // Radians per second of orientation slerp rate
	Orientation     float32 // Facing angle in radians, 0 = +Y
	Radius          float32 // Collider radius used by the collision collaborator
}

// EntityID identifies the agent and every auxiliary entity
type EntityID uint64

const (
	EntityNone  EntityID = 0
	EntityAgent EntityID = 1
)
