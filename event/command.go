package event

import (
	"fmt"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/vmath"
)

// MarkerKind tags auxiliary entities so the render collaborator can find and remove them
type MarkerKind uint8

const (
	MarkerNone MarkerKind = iota
	MarkerPursueTarget
	MarkerPursueOffset
	MarkerWanderCircle
	MarkerWanderTarget
	MarkerPathPoint
)

var markerNames = map[MarkerKind]string{
	MarkerNone:         "none",
	MarkerPursueTarget: "pursue-target",
	MarkerPursueOffset: "pursue-offset",
	MarkerWanderCircle: "wander-circle",
	MarkerWanderTarget: "wander-target",
	MarkerPathPoint:    "path-point",
}

func (k MarkerKind) String() string {
	if name, ok := markerNames[k]; ok {
		return name
	}
	return fmt.Sprintf("MarkerKind(%d)", k)
}

// Op is the kind of entity intent
type Op uint8

const (
	// OpSpawn creates entity ID with Marker, Position and Radius
	OpSpawn Op = iota
	// OpDespawn destroys entity ID
	OpDespawn
	// OpMove sets the position of an existing entity ID
	OpMove
)

func (o Op) String() string {
	switch o {
	case OpSpawn:
		return "spawn"
	case OpDespawn:
		return "despawn"
	case OpMove:
		return "move"
	default:
		return fmt.Sprintf("Op(%d)", o)
	}
}

// Command is an intent for the entity-management collaborator
// Steering never touches entity storage directly; hooks and ticks emit commands instead
type Command struct {
	Op       Op
	ID       core.EntityID
	Marker   MarkerKind
	Position vmath.Vec2
	Radius   float32
}

func Spawn(id core.EntityID, marker MarkerKind, pos vmath.Vec2, radius float32) Command {
	return Command{Op: OpSpawn, ID: id, Marker: marker, Position: pos, Radius: radius}
}

func Despawn(id core.EntityID, marker MarkerKind) Command {
	return Command{Op: OpDespawn, ID: id, Marker: marker}
}

func Move(id core.EntityID, marker MarkerKind, pos vmath.Vec2) Command {
	return Command{Op: OpMove, ID: id, Marker: marker, Position: pos}
}

// Collision is a collision-start notification between two entities
type Collision struct {
	A, B core.EntityID
}

// Involves reports whether the collision pairs x and y in either order
func (c Collision) Involves(x, y core.EntityID) bool {
	return (c.A == x && c.B == y) || (c.A == y && c.B == x)
}
