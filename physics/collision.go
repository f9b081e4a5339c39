package physics

import "github.com/lixenwraith/steer/vmath"

// Circle is a collider footprint
type Circle struct {
	Center vmath.Vec2
	Radius float32
}

// Overlaps reports whether two circles intersect, touching counts
func Overlaps(a, b Circle) bool {
	r := a.Radius + b.Radius
	return a.Center.Sub(b.Center).LengthSq() <= r*r
}

// ContactTracker turns continuous overlap into collision-start edges
// An overlap reported on consecutive frames only starts a collision once
type ContactTracker struct {
	touching map[uint64]bool
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{touching: make(map[uint64]bool)}
}

// Update records the overlap state for key and returns true on the frame contact begins
func (c *ContactTracker) Update(key uint64, overlapping bool) bool {
	was := c.touching[key]
	if overlapping {
		c.touching[key] = true
	} else {
		delete(c.touching, key)
	}
	return overlapping && !was
}

// Forget drops contact state for key, used when a collider is despawned
func (c *ContactTracker) Forget(key uint64) {
	delete(c.touching, key)
}
