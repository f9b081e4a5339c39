package steering

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/lixenwraith/steer/parameter"
	"github.com/lixenwraith/steer/vmath"
)

// Path is a closed polyline; the last point connects back to the first
type Path struct {
	Points []vmath.Vec2
	Radius float32 // Tolerance below which the agent counts as on-path
}

// DefaultPath returns the waypoint loop installed on entering PathFollow
func DefaultPath() Path {
	pts := make([]vmath.Vec2, len(parameter.DefaultPathPoints))
	for i, p := range parameter.DefaultPathPoints {
		pts[i] = vmath.V2(p[0], p[1])
	}
	return Path{Points: pts, Radius: parameter.PathDefaultRadius}
}

// Segment returns the i-th edge of the loop, wrapping around
func (p *Path) Segment(i int) (a, b vmath.Vec2) {
	n := len(p.Points)
	return p.Points[i%n], p.Points[(i+1)%n]
}

// PathResult is one tick of PathFollow
type PathResult struct {
	Steer    vmath.Vec2
	Future   vmath.Vec2 // Predicted agent position
	Target   vmath.Vec2 // Winning normal point advanced along its segment
	Distance float32    // Smallest future-to-normal distance over all segments
	Steering bool       // False when inside tolerance or the path is degenerate
}

// PathFollow steers back toward the path when the predicted position drifts beyond tolerance
//
// For each segment the future position is projected onto the segment's line. A projection
// outside the segment's bounding box is replaced by the segment end, and the direction is
// taken from the following segment so the target leads around the corner. The segment with
// the smallest distance wins; its normal point advanced by the lookahead is sought
func PathFollow(path *Path, velocity, position vmath.Vec2, maxSpeed float32, p *Profile) PathResult {
	n := len(path.Points)
	if n < 2 {
		return PathResult{Future: position, Distance: float32(math.Inf(1))}
	}

	future := position.Add(vmath.SetMagnitude(velocity, p.PathLookahead))

	res := PathResult{Future: future, Distance: float32(math.Inf(1))}
	for i := 0; i < n; i++ {
		a, b := path.Segment(i)
		normal := vmath.NormalPoint(future, a, b)
		dir := b.Sub(a)

		if !segmentBound(a, b).Contains(toOrb(normal)) {
			normal = b
			na, nb := path.Segment(i + 1)
			dir = nb.Sub(na)
		}

		if d := future.Distance(normal); d < res.Distance {
			res.Distance = d
			res.Target = normal.Add(vmath.SetMagnitude(dir, p.PathLookahead))
		}
	}

	if res.Distance > path.Radius {
		res.Steering = true
		res.Steer = Seek(res.Target, velocity, maxSpeed, position)
	}
	return res
}

// segmentBound is the axis-aligned bounding box of a segment
func segmentBound(a, b vmath.Vec2) orb.Bound {
	return orb.MultiPoint{toOrb(a), toOrb(b)}.Bound()
}

func toOrb(v vmath.Vec2) orb.Point {
	return orb.Point{float64(v.X), float64(v.Y)}
}
