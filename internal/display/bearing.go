package display

import "math"

// bearingLabels are indexed from an atan2(dx, -dz) angle of 0, which points
// toward -Z (north).
var bearingLabels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Point is a position inside a named world.
type Point struct {
	World string
	X     float64
	Y     float64
	Z     float64
}

// Distance is the full 3-D euclidean distance between two points. The world
// is not considered.
func (p Point) Distance(o Point) float64 {
	dx, dy, dz := o.X-p.X, o.Y-p.Y, o.Z-p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// SameWorld reports whether both points are in the same world.
func (p Point) SameWorld(o Point) bool {
	return p.World == o.World
}

// WaypointBearing returns the distance from origin to target and the compass
// label pointing at the target. Only the horizontal plane is used for the
// label and sectors are chosen by rounding, unlike Heading which floors.
// Equal points yield distance 0 and "N".
func WaypointBearing(origin, target Point) (float64, string) {
	dx := target.X - origin.X
	dz := target.Z - origin.Z

	angle := math.Atan2(dx, -dz) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	index := int(math.Round(angle/45)) % 8

	return origin.Distance(target), bearingLabels[index]
}
