package display

import "math"

// headingLabels are indexed from yaw 0, which faces south.
var headingLabels = [8]string{"S", "SW", "W", "NW", "N", "NE", "E", "SE"}

// Heading maps a yaw in degrees to one of eight compass labels. Sector
// boundaries sit at odd multiples of 22.5 degrees and are resolved by floor.
func Heading(yaw float64) string {
	yaw = normalizeDegrees(yaw)
	index := int(math.Floor((yaw+22.5)/45)) % 8
	return headingLabels[index]
}

// normalizeDegrees folds any angle into [0,360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can return 360 for tiny negative inputs after the add.
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
