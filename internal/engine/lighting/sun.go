// Package lighting provides the directional light the demo shades with.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/facade/pkg/math"
)

// SunDirection converts an azimuth around the Y axis and an elevation above the
// horizon, both in degrees, to a unit vector pointing towards the sun.
// Elevation is clamped to [0, 90].
func SunDirection(azimuth, elevation float32) math.Vec3 {
	elevation = max(0, min(90, elevation))

	az := float64(azimuth) * gomath.Pi / 180.0
	el := float64(elevation) * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}
